// Package handlers provides HTTP handlers for the JSON API
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kondate-ai/kondate/internal/infrastructure/session"
	"github.com/kondate-ai/kondate/internal/ports/inbound"
	"github.com/kondate-ai/kondate/pkg/errors"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// RecipeAPIHandlers handles recipe generation and history requests
type RecipeAPIHandlers struct {
	recipeService inbound.RecipeService
	validate      *validator.Validate
	logger        *zap.Logger
}

// NewRecipeAPIHandlers creates a new recipe API handlers instance
func NewRecipeAPIHandlers(recipeService inbound.RecipeService, logger *zap.Logger) *RecipeAPIHandlers {
	return &RecipeAPIHandlers{
		recipeService: recipeService,
		validate:      validator.New(),
		logger:        logger,
	}
}

// GenerateRequest represents a recipe generation request
type GenerateRequest struct {
	Ingredients string `json:"ingredients" validate:"required"`
	Genre       string `json:"genre,omitempty"`
	Purpose     string `json:"purpose,omitempty"`
	CookingTime int    `json:"cooking_time_minutes,omitempty" validate:"omitempty,min=10,max=120"`
	Allergies   string `json:"allergies,omitempty"`
}

// defaultCookingTime mirrors the form slider's initial position.
const defaultCookingTime = 30

// Generate handles POST /api/v1/recipes/generate
func (h *RecipeAPIHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.writeErrorJSON(w, http.StatusInternalServerError, "Session not initialized")
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorJSON(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.writeErrorJSON(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if req.CookingTime == 0 {
		req.CookingTime = defaultCookingTime
	}

	cmd := inbound.GenerateCommand{
		Ingredients: req.Ingredients,
		Genre:       req.Genre,
		Purpose:     req.Purpose,
		CookingTime: req.CookingTime,
		Allergies:   req.Allergies,
	}

	record, err := h.recipeService.Generate(r.Context(), sess.Log, cmd)
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    record,
		Message: "Recipe generated successfully",
	})
}

// History handles GET /api/v1/recipes
func (h *RecipeAPIHandlers) History(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.writeErrorJSON(w, http.StatusInternalServerError, "Session not initialized")
		return
	}

	records := h.recipeService.History(sess.Log)

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    records,
		Message: "History retrieved successfully",
	})
}

// Helper methods

func (h *RecipeAPIHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

func (h *RecipeAPIHandlers) writeErrorJSON(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, APIResponse{
		Success: false,
		Error:   message,
	})
}

func (h *RecipeAPIHandlers) writeAppError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		h.writeErrorJSON(w, appErr.StatusCode(), appErr.Message)
		return
	}
	h.writeErrorJSON(w, http.StatusInternalServerError, "An unexpected error occurred")
}
