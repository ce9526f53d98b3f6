package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/kondate-ai/kondate/internal/infrastructure/session"
	"github.com/kondate-ai/kondate/internal/ports/inbound"
)

// NutritionAPIHandlers handles ledger, summary and export requests
type NutritionAPIHandlers struct {
	recipeService inbound.RecipeService
	logger        *zap.Logger
}

// NewNutritionAPIHandlers creates a new nutrition API handlers instance
func NewNutritionAPIHandlers(recipeService inbound.RecipeService, logger *zap.Logger) *NutritionAPIHandlers {
	return &NutritionAPIHandlers{
		recipeService: recipeService,
		logger:        logger,
	}
}

// Ledger handles GET /api/v1/nutrition/ledger
func (h *NutritionAPIHandlers) Ledger(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.writeErrorJSON(w, http.StatusInternalServerError, "Session not initialized")
		return
	}

	rows := h.recipeService.Ledger(sess.Log)

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    rows,
		Message: "Ledger retrieved successfully",
	})
}

// Summary handles GET /api/v1/nutrition/summary
func (h *NutritionAPIHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.writeErrorJSON(w, http.StatusInternalServerError, "Session not initialized")
		return
	}

	summary := h.recipeService.Summary(sess.Log)

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    summary,
		Message: "Summary retrieved successfully",
	})
}

// Export handles GET /api/v1/nutrition/export
func (h *NutritionAPIHandlers) Export(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.writeErrorJSON(w, http.StatusInternalServerError, "Session not initialized")
		return
	}

	data, err := h.recipeService.ExportCSV(sess.Log)
	if err != nil {
		h.logger.Error("Ledger export failed", zap.Error(err))
		h.writeErrorJSON(w, http.StatusInternalServerError, "Failed to export ledger")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="nutrition_data.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("Failed to write CSV response", zap.Error(err))
	}
}

// Helper methods

func (h *NutritionAPIHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

func (h *NutritionAPIHandlers) writeErrorJSON(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, APIResponse{
		Success: false,
		Error:   message,
	})
}
