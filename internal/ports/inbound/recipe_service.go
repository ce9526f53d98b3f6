// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the use cases the application exposes to its delivery layer
package inbound

import (
	"context"

	"github.com/kondate-ai/kondate/internal/domain/recipe"
	"github.com/kondate-ai/kondate/internal/ports/outbound"
)

// GenerateCommand carries the form values for one generation request.
type GenerateCommand struct {
	Ingredients string
	Genre       string
	Purpose     string
	CookingTime int
	Allergies   string
}

// RecordDTO is the delivery-layer projection of a recipe record.
type RecordDTO struct {
	ID        string               `json:"id"`
	CreatedAt string               `json:"created_at"`
	Name      string               `json:"recipe_name"`
	Text      string               `json:"recipe_text"`
	Inputs    recipe.RequestInputs `json:"inputs"`
	Nutrition NutritionDTO         `json:"nutrition"`
}

// NutritionDTO mirrors the extracted reading for API responses.
type NutritionDTO struct {
	Calories float64 `json:"calories_kcal"`
	Protein  float64 `json:"protein_g"`
	Fat      float64 `json:"fat_g"`
	Carbs    float64 `json:"carbs_g"`
}

// SummaryDTO is the analytics view: per-day sums plus the all-period
// macronutrient totals behind the breakdown charts.
type SummaryDTO struct {
	Daily  []recipe.DailySummary `json:"daily"`
	Totals recipe.MacroTotals    `json:"totals"`
}

// RecipeService defines the recipe generation and analytics use cases.
// Every operation acts on the calling session's log; sessions never
// share state.
type RecipeService interface {
	// Generate runs one request through the full flow: validate,
	// prompt, collaborator call, nutrition extraction, append. On any
	// failure nothing is persisted.
	Generate(ctx context.Context, log outbound.RecipeLog, cmd GenerateCommand) (*RecordDTO, error)

	// History returns all generated recipes, newest first.
	History(log outbound.RecipeLog) []RecordDTO

	// Ledger returns the nutrition ledger rows in insertion order.
	Ledger(log outbound.RecipeLog) []recipe.LedgerRow

	// Summary returns per-day and all-period aggregates.
	Summary(log outbound.RecipeLog) SummaryDTO

	// ExportCSV renders the ledger as a UTF-8 CSV document.
	ExportCSV(log outbound.RecipeLog) ([]byte, error)
}
