// Package recipe provides the application layer for recipe generation
// This implements the use cases defined in the inbound ports
package recipe

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"go.uber.org/zap"

	"github.com/kondate-ai/kondate/internal/domain/nutrition"
	"github.com/kondate-ai/kondate/internal/domain/recipe"
	"github.com/kondate-ai/kondate/internal/ports/inbound"
	"github.com/kondate-ai/kondate/internal/ports/outbound"
	"github.com/kondate-ai/kondate/pkg/errors"
)

// csvHeader is the fixed column order of the ledger export.
var csvHeader = []string{"date", "recipe_name", "calories_kcal", "protein_g", "fat_g", "carbs_g"}

// GenerateService implements the recipe generation use cases
type GenerateService struct {
	aiService outbound.AIService
	extractor *nutrition.Extractor
	events    outbound.EventPublisher
	logger    *zap.Logger
}

// NewGenerateService creates a new generation service
func NewGenerateService(
	aiService outbound.AIService,
	extractor *nutrition.Extractor,
	events outbound.EventPublisher,
	logger *zap.Logger,
) inbound.RecipeService {
	return &GenerateService{
		aiService: aiService,
		extractor: extractor,
		events:    events,
		logger:    logger.Named("recipe-service"),
	}
}

// Generate runs one request through validation, the collaborator call,
// nutrition extraction and the session-log append. The request is
// rejected before any collaborator call when no ingredient survives
// normalization; a collaborator failure leaves the log untouched.
func (s *GenerateService) Generate(ctx context.Context, log outbound.RecipeLog, cmd inbound.GenerateCommand) (*inbound.RecordDTO, error) {
	ingredients := ParseIngredients(cmd.Ingredients)
	if len(ingredients) == 0 {
		return nil, errors.NewEmptyIngredientsError()
	}

	inputs := recipe.RequestInputs{
		Ingredients: cmd.Ingredients,
		Genre:       cmd.Genre,
		Purpose:     cmd.Purpose,
		CookingTime: cmd.CookingTime,
		Allergies:   cmd.Allergies,
	}

	prompt := BuildPrompt(ingredients, inputs)

	s.logger.Info("Generating recipe",
		zap.Int("ingredient_count", len(ingredients)),
		zap.Int("cooking_time_minutes", inputs.CookingTime),
	)

	// Single blocking exchange with the collaborator; no retry.
	text, err := s.aiService.GenerateRecipe(ctx, prompt)
	if err != nil {
		s.logger.Error("Recipe generation failed", zap.Error(err))
		return nil, errors.NewExternalServiceError("text-generation service", err)
	}

	// Extraction never fails; absent labels stay at zero.
	reading := s.extractor.Extract(text)

	record, err := recipe.NewRecord(inputs, text, reading)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create recipe record")
	}

	if err := log.Append(record); err != nil {
		return nil, errors.Wrap(err, "failed to append recipe record")
	}

	s.events.Publish(ctx, record.Events())

	s.logger.Info("Recipe generated successfully",
		zap.String("record_id", record.ID().String()),
		zap.String("recipe_name", record.Name()),
		zap.Bool("nutrition_extracted", !reading.IsZero()),
	)

	dto := recordToDTO(record)
	return &dto, nil
}

// History returns all generated recipes, newest first.
func (s *GenerateService) History(log outbound.RecipeLog) []inbound.RecordDTO {
	records := log.Records()

	dtos := make([]inbound.RecordDTO, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		dtos = append(dtos, recordToDTO(records[i]))
	}
	return dtos
}

// Ledger returns the nutrition ledger rows in insertion order.
func (s *GenerateService) Ledger(log outbound.RecipeLog) []recipe.LedgerRow {
	return log.LedgerRows()
}

// Summary returns per-day sums and the all-period macronutrient totals.
func (s *GenerateService) Summary(log outbound.RecipeLog) inbound.SummaryDTO {
	rows := log.LedgerRows()
	return inbound.SummaryDTO{
		Daily:  recipe.SummarizeByDay(rows),
		Totals: recipe.SumMacros(rows),
	}
}

// ExportCSV renders the ledger as a UTF-8 CSV document with a fixed
// column order.
func (s *GenerateService) ExportCSV(log outbound.RecipeLog) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, errors.Wrap(err, "failed to write CSV header")
	}

	for _, row := range log.LedgerRows() {
		fields := []string{
			row.Date,
			row.Name,
			formatValue(row.Calories),
			formatValue(row.Protein),
			formatValue(row.Fat),
			formatValue(row.Carbs),
		}
		if err := w.Write(fields); err != nil {
			return nil, errors.Wrap(err, "failed to write CSV row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to flush CSV")
	}

	return buf.Bytes(), nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func recordToDTO(record *recipe.Record) inbound.RecordDTO {
	reading := record.Nutrition()
	return inbound.RecordDTO{
		ID:        record.ID().String(),
		CreatedAt: record.CreatedAt().Format("2006-01-02 15:04:05"),
		Name:      record.Name(),
		Text:      record.Text(),
		Inputs:    record.Inputs(),
		Nutrition: inbound.NutritionDTO{
			Calories: reading.Calories,
			Protein:  reading.Protein,
			Fat:      reading.Fat,
			Carbs:    reading.Carbs,
		},
	}
}
