// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/kondate-ai/kondate/internal/domain/nutrition"
	"github.com/kondate-ai/kondate/internal/domain/recipe"
)

// RecipeTextBuilder builds generated-looking recipe text with known
// nutrition values, in the labeled format the extractor scans for.
type RecipeTextBuilder struct {
	name      string
	withName  bool
	calories  float64
	protein   float64
	fat       float64
	carbs     float64
	fullWidth bool
}

// NewRecipeTextBuilder creates a builder with plausible defaults
func NewRecipeTextBuilder() *RecipeTextBuilder {
	return &RecipeTextBuilder{
		name:     "鶏むね肉のトマト煮込み",
		withName: true,
		calories: 350,
		protein:  20,
		fat:      10.5,
		carbs:    45,
	}
}

// WithName sets the recipe name on the first line
func (b *RecipeTextBuilder) WithName(name string) *RecipeTextBuilder {
	b.name = name
	b.withName = true
	return b
}

// WithoutName drops the name label entirely
func (b *RecipeTextBuilder) WithoutName() *RecipeTextBuilder {
	b.withName = false
	return b
}

// WithNutrition sets the four labeled values
func (b *RecipeTextBuilder) WithNutrition(calories, protein, fat, carbs float64) *RecipeTextBuilder {
	b.calories = calories
	b.protein = protein
	b.fat = fat
	b.carbs = carbs
	return b
}

// WithFullWidthColons renders the nutrition labels with full-width colons
func (b *RecipeTextBuilder) WithFullWidthColons() *RecipeTextBuilder {
	b.fullWidth = true
	return b
}

// Build renders the text
func (b *RecipeTextBuilder) Build() string {
	colon := ": "
	if b.fullWidth {
		colon = "："
	}

	var sb strings.Builder
	if b.withName {
		sb.WriteString(recipe.NameLabel + b.name + "\n")
	}
	sb.WriteString("材料：鶏むね肉、トマト、玉ねぎ\n")
	sb.WriteString("作り方：\n1. 材料を切る。\n2. 煮込む。\n")
	sb.WriteString("栄養情報：\n")
	fmt.Fprintf(&sb, "- カロリー%s%gkcal\n", colon, b.calories)
	fmt.Fprintf(&sb, "- タンパク質%s%gg\n", colon, b.protein)
	fmt.Fprintf(&sb, "- 脂質%s%gg\n", colon, b.fat)
	fmt.Fprintf(&sb, "- 炭水化物%s%gg\n", colon, b.carbs)
	return sb.String()
}

// RecordFactory provides methods to create test records
type RecordFactory struct {
	faker *gofakeit.Faker
}

// NewRecordFactory creates a new record factory with seeded faker
func NewRecordFactory(seed int64) *RecordFactory {
	return &RecordFactory{
		faker: gofakeit.New(seed),
	}
}

// Inputs creates plausible request inputs
func (f *RecordFactory) Inputs() recipe.RequestInputs {
	return recipe.RequestInputs{
		Ingredients: strings.Join([]string{f.faker.Vegetable(), f.faker.Vegetable(), f.faker.Fruit()}, ", "),
		Genre:       "和食",
		Purpose:     "健康的",
		CookingTime: 10 + f.faker.Number(0, 22)*5,
		Allergies:   "",
	}
}

// Record creates a record from labeled text with the given nutrition
func (f *RecordFactory) Record(calories, protein, fat, carbs float64) *recipe.Record {
	text := NewRecipeTextBuilder().
		WithName(f.faker.Dinner()).
		WithNutrition(calories, protein, fat, carbs).
		Build()

	reading := nutrition.Reading{
		Calories: calories,
		Protein:  protein,
		Fat:      fat,
		Carbs:    carbs,
	}

	record, err := recipe.NewRecord(f.Inputs(), text, reading)
	if err != nil {
		panic(fmt.Sprintf("factory produced invalid record: %v", err))
	}
	return record
}
