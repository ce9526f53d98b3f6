package recipe

import "errors"

// Domain errors for recipe generation

var (
	// Entity validation errors
	ErrEmptyRecipeText = errors.New("recipe text must not be empty")
	ErrNoIngredients   = errors.New("at least one ingredient is required")

	// Input range errors
	ErrCookingTimeOutOfRange = errors.New("cooking time must be between 10 and 120 minutes")
)
