package recipe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kondate-ai/kondate/internal/domain/nutrition"
)

func validInputs() RequestInputs {
	return RequestInputs{
		Ingredients: "鶏むね肉, トマト, 玉ねぎ",
		Genre:       "洋食",
		Purpose:     "ヘルシー",
		CookingTime: 30,
		Allergies:   "",
	}
}

func TestNewRecord(t *testing.T) {
	t.Run("valid record creation", func(t *testing.T) {
		text := "レシピ名：鶏肉のトマト煮\n材料：...\nカロリー：350kcal"
		reading := nutrition.Reading{Calories: 350}

		record, err := NewRecord(validInputs(), text, reading)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, record.ID())
		assert.False(t, record.CreatedAt().IsZero())
		assert.Equal(t, text, record.Text())
		assert.Equal(t, reading, record.Nutrition())
		assert.Equal(t, "鶏肉のトマト煮", record.Name())
	})

	t.Run("preserves inputs verbatim", func(t *testing.T) {
		inputs := validInputs()

		record, err := NewRecord(inputs, "レシピ名：x", nutrition.Reading{})

		require.NoError(t, err)
		assert.Equal(t, inputs, record.Inputs())
	})

	t.Run("empty text rejected", func(t *testing.T) {
		_, err := NewRecord(validInputs(), "", nutrition.Reading{})
		assert.ErrorIs(t, err, ErrEmptyRecipeText)

		_, err = NewRecord(validInputs(), "   \n  ", nutrition.Reading{})
		assert.ErrorIs(t, err, ErrEmptyRecipeText)
	})

	t.Run("raises generated event", func(t *testing.T) {
		record, err := NewRecord(validInputs(), "レシピ名：小松菜の炒め物", nutrition.Reading{})
		require.NoError(t, err)

		events := record.Events()
		require.Len(t, events, 1)

		generated, ok := events[0].(GeneratedEvent)
		require.True(t, ok)
		assert.Equal(t, record.ID(), generated.RecordID)
		assert.Equal(t, "小松菜の炒め物", generated.Name)
		assert.Equal(t, "recipe.generated", generated.EventName())

		// Events are cleared once collected.
		assert.Empty(t, record.Events())
	})
}

func TestRecordLedgerRow(t *testing.T) {
	reading := nutrition.Reading{Calories: 350, Protein: 20, Fat: 10.5, Carbs: 45}

	record, err := NewRecord(validInputs(), "レシピ名：鶏肉のトマト煮", reading)
	require.NoError(t, err)

	row := record.LedgerRow()

	assert.Equal(t, record.CreatedAt().Format(LedgerDateLayout), row.Date)
	assert.Equal(t, "鶏肉のトマト煮", row.Name)
	assert.Equal(t, 350.0, row.Calories)
	assert.Equal(t, 20.0, row.Protein)
	assert.Equal(t, 10.5, row.Fat)
	assert.Equal(t, 45.0, row.Carbs)
}
