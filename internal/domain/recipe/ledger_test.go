package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeByDay(t *testing.T) {
	t.Run("groups and sums per day in ascending order", func(t *testing.T) {
		rows := []LedgerRow{
			{Date: "2026-08-26", Name: "朝食", Calories: 300, Protein: 15, Fat: 8, Carbs: 40},
			{Date: "2026-08-25", Name: "夕食", Calories: 600, Protein: 30, Fat: 20, Carbs: 70},
			{Date: "2026-08-26", Name: "昼食", Calories: 450, Protein: 25, Fat: 12, Carbs: 55},
		}

		summaries := SummarizeByDay(rows)

		require.Len(t, summaries, 2)
		assert.Equal(t, DailySummary{Date: "2026-08-25", Calories: 600, Protein: 30, Fat: 20, Carbs: 70}, summaries[0])
		assert.Equal(t, DailySummary{Date: "2026-08-26", Calories: 750, Protein: 40, Fat: 20, Carbs: 95}, summaries[1])
	})

	t.Run("empty ledger", func(t *testing.T) {
		assert.Empty(t, SummarizeByDay(nil))
	})
}

func TestSumMacros(t *testing.T) {
	rows := []LedgerRow{
		{Protein: 20, Fat: 10.5, Carbs: 45},
		{Protein: 30, Fat: 15, Carbs: 60},
	}

	totals := SumMacros(rows)

	assert.Equal(t, MacroTotals{Protein: 50, Fat: 25.5, Carbs: 105}, totals)
	assert.Equal(t, MacroTotals{}, SumMacros(nil))
}
