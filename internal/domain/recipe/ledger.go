package recipe

import "sort"

// LedgerDateLayout is the day-granularity stamp used for ledger rows.
const LedgerDateLayout = "2006-01-02"

// LedgerRow is one day-stamped nutrition entry tied to a recipe name.
// The ledger grows by exactly one row per successful generation.
type LedgerRow struct {
	Date     string  `json:"date"`
	Name     string  `json:"recipe_name"`
	Calories float64 `json:"calories_kcal"`
	Protein  float64 `json:"protein_g"`
	Fat      float64 `json:"fat_g"`
	Carbs    float64 `json:"carbs_g"`
}

// DailySummary aggregates ledger rows for a single day.
type DailySummary struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories_kcal"`
	Protein  float64 `json:"protein_g"`
	Fat      float64 `json:"fat_g"`
	Carbs    float64 `json:"carbs_g"`
}

// MacroTotals holds the all-period sums of the three macronutrients,
// the data behind the breakdown charts.
type MacroTotals struct {
	Protein float64 `json:"protein_g"`
	Fat     float64 `json:"fat_g"`
	Carbs   float64 `json:"carbs_g"`
}

// SummarizeByDay groups ledger rows by date and sums each nutrient,
// returning summaries in ascending date order.
func SummarizeByDay(rows []LedgerRow) []DailySummary {
	byDate := make(map[string]*DailySummary)
	for _, row := range rows {
		summary, ok := byDate[row.Date]
		if !ok {
			summary = &DailySummary{Date: row.Date}
			byDate[row.Date] = summary
		}
		summary.Calories += row.Calories
		summary.Protein += row.Protein
		summary.Fat += row.Fat
		summary.Carbs += row.Carbs
	}

	summaries := make([]DailySummary, 0, len(byDate))
	for _, summary := range byDate {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date < summaries[j].Date
	})

	return summaries
}

// SumMacros totals protein, fat and carbohydrate across all rows.
func SumMacros(rows []LedgerRow) MacroTotals {
	var totals MacroTotals
	for _, row := range rows {
		totals.Protein += row.Protein
		totals.Fat += row.Fat
		totals.Carbs += row.Carbs
	}
	return totals
}
