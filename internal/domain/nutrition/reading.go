// Package nutrition contains the nutrition domain: the Reading value
// object and the extractor that recovers readings from free-form AI text.
package nutrition

// Reading holds the four nutritional quantities tracked per recipe.
// A field is 0.0 when the source text carried no value for it; the
// domain does not distinguish "reported zero" from "not reported".
type Reading struct {
	Calories float64 `json:"calories_kcal"`
	Protein  float64 `json:"protein_g"`
	Fat      float64 `json:"fat_g"`
	Carbs    float64 `json:"carbs_g"`
}

// IsZero reports whether no field carries a value.
func (r Reading) IsZero() bool {
	return r.Calories == 0 && r.Protein == 0 && r.Fat == 0 && r.Carbs == 0
}
