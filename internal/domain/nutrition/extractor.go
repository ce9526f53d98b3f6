package nutrition

import (
	"regexp"
	"strconv"

	"go.uber.org/zap"
)

// Field identifies one of the four extracted quantities.
type Field string

const (
	FieldCalories Field = "calories_kcal"
	FieldProtein  Field = "protein_g"
	FieldFat      Field = "fat_g"
	FieldCarbs    Field = "carbs_g"
)

// fieldPattern pairs a nutrition field with the pattern that locates it.
// Generated text labels values as "ラベル: 値 単位"; both the half-width
// and full-width colon appear in practice, with arbitrary whitespace
// around the colon and before the unit.
type fieldPattern struct {
	field   Field
	pattern *regexp.Regexp
}

var fieldPatterns = []fieldPattern{
	{FieldCalories, regexp.MustCompile(`カロリー\s*[：:]\s*(\d+(\.\d+)?)\s*kcal`)},
	{FieldProtein, regexp.MustCompile(`タンパク質\s*[：:]\s*(\d+(\.\d+)?)\s*g`)},
	{FieldFat, regexp.MustCompile(`脂質\s*[：:]\s*(\d+(\.\d+)?)\s*g`)},
	{FieldCarbs, regexp.MustCompile(`炭水化物\s*[：:]\s*(\d+(\.\d+)?)\s*g`)},
}

// Extractor scans free-form recipe text for labeled nutrition values.
// It is stateless apart from an optional diagnostic logger; extraction
// is a pure function of the input text.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates an extractor. logger may be nil.
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger.Named("nutrition-extractor")}
}

// Extract recovers a Reading from text. Each field is matched
// independently: a missing or unparsable value leaves that field at 0.0
// and never fails the call. The first occurrence of each label wins.
func (e *Extractor) Extract(text string) Reading {
	var reading Reading

	for _, fp := range fieldPatterns {
		match := fp.pattern.FindStringSubmatch(text)
		if match == nil {
			e.logger.Debug("nutrition label not found",
				zap.String("field", string(fp.field)))
			continue
		}

		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			// The pattern only captures digits, so this should not
			// happen; treat it as a non-match.
			e.logger.Debug("nutrition value unparsable",
				zap.String("field", string(fp.field)),
				zap.String("raw", match[1]))
			continue
		}

		reading.set(fp.field, value)
		e.logger.Debug("nutrition value extracted",
			zap.String("field", string(fp.field)),
			zap.Float64("value", value))
	}

	return reading
}

func (r *Reading) set(field Field, value float64) {
	switch field {
	case FieldCalories:
		r.Calories = value
	case FieldProtein:
		r.Protein = value
	case FieldFat:
		r.Fat = value
	case FieldCarbs:
		r.Carbs = value
	}
}
