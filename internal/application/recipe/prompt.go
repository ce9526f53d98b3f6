package recipe

import (
	"fmt"
	"strings"

	"github.com/kondate-ai/kondate/internal/domain/recipe"
)

// Unconstrained is the select-box value meaning "no preference" for
// genre and purpose.
const Unconstrained = "指定なし"

// ParseIngredients normalizes the free-text ingredients field into a
// list: entries are split on commas (half or full width) and newlines,
// trimmed, and empties dropped.
func ParseIngredients(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '、' || r == '，' || r == '\n'
	})

	ingredients := make([]string, 0, len(fields))
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			ingredients = append(ingredients, trimmed)
		}
	}
	return ingredients
}

// BuildPrompt assembles the generation instruction for the collaborator.
// The template asks for concrete ingredients and steps, a labeled
// nutrition block in the exact label/unit convention the extractor
// scans for, and a cooking time within the requested budget. The
// trailing section scaffold pins the response shape so the recipe name
// lands on the first line.
func BuildPrompt(ingredients []string, inputs recipe.RequestInputs) string {
	genre := inputs.Genre
	if genre == "" || genre == Unconstrained {
		genre = "特に指定なし"
	}
	purpose := inputs.Purpose
	if purpose == "" || purpose == Unconstrained {
		purpose = "特に指定なし"
	}
	allergies := inputs.Allergies
	if allergies == "" {
		allergies = "なし"
	}

	var b strings.Builder
	b.WriteString("あなたは優秀な料理研究家であり、栄養士でもあります。\n")
	b.WriteString("以下の情報を元に、健康的で美味しいレシピを考案してください。\n")
	b.WriteString("制約事項：\n")
	b.WriteString("- レシピは具体的な材料と詳細な手順で構成してください。\n")
	b.WriteString("- 栄養情報（推定カロリー(kcal)、タンパク質(g)、脂質(g)、炭水化物(g)）を必ず含めてください。\n")
	b.WriteString("  栄養情報は箇条書きで分かりやすく記述し、それぞれ具体的な数値（例: カロリー: 350kcal, タンパク質: 20g）を記載してください。\n")
	fmt.Fprintf(&b, "- 調理時間は%d分以内を目安としてください。\n", inputs.CookingTime)
	b.WriteString("- アレルギー情報がある場合は、それに配慮してください。\n")
	b.WriteString("\nユーザーの要望：\n")
	fmt.Fprintf(&b, "- 使いたい食材：%s\n", strings.Join(ingredients, ", "))
	fmt.Fprintf(&b, "- 料理のジャンル：%s\n", genre)
	fmt.Fprintf(&b, "- 食事の目的：%s\n", purpose)
	fmt.Fprintf(&b, "- アレルギー：%s\n", allergies)
	b.WriteString("\nレシピ名：\n材料：\n作り方：\n栄養情報：\n")

	return b.String()
}
