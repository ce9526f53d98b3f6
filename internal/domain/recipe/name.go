package recipe

import "strings"

// NameLabel is the label the generation prompt asks the model to open
// its response with.
const NameLabel = "レシピ名："

// UnknownName is the fallback when the response carries no name label.
const UnknownName = "不明なレシピ"

// NameFromText derives the recipe name from generated text: the first
// line, stripped of the name label, when that label is present anywhere
// in the text; UnknownName otherwise.
func NameFromText(text string) string {
	if !strings.Contains(text, NameLabel) {
		return UnknownName
	}

	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return UnknownName
	}

	return strings.TrimSpace(strings.ReplaceAll(lines[0], NameLabel, ""))
}
