package recipes

import "strings"

// ParseIngredients reads one ingredient per line in "name - quantity" form.
// Only the first hyphen separates name from quantity, so "Sugar-free syrup"
// becomes name "Sugar" and quantity "free syrup". Lines without a hyphen are
// all name. Blank lines and lines with an empty name are dropped.
func ParseIngredients(text string) []IngredientLine {
	var lines []IngredientLine
	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		name, quantity, _ := strings.Cut(line, "-")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		lines = append(lines, IngredientLine{Name: name, Quantity: strings.TrimSpace(quantity)})
	}
	return lines
}
