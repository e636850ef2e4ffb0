package recipes

import "testing"

func TestParseIngredients(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []IngredientLine
	}{
		{"name and quantity", "Rice - 2 cups\nGarlic", []IngredientLine{{"Rice", "2 cups"}, {"Garlic", ""}}},
		{"first hyphen only", "Sugar-free syrup - 1 tbsp", []IngredientLine{{"Sugar", "free syrup - 1 tbsp"}}},
		{"blank lines and crlf", "\r\n  Eggs -  3 \r\n\r\n", []IngredientLine{{"Eggs", "3"}}},
		{"empty name skipped", "- 2 cups\nSalt -", []IngredientLine{{"Salt", ""}}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseIngredients(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseIngredients(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("ParseIngredients(%q)[%d] = %+v, want %+v", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}
