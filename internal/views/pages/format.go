package pages

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const excerptLength = 120

func formatMinutes(minutes *int) string {
	if minutes == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d min", *minutes)
}

func formatCost(cost *float64) string {
	if cost == nil {
		return "n/a"
	}
	return fmt.Sprintf("$%.2f", *cost)
}

// formatRating prints the average with one decimal, or "No reviews yet".
func formatRating(avg *float64) string {
	if avg == nil {
		return "No reviews yet"
	}
	return fmt.Sprintf("%.1f / 5", *avg)
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

func excerpt(text string) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= excerptLength {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:excerptLength])) + "…"
}
