package domain

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxAttributeValue is the top of the nominal stat range
const MaxAttributeValue = 255

// AttributeFraction returns the bar fill for a stat value, clamped to [0, 1]
func AttributeFraction(value int) float64 {
	if value <= 0 {
		return 0
	}
	return min(float64(value)/MaxAttributeValue, 1.0)
}

// FormatDeciunits renders n/10 without trailing zeros (7 -> "0.7", 60 -> "6")
func FormatDeciunits(n int) string {
	return strconv.FormatFloat(float64(n)/10, 'f', -1, 64)
}

// DisplayName capitalizes a record name for headings. Hyphens are kept, so
// "mr-mime" stays hyphenated.
func DisplayName(name string) string {
	return cases.Title(language.English).String(name)
}

// DisplayLabel turns an API slug like "special-attack" into "Special Attack".
// Only the first hyphen is replaced, so "mr-mime-galar" keeps its second one.
func DisplayLabel(slug string) string {
	// Casers keep state between calls, so each call gets its own.
	return cases.Title(language.English).String(strings.Replace(slug, "-", " ", 1))
}
