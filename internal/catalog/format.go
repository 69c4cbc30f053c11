package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/HabitInventory_Go/internal/domain"
)

// DisplayName returns the egg's display text, or a title-cased rendering of
// its key ("BearCub" -> "Bear Cub") when the catalog has no text.
func DisplayName(egg *domain.EggDefinition) string {
	if egg.Text != "" {
		return egg.Text
	}
	// Casers are stateful, so one per call.
	return cases.Title(language.English).String(splitCamel(egg.Key))
}

// Describe renders the adjective phrase used in hatch messages, e.g. "loyal Wolf".
func Describe(egg *domain.EggDefinition) string {
	name := DisplayName(egg)
	if egg.Adjective == "" {
		return name
	}
	return egg.Adjective + " " + name
}

func splitCamel(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]) {
			b.WriteRune(' ')
		}
		if r == '_' || r == '-' {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
