package pokemon

import (
	"regexp"
	"strings"

	"pokedex/internal/clients/pokeapi"
)

// noDescription is returned when a species has no usable flavor text.
const noDescription = "No description available."

var whitespaceRun = regexp.MustCompile(`\s+`)

// SelectDescription returns the flavor text of the first entry whose language
// tag matches, or "" when there is none.
func SelectDescription(entries []pokeapi.FlavorTextEntry, language string) string {
	for _, e := range entries {
		if e.Language.Name == language {
			return e.FlavorText
		}
	}
	return ""
}

// Normalize collapses newlines, tabs, form feeds and whitespace runs into
// single spaces and trims the ends. It is total: any input, including the
// empty string, yields a non-empty description.
func Normalize(text string) string {
	cleaned := strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	if cleaned == "" {
		return noDescription
	}
	return cleaned
}
