package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// TitleCase trims surrounding whitespace and capitalizes each word, the
// normalization applied to names before they are stored.
func TitleCase(s string) string {
	return titleCaser.String(strings.TrimSpace(s))
}
