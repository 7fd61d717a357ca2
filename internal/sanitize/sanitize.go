// Package sanitize cleans free-form text before it is validated or stored.
package sanitize

import (
	"html"
	"strings"
)

// Clean trims surrounding whitespace, escapes markup-significant
// characters, and truncates to maxLen characters (rune-safe). A maxLen
// of zero or less disables truncation. Deterministic, no side effects.
func Clean(text string, maxLen int) string {
	text = html.EscapeString(strings.TrimSpace(text))
	if maxLen > 0 {
		if runes := []rune(text); len(runes) > maxLen {
			text = string(runes[:maxLen])
		}
	}
	return text
}
