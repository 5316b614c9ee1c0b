package domain

import (
	"strings"

	"golang.org/x/text/width"
)

// NormalizeTitle trims a title and collapses whitespace runs, full-width
// spaces included, into one ASCII space. Case and width are preserved.
func NormalizeTitle(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeText is the lookup key form of text: whitespace collapsed as in
// NormalizeTitle, full-width ASCII and half-width katakana folded to their
// canonical width, then lowercased. "ＫＡＮＳＡＩ" and " kansai " both give
// "kansai".
func NormalizeText(text string) string {
	return strings.ToLower(width.Fold.String(NormalizeTitle(text)))
}

// IsBlank reports whether s is empty or only whitespace, U+3000 included.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
