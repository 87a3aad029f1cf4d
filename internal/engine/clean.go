package engine

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe     = regexp.MustCompile(`\s+`)
	trailingPunctRe  = regexp.MustCompile(`[，。；：]+$`)
	trailingHyphenRe = regexp.MustCompile(`\s*[-\s]+$`)
)

// CleanText collapses internal whitespace to single spaces and strips
// trailing full-width punctuation and hyphen/space runs left over from the
// split. Applied to both halves of a split before final validation.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = multiSpaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	text = trailingPunctRe.ReplaceAllString(text, "")
	text = trailingHyphenRe.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}
