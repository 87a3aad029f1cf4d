// Package engine implements the glossary segmentation pipeline: line
// normalization, merge of entries broken across physical lines, splitting
// of merged lines at page-number boundaries, and the per-entry processing
// that turns candidates into flashcard records.
//
// The whole package is synchronous and free of shared state: one Process
// call owns all of its buffers and statistics. The only external resource
// touched is the read-only image-file probe in the tagging package.
package engine

import (
	"regexp"
	"strings"
)

// chineseRe matches one character of the CJK unified block used by the
// source documents.
var chineseRe = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]`)

// latinGreek is the character-class body for Latin and Greek letters,
// shared by the matchers that need it inside larger expressions.
const latinGreek = `a-zA-Z\x{0370}-\x{03FF}`

var unicodeSpaceRe = regexp.MustCompile(`[\x{3000}\x{200A}]+`)

var fullwidthReplacer = strings.NewReplacer(
	"，", ",",
	"．", ".",
	"；", ";",
	"：", ":",
	"\t", " ",
)

// Normalize canonicalizes punctuation and whitespace variants so downstream
// patterns match consistently: full-width comma/period/semicolon/colon
// become their half-width equivalents, and tabs and ideographic/hair spaces
// become a single ASCII space. Everything else, including Chinese text and
// digits, is left untouched. Idempotent.
func Normalize(text string) string {
	text = fullwidthReplacer.Replace(text)
	return unicodeSpaceRe.ReplaceAllString(text, " ")
}

// HasChinese reports whether s contains at least one Chinese character.
func HasChinese(s string) bool { return chineseRe.MatchString(s) }
