package split

import (
	"strings"
	"unicode/utf8"
)

// Validator checks split results in two layers. The cascade accepts a
// candidate only through the enhanced layer; the pipeline re-validates with
// the basic layer after text cleanup, which can strip a half below the
// thresholds.
type Validator struct {
	// AlphaRatio is the minimum share of Latin/Greek letters required in
	// the English half (rejects splits whose "English" part is mostly
	// punctuation or digits).
	AlphaRatio float64
	// MinAlphaCount is the minimum number of Latin/Greek letters required
	// by the enhanced layer.
	MinAlphaCount int
}

// NewValidator returns the thresholds tuned to the source documents.
func NewValidator() Validator {
	return Validator{AlphaRatio: 0.3, MinAlphaCount: 2}
}

// Basic accepts a split when both halves are non-empty, the Chinese half
// contains a Chinese character, the English half contains a Latin/Greek
// letter, and letters make up at least AlphaRatio of the English half.
func (v Validator) Basic(chinese, english string) bool {
	if strings.TrimSpace(chinese) == "" || strings.TrimSpace(english) == "" {
		return false
	}
	if !chineseRe.MatchString(chinese) {
		return false
	}
	if !englishRe.MatchString(english) {
		return false
	}

	alpha := alphaCount(english)
	total := utf8.RuneCountInString(english)
	return float64(alpha) >= float64(total)*v.AlphaRatio
}

// Enhanced is a superset of Basic: the English half must additionally carry
// at least MinAlphaCount letters and no Chinese characters
// (cross-contamination).
func (v Validator) Enhanced(chinese, english string) bool {
	if !v.Basic(chinese, english) {
		return false
	}
	if alphaCount(english) < v.MinAlphaCount {
		return false
	}
	return !chineseRe.MatchString(english)
}

// alphaCount counts Latin and Greek letters in s.
func alphaCount(s string) int {
	return len(englishRe.FindAllString(s, -1))
}
