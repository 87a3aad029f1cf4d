// Package split separates the content half of a glossary candidate into a
// Chinese term and an English term. Six independent strategies are tried in
// a fixed priority order; the first result accepted by the enhanced
// validator wins. Order matters: later strategies are more permissive and
// would produce false positives on inputs the earlier, stricter ones
// already handle correctly.
//
// Every strategy is a pure function over one content string. A strategy
// that cannot produce a structurally valid split returns ok=false; that is
// a routine outcome, not an error.
package split

import "regexp"

// Script classes shared by all strategies.
var (
	chineseRe      = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]`)
	chineseBlockRe = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]+`)
	englishRe      = regexp.MustCompile(`[a-zA-Z\x{0370}-\x{03FF}]`)
)

// latinGreek is the character-class body for Latin and Greek letters.
const latinGreek = `a-zA-Z\x{0370}-\x{03FF}`

// Result is a validated bilingual split: both halves trimmed, non-empty,
// script-homogeneous per the validator.
type Result struct {
	Chinese string
	English string
}

// Strategy attempts one heuristic split of the given content.
type Strategy interface {
	// Name identifies the strategy in debug logs and failure analysis.
	Name() string
	Attempt(content string) (Result, bool)
}

// Cascade applies the strategies in priority order and returns the first
// result that passes enhanced validation.
type Cascade struct {
	strategies []Strategy
	v          Validator
}

// NewCascade builds the default six-strategy cascade with the given
// validator.
func NewCascade(v Validator) *Cascade {
	return &Cascade{
		v: v,
		strategies: []Strategy{
			numericSuffix{v},
			uppercaseBoundary{v},
			lastChinese{},
			chineseBlock{},
			patternMatch{},
			specialChar{},
		},
	}
}

// Split runs the cascade over content. ok is false when no strategy
// produced a split accepted by the enhanced validator.
func (c *Cascade) Split(content string) (Result, bool) {
	for _, s := range c.strategies {
		if r, ok := s.Attempt(content); ok && c.v.Enhanced(r.Chinese, r.English) {
			return r, true
		}
	}
	return Result{}, false
}

// lastChineseEnd returns the byte offset just past the last Chinese
// character in s, or -1 when s contains none.
func lastChineseEnd(s string) int {
	locs := chineseRe.FindAllStringIndex(s, -1)
	if locs == nil {
		return -1
	}
	return locs[len(locs)-1][1]
}

// lastChineseStart returns the byte offset of the last Chinese character
// in s, or -1 when s contains none.
func lastChineseStart(s string) int {
	locs := chineseRe.FindAllStringIndex(s, -1)
	if locs == nil {
		return -1
	}
	return locs[len(locs)-1][0]
}
