package split

import (
	"regexp"
	"strings"
)

// --- 1. numeric-suffix strategy ---

var (
	hyphenNumSuffixRe = regexp.MustCompile(`^(-\d+)\s+([` + latinGreek + `].*)$`)
	bareNumSuffixRe   = regexp.MustCompile(`^(\d+)\s+([` + latinGreek + `].*)$`)
)

// numericSuffix handles terms whose Chinese half ends in a short numeric or
// hyphen-numeric suffix, like scale identifiers ("量表-7 GAD-7"). The
// suffix stays attached to the Chinese term instead of being mistaken for a
// boundary.
type numericSuffix struct {
	v Validator
}

func (numericSuffix) Name() string { return "numeric-suffix" }

func (s numericSuffix) Attempt(content string) (Result, bool) {
	content = strings.TrimSpace(content)

	end := lastChineseEnd(content)
	if end < 0 {
		return Result{}, false
	}
	remaining := content[end:]

	for _, re := range []*regexp.Regexp{hyphenNumSuffixRe, bareNumSuffixRe} {
		m := re.FindStringSubmatch(remaining)
		if m == nil {
			continue
		}
		chinese := strings.TrimSpace(content[:end+len(m[1])])
		english := strings.TrimSpace(m[2])
		if s.v.Enhanced(chinese, english) {
			return Result{Chinese: chinese, English: english}, true
		}
	}

	return Result{}, false
}

// --- 2. uppercase-boundary strategy ---

var (
	pageSuffixRe = regexp.MustCompile(`(\d+(?:[,\x{FF0C}]\s*\d+)*)\s*$`)
	upperAbbrRe  = regexp.MustCompile(`^([A-Z\x{0391}-\x{03A9}]+)\s+([` + latinGreek + `].*)$`)
	mixedAbbrRe  = regexp.MustCompile(`^([` + latinGreek + `]+)\s+([a-z\x{03B1}-\x{03C9}][` + latinGreek + `].*)$`)
)

// uppercaseBoundary handles entries whose Chinese half ends in an uppercase
// abbreviation ("房室结 AV node"): the abbreviation run after the last
// Chinese character belongs to the first term, the rest is the English
// term. Any trailing page-number suffix is stripped first.
type uppercaseBoundary struct {
	v Validator
}

func (uppercaseBoundary) Name() string { return "uppercase-boundary" }

func (s uppercaseBoundary) Attempt(content string) (Result, bool) {
	content = strings.TrimSpace(content)

	if m := pageSuffixRe.FindStringIndex(content); m != nil {
		content = strings.TrimSpace(content[:m[0]])
	}

	end := lastChineseEnd(content)
	if end < 0 {
		return Result{}, false
	}
	remaining := content[end:]

	for _, re := range []*regexp.Regexp{upperAbbrRe, mixedAbbrRe} {
		m := re.FindStringSubmatch(remaining)
		if m == nil {
			continue
		}
		chinese := strings.TrimSpace(content[:end+len(m[1])])
		english := strings.TrimSpace(m[2])
		if s.v.Basic(chinese, english) {
			return Result{Chinese: chinese, English: english}, true
		}
	}

	return Result{}, false
}

// --- 3. basic last-logograph strategy ---

// lastChinese splits at the first English character after the last Chinese
// character in the string.
type lastChinese struct{}

func (lastChinese) Name() string { return "last-chinese" }

func (lastChinese) Attempt(content string) (Result, bool) {
	start := lastChineseStart(content)
	if start < 0 {
		return Result{}, false
	}

	m := englishRe.FindStringIndex(content[start:])
	if m == nil {
		return Result{}, false
	}

	split := start + m[0]
	return Result{
		Chinese: strings.TrimSpace(content[:split]),
		English: strings.TrimSpace(content[split:]),
	}, true
}

// --- 4. logograph-block strategy ---

// chineseBlock splits immediately after the last contiguous run of Chinese
// characters, provided English text follows. Covers entries where strategy
// 3 cuts too early because isolated Chinese characters appear later.
type chineseBlock struct{}

func (chineseBlock) Name() string { return "chinese-block" }

func (chineseBlock) Attempt(content string) (Result, bool) {
	blocks := chineseBlockRe.FindAllStringIndex(content, -1)
	if blocks == nil {
		return Result{}, false
	}

	split := blocks[len(blocks)-1][1]
	english := strings.TrimSpace(content[split:])
	if !englishRe.MatchString(english) {
		return Result{}, false
	}

	return Result{
		Chinese: strings.TrimSpace(content[:split]),
		English: english,
	}, true
}

// --- 5. pattern strategy ---

// shapePatterns are tried in order; each captures (Chinese, English). The
// shapes: whitespace-separated halves, comma-separated halves, an
// uppercase-initial English run, and parenthesized English.
var shapePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(.*[\x{4e00}-\x{9fa5}].*?)\s+([` + latinGreek + `].*?)$`),
	regexp.MustCompile(`^(.*[\x{4e00}-\x{9fa5}].*?)\s*,\s*([` + latinGreek + `].*?)$`),
	regexp.MustCompile(`^(.*[\x{4e00}-\x{9fa5}].*?)\s*([A-Z\x{0391}-\x{03A9}][` + latinGreek + `].*?)$`),
	regexp.MustCompile(`^(.*[\x{4e00}-\x{9fa5}].*?)\s*\(\s*([` + latinGreek + `].*?)\s*\).*$`),
}

// patternMatch tries a small set of shape templates, accepting the first
// whose two halves each contain the required script.
type patternMatch struct{}

func (patternMatch) Name() string { return "pattern" }

func (patternMatch) Attempt(content string) (Result, bool) {
	for _, re := range shapePatterns {
		m := re.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		chinese := strings.TrimSpace(m[1])
		english := strings.TrimSpace(m[2])
		if chinese != "" && english != "" &&
			chineseRe.MatchString(chinese) && englishRe.MatchString(english) {
			return Result{Chinese: chinese, English: english}, true
		}
	}
	return Result{}, false
}

// --- 6. special-character strategy ---

var (
	specialShapeRe   = regexp.MustCompile(`^(.*[\x{4e00}-\x{9fa5}].*?)\s*[-\s]*\s*([0-9]*[` + latinGreek + `].*?)$`)
	trailingDashesRe = regexp.MustCompile(`[-\s]*$`)
)

// specialChar is the permissive fallback: Chinese text, then optional
// digits, hyphens or whitespace, then English text. Trailing hyphens and
// spaces are trimmed off the Chinese term.
type specialChar struct{}

func (specialChar) Name() string { return "special-char" }

func (specialChar) Attempt(content string) (Result, bool) {
	m := specialShapeRe.FindStringSubmatch(strings.TrimSpace(content))
	if m == nil {
		return Result{}, false
	}

	chinese := trailingDashesRe.ReplaceAllString(strings.TrimSpace(m[1]), "")
	english := strings.TrimSpace(m[2])
	if chinese == "" || english == "" ||
		!chineseRe.MatchString(chinese) || !englishRe.MatchString(english) {
		return Result{}, false
	}

	return Result{Chinese: chinese, English: english}, true
}
