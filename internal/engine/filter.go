package engine

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// filterRes marks content that carries no glossary entry: index headers,
// lone uppercase letters, bare page numbers, pure punctuation, reference
// and further-reading section headers.
var filterRes = []*regexp.Regexp{
	regexp.MustCompile(`^中英文名词对照索引`),
	regexp.MustCompile(`^[A-Z]\s*$`),
	regexp.MustCompile(`^\d{3,}\s*$`),
	regexp.MustCompile(`^[，。；：,.;:]\s*$`),
	regexp.MustCompile(`^[（）()]\s*$`),
	regexp.MustCompile(`^\s*$`),
	regexp.MustCompile(`^推荐阅读`),
	regexp.MustCompile(`^参考文献`),
}

// digitsAndSymbolsRe matches content consisting solely of digits,
// whitespace and punctuation.
var digitsAndSymbolsRe = regexp.MustCompile(`^[0-9\s，。；：,.;:()（）-]+$`)

// ShouldFilter reports whether candidate content is obviously not a term
// entry and should be dropped before the bilingual split. Filtering is
// intentional, counted separately from failures.
func ShouldFilter(content string) bool {
	content = strings.TrimSpace(content)

	for _, re := range filterRes {
		if re.MatchString(content) {
			return true
		}
	}

	if utf8.RuneCountInString(content) < 2 {
		return true
	}

	return digitsAndSymbolsRe.MatchString(content)
}
