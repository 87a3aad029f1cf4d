package engine

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rozenlab/glosscard/internal/domain"
)

// pageGroupRe matches a run of digits with optional comma-separated
// continuation groups ("77" or "77, 102"). Boundary conditions (preceding
// whitespace, following whitespace or end of line) are checked manually
// against match positions, since RE2 has no lookaround.
var pageGroupRe = regexp.MustCompile(`\d+(?:,\s*\d+)*`)

// englishTailRe matches a Latin/Greek letter at the end of a string.
var englishTailRe = regexp.MustCompile(`[` + latinGreek + `]$`)

// hyphenLetterRe matches a hyphen followed by a letter ("-item").
var hyphenLetterRe = regexp.MustCompile(`^-[` + latinGreek + `]`)

// SplitByPage scans each merged line for page-number boundaries and splits
// it into one Candidate per accepted boundary. A line may contain several
// term+page sequences concatenated by the merge step; each validated page
// number closes one candidate. Lines yielding no valid boundary are dropped
// silently: they could not be associated with a page and are excluded from
// output rather than reported as failures.
func SplitByPage(lines []string, opts Options) []domain.Candidate {
	var entries []domain.Candidate

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		type boundary struct {
			start, end int
			page       string
		}
		var pages []boundary

		for _, loc := range pageGroupRe.FindAllStringIndex(line, -1) {
			start, end := loc[0], loc[1]
			// The group must stand alone: preceded by whitespace (or line
			// start, rejected later by the context check) and followed by
			// whitespace or end of line.
			if start > 0 && !isSpaceByte(line[start-1]) {
				continue
			}
			if end < len(line) && !isSpaceByte(line[end]) {
				continue
			}
			page := line[start:end]
			if isRealPageNumber(line, start, page, opts) {
				pages = append(pages, boundary{start, end, page})
			}
		}

		last := 0
		for _, b := range pages {
			content := strings.TrimSpace(line[last:b.start])
			if content != "" {
				entries = append(entries, domain.Candidate{
					Content:    content,
					PageNumber: b.page,
				})
			}
			last = b.end
		}
	}

	return entries
}

// isRealPageNumber decides whether the digit group starting at byte offset
// pos in line is a true page boundary, as opposed to an incidental digit in
// a term (scale identifiers like "量表-7", abbreviations like "GAD7").
func isRealPageNumber(line string, pos int, pageNum string, opts Options) bool {
	first := pageNum
	if i := strings.IndexAny(first, ",，"); i >= 0 {
		first = first[:i]
	}
	pageInt, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil || pageInt < opts.MinPage || pageInt > opts.MaxPage {
		return false
	}

	before := line[:pos]
	after := line[pos+len(pageNum):]

	// Suffixed identifiers: "量表-7".
	if strings.HasSuffix(before, "-") {
		return false
	}
	// Digits glued to an abbreviation: "GAD7".
	if englishTailRe.MatchString(before) {
		return false
	}
	// Hyphenated continuation: "7-item".
	if hyphenLetterRe.MatchString(after) {
		return false
	}
	// A bare leading page number is not a boundary; there must be real
	// term content before it.
	if utf8.RuneCountInString(strings.TrimSpace(before)) < 3 {
		return false
	}
	// True page numbers are space-delimited from the term.
	if !strings.HasSuffix(before, " ") {
		return false
	}

	return true
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t'
}
