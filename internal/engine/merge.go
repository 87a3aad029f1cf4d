package engine

import (
	"regexp"
	"strings"
)

var (
	// pageOnlyRe matches a line that is nothing but a page marker: digits,
	// optionally continued by comma-separated digit groups (half- or
	// full-width comma).
	pageOnlyRe = regexp.MustCompile(`^\d+(?:[,\x{FF0C}]\s*\d+)*\s*$`)

	// ignorableRe matches short noise lines carrying no entry content: a
	// lone uppercase index letter or the glossary index header.
	ignorableRe = regexp.MustCompile(`^\s*([A-Z]|中英文名词对照索引)\s*$`)

	// trailingPageRe captures a final digit run preceded by whitespace.
	trailingPageRe = regexp.MustCompile(`\s+(\d+)\s*$`)
)

// MergeLines reassembles logical glossary entries that page-layout
// extraction split across physical lines. It folds the input into
// (buffer, output): lines accumulate in the buffer until one is judged to
// terminate an entry, either by ending in a validated page number or by
// being a standalone page-marker line.
//
// A page-marker line closes the pending buffer when one exists; when the
// buffer is empty it is attached to the previously flushed entry instead,
// covering extractions that emit the page number on its own line after the
// term with nothing still pending.
func MergeLines(lines []string, opts Options) []string {
	var merged []string
	var buffer string

	flush := func(entry string) {
		merged = append(merged, strings.TrimSpace(entry))
		buffer = ""
	}

	for _, raw := range lines {
		line := Normalize(strings.TrimSpace(raw))
		if line == "" {
			continue
		}

		if pageOnlyRe.MatchString(line) {
			if buffer != "" {
				flush(buffer + " " + line)
			} else if len(merged) > 0 {
				merged[len(merged)-1] += " " + line
			}
			continue
		}

		if ignorableRe.MatchString(line) {
			continue
		}

		if m := trailingPageRe.FindStringSubmatchIndex(line); m != nil {
			digitStart := m[2]
			page := line[m[2]:m[3]]
			if isRealPageNumber(line, digitStart, page, opts) {
				if buffer != "" {
					flush(buffer + " " + line)
				} else {
					flush(line)
				}
				continue
			}
		}

		if buffer != "" {
			buffer += " " + line
		} else {
			buffer = line
		}
	}

	if buffer != "" {
		flush(buffer)
	}

	return merged
}
