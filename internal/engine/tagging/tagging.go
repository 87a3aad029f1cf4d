// Package tagging maps page numbers to chapter tags and probes the image
// directory for page illustrations.
package tagging

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/rozenlab/glosscard/internal/domain"
)

var firstDigitsRe = regexp.MustCompile(`\d+`)

// FirstPage parses the leading digit group out of a raw page-number string
// ("77, 102" → 77). ok is false when no digits are present.
func FirstPage(pageNumber string) (int, bool) {
	m := firstDigitsRe.FindString(pageNumber)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// TagForPage returns the chapter tag of the first range containing the
// page, scanning ranges in list order. Overlaps are resolved by position:
// first match wins. Falls back to the unknown-chapter sentinel when no
// range matches or the page number is unparseable.
func TagForPage(pageNumber string, ranges domain.TagRanges) string {
	page, ok := FirstPage(pageNumber)
	if !ok {
		return domain.UnknownChapter
	}

	for _, r := range ranges {
		if page >= r.Start && page <= r.End {
			return r.Tag
		}
	}

	return domain.UnknownChapter
}

// ResolveMedia probes dir for an illustration of the given page, trying
// the historically-used naming conventions in priority order: separator
// "-", "" or "_" combined with 4-digit zero-padded or unpadded page
// numbers, then 3-digit padding for pages below 1000. Returns an
// embeddable image tag for the first file that exists, or empty when the
// directory is missing, the page is unparseable, or no candidate exists.
// Absence of an illustration is not an error.
func ResolveMedia(pageNumber, dir, prefix string) string {
	if dir == "" {
		return ""
	}
	page, ok := FirstPage(pageNumber)
	if !ok {
		return ""
	}
	if _, err := os.Stat(dir); err != nil {
		return ""
	}

	candidates := []string{
		fmt.Sprintf("%s-%04d.png", prefix, page),
		fmt.Sprintf("%s%04d.png", prefix, page),
		fmt.Sprintf("%s-%d.png", prefix, page),
		fmt.Sprintf("%s%d.png", prefix, page),
		fmt.Sprintf("%s_%04d.png", prefix, page),
		fmt.Sprintf("%s_%d.png", prefix, page),
	}
	if page < 1000 {
		candidates = append(candidates,
			fmt.Sprintf("%s-%03d.png", prefix, page),
			fmt.Sprintf("%s%03d.png", prefix, page),
			fmt.Sprintf("%s_%03d.png", prefix, page),
		)
	}

	for _, name := range candidates {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return fmt.Sprintf(`<img src="%s">`, name)
		}
	}

	return ""
}
