// Package extract pulls plain text and page images out of source PDF
// documents. It is the only place that opens a source document; the engine
// consumes its output as plain text files and an image directory.
package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Text extracts the plain text of the inclusive 1-based page range
// [start, end]. Pages past the end of the document are ignored; pages that
// fail text extraction are skipped rather than aborting the range, since
// scanned books routinely contain pages with no text layer.
func Text(pdfPath string, start, end int) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", pdfPath, err)
	}
	defer f.Close()

	if start < 1 {
		start = 1
	}
	if n := r.NumPage(); end > n {
		end = n
	}

	var pages []string
	for num := start; num <= end; num++ {
		page := r.Page(num)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}
