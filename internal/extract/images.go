package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageImages extracts the embedded image objects of the inclusive 1-based
// page range [start, end] into outDir. This is object extraction, not page
// rendering: a page without embedded images (pure text or vector content)
// produces no file, and when a page embeds several images only the one
// with the lowest object number is kept. Each written file is named
// {prefix}-{NNNN}.{ext} after its source page number, the first form the
// media resolver probes, so illustrations stay associated with their page.
// Returns the number of images written.
func PageImages(pdfPath string, start, end int, outDir, prefix string) (int, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("create image dir %s: %w", outDir, err)
	}

	f, err := os.Open(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("open pdf %s: %w", pdfPath, err)
	}
	defer f.Close()

	selected := []string{fmt.Sprintf("%d-%d", start, end)}
	pages, err := api.ExtractImagesRaw(f, selected, nil)
	if err != nil {
		return 0, fmt.Errorf("extract images from %s: %w", pdfPath, err)
	}

	written := 0
	for _, pageImages := range pages {
		if len(pageImages) == 0 {
			continue
		}
		objNrs := make([]int, 0, len(pageImages))
		for objNr := range pageImages {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		img := pageImages[objNrs[0]]
		name := imageName(prefix, img.PageNr, img.FileType)
		if err := writeImage(filepath.Join(outDir, name), img); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}

// imageName formats the resolver-probed filename for a page illustration:
// hyphen separator, 4-digit zero-padded page number.
func imageName(prefix string, pageNr int, fileType string) string {
	return fmt.Sprintf("%s-%04d.%s", prefix, pageNr, fileType)
}

func writeImage(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("write image %s: %w", path, err)
	}
	return f.Close()
}
