package config

import (
	"fmt"

	"github.com/rozenlab/glosscard/internal/domain"
)

// Validate checks the fields the pipeline cannot run without and the shape
// of the page ranges. It does not check range disjointness: overlaps are
// legal and resolved first-match-wins.
func (c *BookConfig) Validate() error {
	if c.TermsFile == "" {
		return fmt.Errorf("%w: terms_file is required", domain.ErrValidation)
	}
	if c.DeckName == "" {
		return fmt.Errorf("%w: deck_name must not be empty", domain.ErrValidation)
	}

	for i, r := range c.PageRanges {
		if r.Start < 1 || r.End < r.Start {
			return fmt.Errorf("%w: page_ranges[%d]: invalid interval [%d, %d]", domain.ErrValidation, i, r.Start, r.End)
		}
		if r.Tag == "" {
			return fmt.Errorf("%w: page_ranges[%d]: tag must not be empty", domain.ErrValidation, i)
		}
	}

	if c.AlphaRatio < 0 || c.AlphaRatio > 1 {
		return fmt.Errorf("%w: alpha_ratio must be within [0, 1]", domain.ErrValidation)
	}
	if c.MinPage < 0 || (c.MaxPage != 0 && c.MaxPage < c.MinPage) {
		return fmt.Errorf("%w: invalid page bounds [%d, %d]", domain.ErrValidation, c.MinPage, c.MaxPage)
	}

	if s := c.PDF.TOCPages; s != nil && (s.Start < 1 || s.End < s.Start) {
		return fmt.Errorf("%w: pdf.toc_pages: invalid span", domain.ErrValidation)
	}
	if s := c.PDF.GlossaryPages; s != nil && (s.Start < 1 || s.End < s.Start) {
		return fmt.Errorf("%w: pdf.glossary_pages: invalid span", domain.ErrValidation)
	}
	if s := c.PDF.ImagePages; s != nil && (s.Start < 1 || s.End < s.Start) {
		return fmt.Errorf("%w: pdf.image_pages: invalid span", domain.ErrValidation)
	}

	return nil
}
