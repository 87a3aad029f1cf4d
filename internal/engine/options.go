package engine

// Options holds the heuristic constants of the pipeline. The defaults are
// tuned to the observed source documents; callers working with other books
// can widen the page range or relax the alphabetic ratio without touching
// the matchers.
type Options struct {
	// MinPage and MaxPage bound the digit values accepted as page numbers.
	MinPage int
	MaxPage int
	// AlphaRatio is the minimum share of Latin/Greek letters required in
	// the English half of a split (see split.Validator).
	AlphaRatio float64
}

// DefaultOptions returns the constants used by the source documents:
// pages 1-2000, 30% alphabetic ratio.
func DefaultOptions() Options {
	return Options{MinPage: 1, MaxPage: 2000, AlphaRatio: 0.3}
}
