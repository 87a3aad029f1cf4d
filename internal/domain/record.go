// Package domain defines the data model shared by the glossary engine,
// the Anki writer and the batch runner. Plain structs, no behavior beyond
// small pure helpers. No I/O dependencies.
package domain

// Candidate is an unvalidated (content, page number) pair produced by
// page-boundary splitting, prior to the bilingual split. PageNumber keeps
// its raw textual form: it may be a comma-separated list ("77, 102") when
// a term recurs across non-contiguous pages.
type Candidate struct {
	Content    string
	PageNumber string
}

// Record is the terminal, exportable unit: one flashcard.
type Record struct {
	ChineseTerm string
	EnglishTerm string
	// ImageTag is an embeddable HTML image reference ('<img src="...">'),
	// or empty when no illustration was found for the page.
	ImageTag   string
	PageNumber string
	ChapterTag string
}

// TagRange maps an inclusive page interval to a chapter tag.
type TagRange struct {
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Tag   string `yaml:"tag"`
}

// TagRanges is an ordered list of page ranges. Ranges may be contiguous,
// gapped or overlapping; lookups take the first matching range in list
// order. Disjointness is never validated.
type TagRanges []TagRange

// UnknownChapter is the sentinel chapter tag returned when no range
// matches a page, or the page number is unparseable.
const UnknownChapter = "未知章节"
