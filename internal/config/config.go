// Package config loads application and per-book configuration from YAML
// files with environment-variable overrides.
package config

import (
	"github.com/rozenlab/glosscard/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	BooksDir string    `yaml:"books_dir" env:"GLOSSCARD_BOOKS_DIR" env-default:"./books"`
	Log      LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// BookConfig describes one book project: where its glossary and images
// live, how the output deck is named, and the page ranges that map pages
// to chapter tags.
type BookConfig struct {
	BookName string `yaml:"book_name" env:"BOOK_NAME"`
	DeckName string `yaml:"deck_name" env:"DECK_NAME" env-default:"词汇卡组"`

	TermsFile   string `yaml:"terms_file"   env:"BOOK_TERMS_FILE"`
	OutputFile  string `yaml:"output_file"  env:"BOOK_OUTPUT_FILE"  env-default:"output_anki.txt"`
	ImageFolder string `yaml:"image_folder" env:"BOOK_IMAGE_FOLDER" env-default:"images"`
	ImagePrefix string `yaml:"image_prefix" env:"BOOK_IMAGE_PREFIX"`

	// PageRanges is ordered; tag lookups take the first matching range.
	PageRanges domain.TagRanges `yaml:"page_ranges"`

	// MinPage/MaxPage bound accepted page numbers; AlphaRatio is the
	// split validator threshold. Zero values fall back to the engine
	// defaults.
	MinPage    int     `yaml:"min_page"    env:"BOOK_MIN_PAGE"`
	MaxPage    int     `yaml:"max_page"    env:"BOOK_MAX_PAGE"`
	AlphaRatio float64 `yaml:"alpha_ratio" env:"BOOK_ALPHA_RATIO"`

	PDF PDFConfig `yaml:"pdf"`
}

// PDFConfig holds the optional source-document extraction settings used by
// the pdfsetup command. All page spans are 1-based and inclusive.
type PDFConfig struct {
	Path          string `yaml:"path" env:"BOOK_PDF_PATH"`
	TOCPages      *Span  `yaml:"toc_pages"`
	GlossaryPages *Span  `yaml:"glossary_pages"`
	ImagePages    *Span  `yaml:"image_pages"`
	TOCFile       string `yaml:"toc_file" env-default:"toc.txt"`
}

// Span is an inclusive page interval.
type Span struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}
