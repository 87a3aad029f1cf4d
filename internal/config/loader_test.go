package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rozenlab/glosscard/internal/domain"
)

func writeBookYAML(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, BookConfigName), []byte(content), 0o644))
}

func TestLoadBook(t *testing.T) {
	dir := t.TempDir()
	writeBookYAML(t, dir, `
book_name: 外科学
deck_name: 外科学词汇
terms_file: glossary.txt
image_prefix: surgery
page_ranges:
  - start: 1
    end: 50
    tag: 第一章
  - start: 51
    end: 120
    tag: 第二章
max_page: 800
`)

	cfg, err := LoadBook(dir)
	require.NoError(t, err)

	assert.Equal(t, "外科学", cfg.BookName)
	assert.Equal(t, "外科学词汇", cfg.DeckName)
	assert.Equal(t, "glossary.txt", cfg.TermsFile)
	assert.Equal(t, "surgery", cfg.ImagePrefix)
	assert.Equal(t, 800, cfg.MaxPage)

	require.Len(t, cfg.PageRanges, 2)
	assert.Equal(t, domain.TagRange{Start: 51, End: 120, Tag: "第二章"}, cfg.PageRanges[1])

	// Defaults fill the omitted fields.
	assert.Equal(t, "output_anki.txt", cfg.OutputFile)
	assert.Equal(t, "images", cfg.ImageFolder)
}

func TestLoadBookNameDefaultsToDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anatomy")
	require.NoError(t, os.Mkdir(dir, 0o755))
	writeBookYAML(t, dir, "terms_file: glossary.txt\n")

	cfg, err := LoadBook(dir)
	require.NoError(t, err)
	assert.Equal(t, "anatomy", cfg.BookName)
	assert.Equal(t, "词汇卡组", cfg.DeckName)
}

func TestLoadBookMissing(t *testing.T) {
	_, err := LoadBook(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
}

func TestLoadBookInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing terms file", "book_name: x\n"},
		{"inverted range", "terms_file: t.txt\npage_ranges:\n  - start: 50\n    end: 10\n    tag: 章\n"},
		{"untagged range", "terms_file: t.txt\npage_ranges:\n  - start: 1\n    end: 10\n"},
		{"alpha ratio out of bounds", "terms_file: t.txt\nalpha_ratio: 1.5\n"},
		{"inverted page bounds", "terms_file: t.txt\nmin_page: 100\nmax_page: 50\n"},
		{"inverted pdf span", "terms_file: t.txt\npdf:\n  path: book.pdf\n  toc_pages:\n    start: 9\n    end: 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeBookYAML(t, dir, tt.yaml)

			_, err := LoadBook(dir)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
		})
	}
}
