package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rozenlab/glosscard/internal/config"
	"github.com/rozenlab/glosscard/internal/domain"
)

func TestBookTitle(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"cell_biology", "Cell Biology"},
		{"surgery", "Surgery"},
		{"molecular_biology_2", "Molecular Biology 2"},
	}

	for _, tt := range tests {
		if got := BookTitle(tt.name); got != tt.want {
			t.Errorf("BookTitle(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestScaffoldBook(t *testing.T) {
	booksDir := t.TempDir()

	dir, err := ScaffoldBook(booksDir, "cell_biology", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(booksDir, "cell_biology"), dir)

	// The scaffolded skeleton is a complete, loadable book project.
	cfg, err := config.LoadBook(dir)
	require.NoError(t, err)
	assert.Equal(t, "Cell Biology", cfg.BookName)
	assert.Equal(t, "glossary::Cell Biology", cfg.DeckName)
	assert.Equal(t, "cell_biology_glossary.txt", cfg.TermsFile)
	assert.Equal(t, "cell_biology", cfg.ImagePrefix)
	require.Len(t, cfg.PageRanges, 3)
	assert.Equal(t, "Cell Biology::01第一章名", cfg.PageRanges[0].Tag)

	for _, rel := range []string{"images", "cell_biology_glossary.txt", "toc.txt"} {
		_, err := os.Stat(filepath.Join(dir, rel))
		assert.NoError(t, err, rel)
	}

	books, err := DiscoverBooks(booksDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"cell_biology"}, books)
}

func TestScaffoldBookCustomTitle(t *testing.T) {
	dir, err := ScaffoldBook(t.TempDir(), "anatomy", "解剖学")
	require.NoError(t, err)

	cfg, err := config.LoadBook(dir)
	require.NoError(t, err)
	assert.Equal(t, "解剖学", cfg.BookName)
	assert.Equal(t, "glossary::解剖学", cfg.DeckName)
}

func TestScaffoldBookExisting(t *testing.T) {
	booksDir := t.TempDir()

	_, err := ScaffoldBook(booksDir, "surgery", "")
	require.NoError(t, err)

	_, err = ScaffoldBook(booksDir, "surgery", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestScaffoldBookInvalidName(t *testing.T) {
	for _, name := range []string{"", "2cells", "细胞生物学", "cell biology", "cell-biology"} {
		_, err := ScaffoldBook(t.TempDir(), name, "")
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, domain.ErrValidation), name)
	}
}
