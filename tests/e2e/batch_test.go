//go:build e2e

package e2e_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rozenlab/glosscard/internal/app"
	"github.com/rozenlab/glosscard/internal/engine"
)

// setupBook lays out one book project directory: book.yaml, the glossary
// dump and an images folder.
func setupBook(t *testing.T, booksDir, name, yaml, glossary string, images ...string) {
	t.Helper()

	dir := filepath.Join(booksDir, name)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "book.yaml"), []byte(yaml), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "glossary.txt"), []byte(glossary), 0o644))
	for _, img := range images {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "images", img), []byte("png"), 0o644))
	}
}

func TestE2E_BatchRun(t *testing.T) {
	booksDir := t.TempDir()

	setupBook(t, booksDir, "surgery", `
book_name: 外科学
deck_name: 外科学词汇
terms_file: glossary.txt
image_prefix: surgery
page_ranges:
  - start: 1
    end: 100
    tag: 第一章
  - start: 101
    end: 400
    tag: 第二章
`, strings.Join([]string{
		"中英文名词对照索引",
		"A",
		"凝固性坏死 coagulative",
		"necrosis 77",
		"心包 pericardium 300",
		"细胞膜 45",
		"",
	}, "\n"), "surgery-0077.png")

	// A book whose glossary file is missing aborts without touching the
	// rest of the batch.
	brokenDir := filepath.Join(booksDir, "broken")
	require.NoError(t, os.MkdirAll(brokenDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(brokenDir, "book.yaml"),
		[]byte("terms_file: nope.txt\n"), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := app.NewRunner(logger, engine.DefaultOptions())

	report, err := runner.Run(context.Background(), booksDir, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"surgery"}, report.BooksProcessed)
	assert.Equal(t, []string{"broken"}, report.BooksFailed)
	assert.Equal(t, 2, report.TotalEntries)
	assert.Equal(t, 1, report.TotalFailed)

	deck, err := os.ReadFile(filepath.Join(booksDir, "surgery", "output_anki.txt"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(deck), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "#separator:tab", lines[0])

	// Records are page-ordered; the split line was merged back together.
	assert.Equal(t,
		"医学英语V2\t外科学词汇\tcoagulative necrosis\t凝固性坏死\t\t\t<img src=\"surgery-0077.png\">\t第一章",
		lines[5])
	assert.Equal(t,
		"医学英语V2\t外科学词汇\tpericardium\t心包\t\t\t\t第二章",
		lines[6])

	failed, err := os.ReadFile(filepath.Join(booksDir, "surgery", "output_anki_failed.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(failed), "中英文分离失败")
	assert.Contains(t, string(failed), "细胞膜 45")
}

func TestE2E_BatchRunSelectsBooks(t *testing.T) {
	booksDir := t.TempDir()

	minimal := "terms_file: glossary.txt\n"
	setupBook(t, booksDir, "one", minimal, "细胞膜 cell membrane 12\n")
	setupBook(t, booksDir, "two", minimal, "心包 pericardium 300\n")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := app.NewRunner(logger, engine.DefaultOptions())

	report, err := runner.Run(context.Background(), booksDir, []string{"two"})
	require.NoError(t, err)
	assert.Equal(t, []string{"two"}, report.BooksProcessed)

	_, err = os.Stat(filepath.Join(booksDir, "one", "output_anki.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestE2E_BatchRunEmptyDir(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := app.NewRunner(logger, engine.DefaultOptions())

	_, err := runner.Run(context.Background(), t.TempDir(), nil)
	require.Error(t, err)
}
