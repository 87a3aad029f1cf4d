package app

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rozenlab/glosscard/internal/config"
	"github.com/rozenlab/glosscard/internal/domain"
)

// bookNameRe restricts project identifiers to filesystem- and
// Anki-friendly names: a letter followed by letters, digits or
// underscores.
var bookNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// BookTitle derives a display title from a project identifier:
// underscores become spaces, words are title-cased
// ("cell_biology" → "Cell Biology").
func BookTitle(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// ScaffoldBook creates the skeleton of a new book project under booksDir:
// the project directory, an images folder, a book.yaml template with
// example page ranges and a commented pdf section, and seeded glossary
// and TOC files. An empty title defaults to BookTitle(name). The project
// directory must not already exist. Returns the created directory.
func ScaffoldBook(booksDir, name, title string) (string, error) {
	if !bookNameRe.MatchString(name) {
		return "", fmt.Errorf("%w: book name %q (want letters, digits, underscores)", domain.ErrValidation, name)
	}
	if title == "" {
		title = BookTitle(name)
	}

	dir := filepath.Join(booksDir, name)
	if _, err := os.Stat(dir); err == nil {
		return "", fmt.Errorf("book project %s already exists", dir)
	}
	if err := os.MkdirAll(filepath.Join(dir, "images"), 0o755); err != nil {
		return "", fmt.Errorf("create book project %s: %w", dir, err)
	}

	files := map[string]string{
		config.BookConfigName:  bookYAML(name, title, time.Now()),
		name + "_glossary.txt": glossarySeed,
		"toc.txt":              tocSeed,
	}
	for fname, content := range files {
		if err := os.WriteFile(filepath.Join(dir, fname), []byte(content), 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", fname, err)
		}
	}

	return dir, nil
}

const glossarySeed = `# 词汇表文件
# 格式：中文术语 英文术语 页码
# 示例：细胞膜 cell membrane 77

`

const tocSeed = `# 目录文件
# 从PDF提取的目录信息

`

// bookYAML renders the template configuration. The page ranges are
// placeholders to be adjusted per book; the pdf section is commented out
// until a source document is configured for pdfsetup.
func bookYAML(name, title string, now time.Time) string {
	return fmt.Sprintf(`# %[2]s 配置文件
# 自动生成于 %[3]s

book_name: %[2]s
deck_name: "glossary::%[2]s"

terms_file: %[1]s_glossary.txt
output_file: output_anki.txt
image_folder: images
image_prefix: %[1]s

# 页码范围和章节标签，按实际章节调整
page_ranges:
  - start: 1
    end: 50
    tag: "%[2]s::01第一章名"
  - start: 51
    end: 100
    tag: "%[2]s::02第二章名"
  - start: 101
    end: 150
    tag: "%[2]s::03第三章名"

# 可选的PDF提取配置，供 pdfsetup 使用
# pdf:
#   path: /path/to/%[1]s.pdf
#   toc_pages:
#     start: 1
#     end: 10
#   glossary_pages:
#     start: 280
#     end: 300
#   image_pages:
#     start: 1
#     end: 250
`, name, title, now.Format("2006-01-02 15:04:05"))
}
