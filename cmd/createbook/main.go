// Command createbook scaffolds new book project directories under the
// books dir: a book.yaml template with example page ranges, an images
// folder, and seeded glossary and TOC files, ready for pdfsetup and
// glosscard.
//
// Usage:
//
//	createbook [--books-dir DIR] [--title TITLE] NAME...
//
// NAME must be letters, digits and underscores, starting with a letter.
// --title overrides the derived display title and requires a single NAME.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/rozenlab/glosscard/internal/app"
	"github.com/rozenlab/glosscard/internal/config"
)

func main() {
	booksDirFlag := flag.String("books-dir", "", "books directory (overrides config)")
	titleFlag := flag.String("title", "", "display title (default: derived from NAME)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: createbook [--books-dir DIR] [--title TITLE] NAME...")
		os.Exit(1)
	}
	if *titleFlag != "" && flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "createbook: --title requires exactly one NAME")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	booksDir := cfg.BooksDir
	if *booksDirFlag != "" {
		booksDir = *booksDirFlag
	}

	failed := 0
	for _, name := range flag.Args() {
		dir, err := app.ScaffoldBook(booksDir, name, *titleFlag)
		if err != nil {
			logger.Error("scaffold failed",
				slog.String("book", name),
				slog.String("error", err.Error()))
			failed++
			continue
		}
		logger.Info("book project created", slog.String("dir", dir))
	}

	if failed > 0 {
		os.Exit(1)
	}
}
