// Command pdfsetup prepares a book project from its source PDF: it writes
// the table-of-contents text, the glossary text the engine consumes, and
// the page illustrations, according to the pdf section of the book's
// book.yaml.
//
// Usage:
//
//	pdfsetup [--books-dir DIR] BOOK...
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rozenlab/glosscard/internal/app"
	"github.com/rozenlab/glosscard/internal/config"
	"github.com/rozenlab/glosscard/internal/extract"
)

func main() {
	booksDirFlag := flag.String("books-dir", "", "books directory (overrides config)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: pdfsetup [--books-dir DIR] BOOK...")
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
	for _, book := range flag.Args() {
		if err := setupBook(logger, filepath.Join(booksDir, book)); err != nil {
			logger.Error("setup failed",
				slog.String("book", book),
				slog.String("error", err.Error()))
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// setupBook runs the configured extraction steps for one book directory.
// Steps without a configured page span are skipped, not errors.
func setupBook(logger *slog.Logger, dir string) error {
	cfg, err := config.LoadBook(dir)
	if err != nil {
		return err
	}

	pdfCfg := cfg.PDF
	if pdfCfg.Path == "" {
		return fmt.Errorf("pdf.path not configured for %s", dir)
	}
	if _, err := os.Stat(pdfCfg.Path); err != nil {
		return fmt.Errorf("pdf source: %w", err)
	}

	if s := pdfCfg.TOCPages; s != nil {
		text, err := extract.Text(pdfCfg.Path, s.Start, s.End)
		if err != nil {
			return fmt.Errorf("extract toc: %w", err)
		}
		path := filepath.Join(dir, pdfCfg.TOCFile)
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write toc: %w", err)
		}
		logger.Info("toc extracted", slog.String("path", path))
	} else {
		logger.Info("skipping toc extraction (no toc_pages)")
	}

	if s := pdfCfg.GlossaryPages; s != nil {
		text, err := extract.Text(pdfCfg.Path, s.Start, s.End)
		if err != nil {
			return fmt.Errorf("extract glossary: %w", err)
		}
		path := filepath.Join(dir, cfg.TermsFile)
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write glossary: %w", err)
		}
		logger.Info("glossary extracted", slog.String("path", path))
	} else {
		logger.Info("skipping glossary extraction (no glossary_pages)")
	}

	if s := pdfCfg.ImagePages; s != nil {
		outDir := filepath.Join(dir, cfg.ImageFolder)
		count, err := extract.PageImages(pdfCfg.Path, s.Start, s.End, outDir, cfg.ImagePrefix)
		if err != nil {
			return fmt.Errorf("extract images: %w", err)
		}
		logger.Info("images extracted",
			slog.Int("count", count),
			slog.String("dir", outDir))
	} else {
		logger.Info("skipping image extraction (no image_pages)")
	}

	return nil
}
