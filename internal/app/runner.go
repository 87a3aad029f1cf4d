// Package app wires the engine, the Anki writer and per-book configuration
// into a batch runner, and owns the run report and logger setup.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rozenlab/glosscard/internal/anki"
	"github.com/rozenlab/glosscard/internal/config"
	"github.com/rozenlab/glosscard/internal/engine"
	"github.com/rozenlab/glosscard/pkg/ctxutil"
)

// Runner processes book directories independently: each book gets its own
// engine run with its own statistics, so a failure in one book never
// affects the next.
type Runner struct {
	log  *slog.Logger
	opts engine.Options
}

// NewRunner creates a Runner using the given engine defaults. Per-book
// configs may override the heuristic constants.
func NewRunner(log *slog.Logger, opts engine.Options) *Runner {
	return &Runner{log: log, opts: opts}
}

// DiscoverBooks lists the subdirectories of booksDir that contain a book
// configuration file, sorted lexically.
func DiscoverBooks(booksDir string) ([]string, error) {
	entries, err := os.ReadDir(booksDir)
	if err != nil {
		return nil, fmt.Errorf("read books dir %s: %w", booksDir, err)
	}

	var books []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		cfgPath := filepath.Join(booksDir, e.Name(), config.BookConfigName)
		if _, err := os.Stat(cfgPath); err == nil {
			books = append(books, e.Name())
		}
	}

	return books, nil
}

// Run processes every named book under booksDir and returns the aggregated
// report. When only is non-empty it restricts the run to the listed book
// names. Book-level failures are recorded in the report, not returned; the
// error covers batch-level problems only (unreadable books dir, no books).
func (r *Runner) Run(ctx context.Context, booksDir string, only []string) (*Report, error) {
	books, err := DiscoverBooks(booksDir)
	if err != nil {
		return nil, err
	}
	if len(only) > 0 {
		filter := make(map[string]bool, len(only))
		for _, name := range only {
			filter[strings.TrimSpace(name)] = true
		}
		var selected []string
		for _, name := range books {
			if filter[name] {
				selected = append(selected, name)
			}
		}
		books = selected
	}
	if len(books) == 0 {
		return nil, fmt.Errorf("no book projects found under %s", booksDir)
	}

	report := NewReport()
	defer report.Finish()

	ctx = ctxutil.WithRunID(ctx, report.RunID)

	for _, name := range books {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		r.log.Info("processing book", slog.String("book", name))
		result, err := r.runBook(ctxutil.WithBook(ctx, name), filepath.Join(booksDir, name))
		if err != nil {
			r.log.Error("book failed",
				slog.String("book", name),
				slog.String("error", err.Error()))
			report.AddFailure(name)
			continue
		}

		report.AddSuccess(name, len(result.Records), len(result.Failed), result.Stats.FailureReasons)
	}

	return report, nil
}

// runBook drives one book directory end-to-end: config, engine, deck file,
// failed-entries report. Log lines carry the run and book identifiers from
// the context.
func (r *Runner) runBook(ctx context.Context, dir string) (*engine.Result, error) {
	log := r.log
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		log = log.With(slog.String("run_id", id.String()))
	}
	if book := ctxutil.BookFromCtx(ctx); book != "" {
		log = log.With(slog.String("book", book))
	}

	cfg, err := config.LoadBook(dir)
	if err != nil {
		return nil, err
	}

	opts := r.opts
	if cfg.MinPage > 0 {
		opts.MinPage = cfg.MinPage
	}
	if cfg.MaxPage > 0 {
		opts.MaxPage = cfg.MaxPage
	}
	if cfg.AlphaRatio > 0 {
		opts.AlphaRatio = cfg.AlphaRatio
	}

	proc := engine.NewProcessor(log, opts)

	result, err := proc.ProcessFile(
		filepath.Join(dir, cfg.TermsFile),
		cfg.PageRanges,
		filepath.Join(dir, cfg.ImageFolder),
		cfg.ImagePrefix,
	)
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(dir, cfg.OutputFile)
	if err := anki.WriteDeckFile(outPath, result.Records, cfg.DeckName); err != nil {
		return nil, err
	}

	failedPath := failedReportPath(outPath)
	if err := anki.WriteFailedReportFile(failedPath, result.Failed, cfg.BookName, Version); err != nil {
		return nil, err
	}

	log.Info("book done",
		slog.Int("records", len(result.Records)),
		slog.Int("failed", len(result.Failed)),
		slog.String("output", outPath))

	return result, nil
}

// failedReportPath derives the failed-entries file name from the deck
// output path: output_anki.txt → output_anki_failed.txt.
func failedReportPath(outPath string) string {
	ext := filepath.Ext(outPath)
	return strings.TrimSuffix(outPath, ext) + "_failed" + ext
}
