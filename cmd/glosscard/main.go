// Command glosscard converts bilingual glossary dumps into Anki import
// files, one book project at a time. Each book directory under the books
// dir carries a book.yaml describing its glossary file, page ranges and
// image folder.
//
// Flags:
//
//	--books-dir  books directory (overrides config)
//	--book       comma-separated book names to process (default: all)
//	--report     path for the JSON run report (default: timestamped file)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rozenlab/glosscard/internal/app"
	"github.com/rozenlab/glosscard/internal/config"
	"github.com/rozenlab/glosscard/internal/engine"
)

func main() {
	booksDirFlag := flag.String("books-dir", "", "books directory (overrides config)")
	bookFlag := flag.String("book", "", "comma-separated book names to process (default: all)")
	reportFlag := flag.String("report", "", "path for the JSON run report")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting", slog.String("version", app.BuildVersion()))

	booksDir := cfg.BooksDir
	if *booksDirFlag != "" {
		booksDir = *booksDirFlag
	}

	var only []string
	if *bookFlag != "" {
		only = strings.Split(*bookFlag, ",")
	}

	runner := app.NewRunner(logger, engine.DefaultOptions())

	report, err := runner.Run(context.Background(), booksDir, only)
	if err != nil {
		logger.Error("batch run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Print(report.Summary())

	reportPath := *reportFlag
	if reportPath == "" {
		reportPath = fmt.Sprintf("processing_report_%s.json", time.Now().Format("20060102_150405"))
	}
	if err := report.Save(reportPath); err != nil {
		logger.Error("save report", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("report saved", slog.String("path", reportPath))

	if len(report.BooksFailed) > 0 {
		os.Exit(1)
	}
}
