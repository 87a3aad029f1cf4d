package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookResult holds the per-book outcome recorded in the run report.
type BookResult struct {
	Successful     int            `json:"successful"`
	Failed         int            `json:"failed"`
	SuccessRate    float64        `json:"success_rate"`
	FailureReasons map[string]int `json:"failure_reasons,omitempty"`
}

// Report aggregates the results of one batch run across books. It is
// persisted as JSON and rendered as a console summary.
type Report struct {
	RunID          uuid.UUID             `json:"run_id"`
	Version        string                `json:"version"`
	StartedAt      time.Time             `json:"started_at"`
	FinishedAt     time.Time             `json:"finished_at"`
	BooksProcessed []string              `json:"books_processed"`
	BooksFailed    []string              `json:"books_failed"`
	TotalEntries   int                   `json:"total_successful_entries"`
	TotalFailed    int                   `json:"total_failed_entries"`
	Books          map[string]BookResult `json:"book_details"`
}

// NewReport starts a report for a fresh batch run.
func NewReport() *Report {
	return &Report{
		RunID:     uuid.New(),
		Version:   Version,
		StartedAt: time.Now(),
		Books:     make(map[string]BookResult),
	}
}

// AddSuccess records a successfully processed book.
func (r *Report) AddSuccess(book string, successful, failed int, reasons map[string]int) {
	r.BooksProcessed = append(r.BooksProcessed, book)
	r.TotalEntries += successful
	r.TotalFailed += failed

	rate := 0.0
	if successful+failed > 0 {
		rate = float64(successful) / float64(successful+failed) * 100
	}
	r.Books[book] = BookResult{
		Successful:     successful,
		Failed:         failed,
		SuccessRate:    rate,
		FailureReasons: reasons,
	}
}

// AddFailure records a book whose run aborted (bad config, missing files).
func (r *Report) AddFailure(book string) {
	r.BooksFailed = append(r.BooksFailed, book)
}

// Finish stamps the end time.
func (r *Report) Finish() {
	r.FinishedAt = time.Now()
}

// Summary renders a human-readable batch summary, books sorted by success
// rate descending.
func (r *Report) Summary() string {
	var b strings.Builder

	total := len(r.BooksProcessed) + len(r.BooksFailed)
	fmt.Fprintf(&b, "run %s: %d book(s), %d ok, %d failed\n",
		r.RunID, total, len(r.BooksProcessed), len(r.BooksFailed))
	fmt.Fprintf(&b, "entries: %d extracted, %d failed\n", r.TotalEntries, r.TotalFailed)

	names := make([]string, 0, len(r.Books))
	for name := range r.Books {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := r.Books[names[i]], r.Books[names[j]]
		if ri.SuccessRate != rj.SuccessRate {
			return ri.SuccessRate > rj.SuccessRate
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		br := r.Books[name]
		fmt.Fprintf(&b, "  %s: %d/%d (%.1f%%)\n",
			name, br.Successful, br.Successful+br.Failed, br.SuccessRate)
	}
	for _, name := range r.BooksFailed {
		fmt.Fprintf(&b, "  %s: aborted\n", name)
	}

	return b.String()
}

// Save persists the report as indented JSON at path.
func (r *Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
