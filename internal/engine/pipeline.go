package engine

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/rozenlab/glosscard/internal/domain"
	"github.com/rozenlab/glosscard/internal/engine/split"
	"github.com/rozenlab/glosscard/internal/engine/tagging"
)

// Processor drives one glossary file end-to-end: merge, page split,
// per-candidate bilingual split, cleanup, validation, tagging and media
// resolution. One Processor may be reused across files; each Process call
// owns its own statistics and buffers.
type Processor struct {
	log  *slog.Logger
	opts Options
	v    split.Validator
	c    *split.Cascade
}

// NewProcessor builds a Processor with the given options. The split
// validator inherits the alphabetic-ratio threshold from opts.
func NewProcessor(log *slog.Logger, opts Options) *Processor {
	v := split.NewValidator()
	v.AlphaRatio = opts.AlphaRatio
	return &Processor{
		log:  log,
		opts: opts,
		v:    v,
		c:    split.NewCascade(v),
	}
}

// Result is the outcome of one pipeline run. Records are sorted by the
// numeric value of their first page digit group (stable; ties keep
// encounter order). Failed holds one human-readable description per
// non-successful candidate, formatted "[reason] > content page".
type Result struct {
	Records []domain.Record
	Failed  []string
	Stats   domain.ProcessingStats
}

// ProcessFile reads the glossary at path and runs the pipeline over it.
// A missing or unreadable file is the only fatal condition.
func (p *Processor) ProcessFile(path string, ranges domain.TagRanges, imageDir, imagePrefix string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrGlossaryNotFound, path)
		}
		return nil, fmt.Errorf("read glossary %s: %w", path, err)
	}

	return p.Process(strings.Split(string(data), "\n"), ranges, imageDir, imagePrefix), nil
}

// Process runs the pipeline over raw glossary lines already in memory.
func (p *Processor) Process(lines []string, ranges domain.TagRanges, imageDir, imagePrefix string) *Result {
	merged := MergeLines(lines, p.opts)
	candidates := SplitByPage(merged, p.opts)

	p.log.Info("glossary segmented",
		slog.Int("raw_lines", len(lines)),
		slog.Int("merged_lines", len(merged)),
		slog.Int("candidates", len(candidates)))

	stats := domain.NewProcessingStats()
	var records []domain.Record
	var failed []string

	for _, c := range candidates {
		rec, reason := p.processEntry(c, ranges, imageDir, imagePrefix, &stats)
		if reason == "" {
			records = append(records, rec)
			continue
		}
		failed = append(failed, fmt.Sprintf("[%s] > %s %s", reason, c.Content, c.PageNumber))
	}

	sort.SliceStable(records, func(i, j int) bool {
		pi, _ := tagging.FirstPage(records[i].PageNumber)
		pj, _ := tagging.FirstPage(records[j].PageNumber)
		return pi < pj
	})

	p.log.Info("glossary processed",
		slog.Int("total", stats.TotalProcessed),
		slog.Int("successful", stats.Successful),
		slog.Int("failed", stats.Failed),
		slog.Int("filtered", stats.FilteredOut))

	return &Result{Records: records, Failed: failed, Stats: stats}
}

// processEntry turns one candidate into a record. A non-empty reason marks
// the candidate as filtered or failed; the stats counters are updated
// accordingly.
func (p *Processor) processEntry(c domain.Candidate, ranges domain.TagRanges, imageDir, imagePrefix string, stats *domain.ProcessingStats) (domain.Record, string) {
	stats.TotalProcessed++

	if ShouldFilter(c.Content) {
		stats.FilteredOut++
		return domain.Record{}, domain.ReasonFiltered
	}

	if !HasChinese(c.Content) {
		stats.RecordFailure(domain.ReasonNoChinese)
		return domain.Record{}, domain.ReasonNoChinese
	}

	r, ok := p.c.Split(c.Content)
	if !ok {
		stats.RecordFailure(domain.ReasonSplitFailed)
		return domain.Record{}, domain.ReasonSplitFailed
	}

	chinese := CleanText(r.Chinese)
	english := CleanText(r.English)

	// Cleanup can strip a half down to something the cascade would no
	// longer accept; re-check with the basic layer.
	if !p.v.Basic(chinese, english) {
		stats.RecordFailure(domain.ReasonValidation)
		return domain.Record{}, domain.ReasonValidation
	}

	stats.Successful++

	return domain.Record{
		ChineseTerm: chinese,
		EnglishTerm: english,
		ImageTag:    tagging.ResolveMedia(c.PageNumber, imageDir, imagePrefix),
		PageNumber:  c.PageNumber,
		ChapterTag:  tagging.TagForPage(c.PageNumber, ranges),
	}, ""
}
