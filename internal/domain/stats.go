package domain

// Per-entry failure reasons. These are data, not errors: they are counted
// in ProcessingStats and surfaced verbatim in failure reports, so they keep
// the reader-facing wording of the source documents' locale.
const (
	ReasonFiltered    = "内容被过滤"
	ReasonNoChinese   = "内容中不含中文字符"
	ReasonSplitFailed = "中英文分离失败"
	ReasonValidation  = "结果验证失败"
)

// ProcessingStats accumulates counters for one pipeline run. Each run owns
// its own instance; it is returned by value with the run's result and never
// shared across runs or files.
type ProcessingStats struct {
	TotalProcessed int
	Successful     int
	Failed         int
	FilteredOut    int
	FailureReasons map[string]int
}

// NewProcessingStats returns zeroed stats with an initialized reason map.
func NewProcessingStats() ProcessingStats {
	return ProcessingStats{FailureReasons: make(map[string]int)}
}

// RecordFailure increments the failed counter and the named reason counter.
func (s *ProcessingStats) RecordFailure(reason string) {
	s.Failed++
	s.FailureReasons[reason]++
}

// SuccessRate returns the share of successfully extracted entries in
// percent, or 0 when nothing was processed.
func (s *ProcessingStats) SuccessRate() float64 {
	if s.TotalProcessed == 0 {
		return 0
	}
	return float64(s.Successful) / float64(s.TotalProcessed) * 100
}
