package anki

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rozenlab/glosscard/internal/domain"
)

// suggestions are appended to the failed-entries report for the failure
// reasons actually observed in the run.
var suggestions = []struct {
	reason string
	text   string
}{
	{domain.ReasonFiltered, "内容被过滤: 这些通常是索引页面或无意义内容，过滤是正常的"},
	{domain.ReasonNoChinese, "纯英文内容: 考虑在词汇表中添加对应的中文翻译"},
	{domain.ReasonSplitFailed, "分离失败: 检查条目格式，可能需要手动调整"},
}

// failureReason extracts the bracketed reason out of a failure description
// of the form "[reason] > content page".
func failureReason(entry string) string {
	idx := strings.Index(entry, "] >")
	if idx < 0 || !strings.HasPrefix(entry, "[") {
		return "未知原因"
	}
	return strings.TrimSpace(entry[1:idx])
}

// WriteFailedReport writes the failed-entries analysis for one book: a
// reason histogram sorted by frequency, every description numbered, and
// improvement suggestions for the observed reasons. Nothing is written
// when failed is empty.
func WriteFailedReport(w io.Writer, failed []string, bookName, version string, now time.Time) error {
	if len(failed) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, entry := range failed {
		counts[failureReason(entry)]++
	}

	type reasonCount struct {
		reason string
		count  int
	}
	sorted := make([]reasonCount, 0, len(counts))
	for r, c := range counts {
		sorted = append(sorted, reasonCount{r, c})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].reason < sorted[j].reason
	})

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %s - 处理失败条目分析报告\n", bookName)
	fmt.Fprintf(bw, "# 生成时间: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(bw, "# 应用版本: %s\n", version)
	fmt.Fprintf(bw, "# 失败条目总数: %d\n", len(failed))
	fmt.Fprintln(bw, "#"+strings.Repeat("=", 70))
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "## 失败原因统计")
	fmt.Fprintln(bw, strings.Repeat("-", 30))
	for _, rc := range sorted {
		pct := float64(rc.count) / float64(len(failed)) * 100
		fmt.Fprintf(bw, "%s: %d 条 (%.1f%%)\n", rc.reason, rc.count, pct)
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "## 详细失败条目")
	fmt.Fprintln(bw, strings.Repeat("-", 30))
	for i, entry := range failed {
		fmt.Fprintf(bw, "%04d. %s\n", i+1, entry)
	}
	fmt.Fprintf(bw, "\n# 总计: %d 条失败条目\n", len(failed))

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "## 改进建议")
	fmt.Fprintln(bw, strings.Repeat("-", 30))
	for _, s := range suggestions {
		if counts[s.reason] > 0 {
			fmt.Fprintf(bw, "• %s\n", s.text)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write failed report: %w", err)
	}
	return nil
}

// WriteFailedReportFile writes the analysis to path. The file is not
// created at all when there is nothing to report.
func WriteFailedReportFile(path string, failed []string, bookName, version string) error {
	if len(failed) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create failed report: %w", err)
	}
	defer f.Close()

	if err := WriteFailedReport(f, failed, bookName, version, time.Now()); err != nil {
		return err
	}
	return f.Close()
}
