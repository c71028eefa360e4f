package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mzyan/NewsMood/internal/analyzer"
)

// TextReporter 把单源明细与跨源汇总输出为人类可读文本。
// 输出顺序严格等于报告产出顺序，不做任何重排。
type TextReporter struct {
	w io.Writer
}

// NewTextReporter 创建文本报告器；w 为 nil 时输出到标准输出
func NewTextReporter(w io.Writer) *TextReporter {
	if w == nil {
		w = os.Stdout
	}
	return &TextReporter{w: w}
}

// Source 输出单个来源的逐条明细：序号、标签、标题
func (r *TextReporter) Source(rep analyzer.SourceReport) {
	fmt.Fprintf(r.w, "\n=== %s ===\n", rep.Source)
	for i, d := range rep.Details {
		fmt.Fprintf(r.w, "%02d. [%s] %s\n", i+1, d.Label, d.Headline)
	}
}

// Summary 输出跨源汇总；本轮没有任何报告时只提示无数据
func (r *TextReporter) Summary(summary analyzer.RunSummary) {
	if summary.Empty() {
		fmt.Fprintln(r.w, "no data available, analysis skipped")
		return
	}

	fmt.Fprintf(r.w, "\n=== Summary by Source ===\n")
	for _, rep := range summary.Reports {
		fmt.Fprintf(r.w, "\n%s\n", rep.Source)
		fmt.Fprintf(r.w, "  Total headlines: %d\n", rep.Total)
		fmt.Fprintf(r.w, "  Positive: %d\n", rep.Distribution.Positive)
		fmt.Fprintf(r.w, "  Neutral : %d\n", rep.Distribution.Neutral)
		fmt.Fprintf(r.w, "  Negative: %d\n", rep.Distribution.Negative)
	}
}
