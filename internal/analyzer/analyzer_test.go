package analyzer

import (
	"testing"

	"github.com/mzyan/NewsMood/internal/sentiment"
)

func TestAnalyzeEmptyHeadlineList(t *testing.T) {
	a := New(nil)

	report := a.Analyze("BBC News", nil)
	if report.Total != 0 {
		t.Fatalf("Total = %d, want 0", report.Total)
	}
	if report.Distribution.Total() != 0 {
		t.Fatalf("distribution not all-zero: %+v", report.Distribution)
	}
	if len(report.Details) != 0 {
		t.Fatalf("Details = %d entries, want 0", len(report.Details))
	}
}

func TestAnalyzePreservesOrderAndCounts(t *testing.T) {
	a := New(nil)

	headlines := []string{
		"Economic growth continues",
		"War tensions rise",
		"Local market stable",
	}
	report := a.Analyze("BBC News", headlines)

	if report.Total != len(headlines) {
		t.Fatalf("Total = %d, want %d", report.Total, len(headlines))
	}
	if report.Distribution.Total() != report.Total {
		t.Fatalf("distribution sum %d != total %d", report.Distribution.Total(), report.Total)
	}

	// 明细必须保持输入顺序
	for i, d := range report.Details {
		if d.Headline != headlines[i] {
			t.Fatalf("Details[%d].Headline = %q, want %q", i, d.Headline, headlines[i])
		}
	}

	// growth(+1)；war(-1)+tension(-1)+rise(+1)=-1；stable 无命中
	wantLabels := []sentiment.Label{
		sentiment.LabelPositive,
		sentiment.LabelNegative,
		sentiment.LabelNeutral,
	}
	for i, want := range wantLabels {
		if report.Details[i].Label != want {
			t.Fatalf("Details[%d].Label = %s, want %s", i, report.Details[i].Label, want)
		}
	}

	if report.Distribution.Positive != 1 || report.Distribution.Neutral != 1 || report.Distribution.Negative != 1 {
		t.Fatalf("distribution = %+v, want 1/1/1", report.Distribution)
	}
}

func TestDistributionZeroValueAndAdd(t *testing.T) {
	var d Distribution

	// 零值即全 0，未知标签也返回 0
	for _, label := range []sentiment.Label{sentiment.LabelPositive, sentiment.LabelNeutral, sentiment.LabelNegative} {
		if got := d.Count(label); got != 0 {
			t.Fatalf("zero-value Count(%s) = %d, want 0", label, got)
		}
	}
	if got := d.Count(sentiment.Label("Unknown")); got != 0 {
		t.Fatalf("Count(unknown) = %d, want 0", got)
	}

	d.Add(sentiment.LabelPositive)
	d.Add(sentiment.LabelNegative)
	d.Add(sentiment.LabelNegative)
	if d.Positive != 1 || d.Negative != 2 || d.Neutral != 0 {
		t.Fatalf("after Add: %+v", d)
	}
	if d.Total() != 3 {
		t.Fatalf("Total() = %d, want 3", d.Total())
	}
}

func TestRowsPreserveReportOrder(t *testing.T) {
	a := New(nil)

	summary := RunSummary{Reports: []SourceReport{
		a.Analyze("BBC News", []string{"Economic growth continues"}),
		a.Analyze("The Guardian UK", []string{"War tensions rise"}),
	}}

	rows := summary.Rows()
	if len(rows) != 2 {
		t.Fatalf("Rows() = %d entries, want 2", len(rows))
	}
	if rows[0].Source != "BBC News" || rows[1].Source != "The Guardian UK" {
		t.Fatalf("row order changed: %q, %q", rows[0].Source, rows[1].Source)
	}
	if rows[0].Positive != 1 || rows[1].Negative != 1 {
		t.Fatalf("row counts wrong: %+v", rows)
	}
}

func TestRunSummaryEmpty(t *testing.T) {
	if !(RunSummary{}).Empty() {
		t.Fatalf("zero-value RunSummary should be empty")
	}
	s := RunSummary{Reports: []SourceReport{{Source: "BBC News"}}}
	if s.Empty() {
		t.Fatalf("non-empty RunSummary reported as empty")
	}
}
