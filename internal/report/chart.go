package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mzyan/NewsMood/internal/analyzer"
)

// 三个标签的固定配色：正向绿、中性灰、负向红
const (
	colorPositive = "#5cb85c"
	colorNeutral  = "#9e9e9e"
	colorNegative = "#d9534f"
)

// ChartRenderer 把汇总行渲染为按来源分组的柱状图：
// 每个来源一组，组内固定三根柱，顺序 Positive/Neutral/Negative
type ChartRenderer struct {
	Title string
}

// Render 输出自包含的 HTML 图表；空汇总直接报错，由编排层提前跳过
func (r *ChartRenderer) Render(summary analyzer.RunSummary, w io.Writer) error {
	if summary.Empty() {
		return fmt.Errorf("chart: empty summary")
	}

	title := r.Title
	if title == "" {
		title = "Headline Sentiment by Source"
	}

	rows := summary.Rows()
	sources := make([]string, 0, len(rows))
	positive := make([]opts.BarData, 0, len(rows))
	neutral := make([]opts.BarData, 0, len(rows))
	negative := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		sources = append(sources, row.Source)
		positive = append(positive, opts.BarData{Value: row.Positive})
		neutral = append(neutral, opts.BarData{Value: row.Neutral})
		negative = append(negative, opts.BarData{Value: row.Negative})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "lexicon-based sentiment distribution",
		}),
	)

	bar.SetXAxis(sources).
		AddSeries("Positive", positive, charts.WithItemStyleOpts(opts.ItemStyle{Color: colorPositive})).
		AddSeries("Neutral", neutral, charts.WithItemStyleOpts(opts.ItemStyle{Color: colorNeutral})).
		AddSeries("Negative", negative, charts.WithItemStyleOpts(opts.ItemStyle{Color: colorNegative}))

	return bar.Render(w)
}

// RenderFile 渲染到指定路径的 HTML 文件
func (r *ChartRenderer) RenderFile(summary analyzer.RunSummary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart: create %s: %w", path, err)
	}
	defer f.Close()

	return r.Render(summary, f)
}
