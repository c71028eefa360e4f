package analyzer

import (
	"github.com/mzyan/NewsMood/internal/sentiment"
)

// Distribution 三个固定标签的计数。
// 标签集合封闭且很小，用具名字段代替开放的 map，零值即全 0。
type Distribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Add 将对应标签的计数 +1
func (d *Distribution) Add(label sentiment.Label) {
	switch label {
	case sentiment.LabelPositive:
		d.Positive++
	case sentiment.LabelNegative:
		d.Negative++
	default:
		d.Neutral++
	}
}

// Count 读取某个标签的计数，未知标签返回 0
func (d Distribution) Count(label sentiment.Label) int {
	switch label {
	case sentiment.LabelPositive:
		return d.Positive
	case sentiment.LabelNeutral:
		return d.Neutral
	case sentiment.LabelNegative:
		return d.Negative
	default:
		return 0
	}
}

// Total 三个标签计数之和
func (d Distribution) Total() int {
	return d.Positive + d.Neutral + d.Negative
}

// Detail 单条标题的分类结果，顺序与输入一致
type Detail struct {
	Label    sentiment.Label `json:"label"`
	Headline string          `json:"headline"`
	Score    int             `json:"score"`
}

// SourceReport 单个来源的分析结果，构造后不再修改
type SourceReport struct {
	Source       string       `json:"source"`
	Total        int          `json:"total"`
	Distribution Distribution `json:"distribution"`
	Details      []Detail     `json:"details"`
}

// Analyzer 把一组标题逐条分类并聚合为 SourceReport
type Analyzer struct {
	classifier *sentiment.Classifier
}

// New 创建分析器；c 为 nil 时使用默认词表的打分器
func New(c *sentiment.Classifier) *Analyzer {
	if c == nil {
		c = sentiment.NewClassifier(nil)
	}
	return &Analyzer{classifier: c}
}

// Analyze 按输入顺序逐条分类。
// 空标题列表不是错误：得到 total=0、全 0 分布和空明细。
func (a *Analyzer) Analyze(source string, headlines []string) SourceReport {
	report := SourceReport{
		Source:  source,
		Total:   len(headlines),
		Details: make([]Detail, 0, len(headlines)),
	}

	for _, headline := range headlines {
		label, score := a.classifier.Classify(headline)
		report.Distribution.Add(label)
		report.Details = append(report.Details, Detail{
			Label:    label,
			Headline: headline,
			Score:    score,
		})
	}

	return report
}

// RunSummary 一次运行的全部来源报告，顺序与来源抓取顺序一致；
// 抓取失败的来源不会出现在这里
type RunSummary struct {
	Reports []SourceReport `json:"reports"`
}

// Empty 本轮是否没有任何来源产出报告
func (s RunSummary) Empty() bool {
	return len(s.Reports) == 0
}

// Row 提供给汇总展示与图表渲染的固定形状：来源名 + 三个标签计数
type Row struct {
	Source   string `json:"source"`
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
}

// Rows 按报告产出顺序展开为汇总行，顺序不做任何重排
func (s RunSummary) Rows() []Row {
	rows := make([]Row, 0, len(s.Reports))
	for _, r := range s.Reports {
		rows = append(rows, Row{
			Source:   r.Source,
			Positive: r.Distribution.Count(sentiment.LabelPositive),
			Neutral:  r.Distribution.Count(sentiment.LabelNeutral),
			Negative: r.Distribution.Count(sentiment.LabelNegative),
		})
	}
	return rows
}
