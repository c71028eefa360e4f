package sentiment

import "strings"

// Label 单条标题的情感标签，由分数符号唯一决定
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNeutral  Label = "Neutral"
	LabelNegative Label = "Negative"
)

// LabelForScore 按分数符号映射标签：>0 Positive，<0 Negative，=0 Neutral
func LabelForScore(score int) Label {
	switch {
	case score > 0:
		return LabelPositive
	case score < 0:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Normalize 折叠所有空白（含换行、制表符）为单个空格并去掉首尾空白。
// 只用于展示层的文本整理，不参与打分；打分始终基于原始输入的小写副本。
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Classifier 基于词表的规则打分器：纯函数，对任意字符串输入都有定义
type Classifier struct {
	lex *Lexicon
}

// NewClassifier 创建打分器；lex 为 nil 时使用默认词表
func NewClassifier(lex *Lexicon) *Classifier {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Classifier{lex: lex}
}

// Score 对原始文本的小写副本做子串匹配：
// 每个正向词命中 +1，每个负向词命中 -1；
// 同一个词不论出现多少次只计一次，词与词之间互不影响。
func (c *Classifier) Score(text string) int {
	lower := strings.ToLower(text)
	score := 0

	for _, term := range c.lex.positive {
		if strings.Contains(lower, term) {
			score++
		}
	}
	for _, term := range c.lex.negative {
		if strings.Contains(lower, term) {
			score--
		}
	}

	return score
}

// Classify 返回标签与分数；空字符串得到 (Neutral, 0)
func (c *Classifier) Classify(text string) (Label, int) {
	score := c.Score(text)
	return LabelForScore(score), score
}
