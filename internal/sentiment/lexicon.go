package sentiment

// 默认情感词表：面向英文新闻标题的静态关键词集合。
// 匹配规则是子串包含而非整词匹配，例如 "war" 同样会命中 "warfare"，
// 这是有意保留的行为，扩充词表时需要留意短词的误伤面。
var (
	defaultPositiveTerms = []string{
		"success", "growth", "improve", "recovery", "record",
		"gain", "boost", "strong", "optimistic", "progress",
		"win", "peace", "stability", "support", "benefit",
		"hope", "upgrade", "rise",
	}

	defaultNegativeTerms = []string{
		"crisis", "war", "conflict", "inflation", "recession",
		"loss", "drop", "decline", "strike", "attack",
		"risk", "fear", "collapse", "tension", "violence",
		"negative", "downturn", "cuts",
	}
)

// Lexicon 正负两组小写关键词，构造后只读。
// 通过依赖注入传给 Classifier，便于在测试里使用自定义词表。
type Lexicon struct {
	positive []string
	negative []string
}

// NewLexicon 拷贝传入的词表，避免调用方后续修改影响匹配结果
func NewLexicon(positive, negative []string) *Lexicon {
	l := &Lexicon{
		positive: make([]string, len(positive)),
		negative: make([]string, len(negative)),
	}
	copy(l.positive, positive)
	copy(l.negative, negative)
	return l
}

// DefaultLexicon 返回内置默认词表
func DefaultLexicon() *Lexicon {
	return NewLexicon(defaultPositiveTerms, defaultNegativeTerms)
}

// PositiveTerms 返回正向词表的副本
func (l *Lexicon) PositiveTerms() []string {
	out := make([]string, len(l.positive))
	copy(out, l.positive)
	return out
}

// NegativeTerms 返回负向词表的副本
func (l *Lexicon) NegativeTerms() []string {
	out := make([]string, len(l.negative))
	copy(out, l.negative)
	return out
}
