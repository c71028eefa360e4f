package sentiment

import "testing"

func TestClassifyEmptyTextIsNeutral(t *testing.T) {
	c := NewClassifier(nil)

	label, score := c.Classify("")
	if label != LabelNeutral || score != 0 {
		t.Fatalf("Classify(\"\") = (%s, %d), want (Neutral, 0)", label, score)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := NewClassifier(nil)

	upperLabel, upperScore := c.Classify("GROWTH")
	lowerLabel, lowerScore := c.Classify("growth")
	if upperLabel != lowerLabel || upperScore != lowerScore {
		t.Fatalf("case sensitivity leak: (%s, %d) vs (%s, %d)", upperLabel, upperScore, lowerLabel, lowerScore)
	}
	if upperLabel != LabelPositive {
		t.Fatalf("Classify(\"GROWTH\") = %s, want Positive", upperLabel)
	}
}

func TestClassifySubstringMatchIsIntentional(t *testing.T) {
	c := NewClassifier(nil)

	// "warfare" 包含 "war"，子串匹配应当命中一次（且只计一次）
	label, score := c.Classify("This is warfare")
	if label != LabelNegative || score != -1 {
		t.Fatalf("Classify(warfare text) = (%s, %d), want (Negative, -1)", label, score)
	}
}

func TestScoreCountsEachTermOnce(t *testing.T) {
	c := NewClassifier(nil)

	// 同一个词出现多次只扣一分
	if got := c.Score("war war war"); got != -1 {
		t.Fatalf("Score(\"war war war\") = %d, want -1", got)
	}
}

func TestClassifySymmetricCancellation(t *testing.T) {
	c := NewClassifier(nil)

	// 一正一负刚好抵消
	label, score := c.Classify("growth amid crisis")
	if label != LabelNeutral || score != 0 {
		t.Fatalf("Classify(cancel text) = (%s, %d), want (Neutral, 0)", label, score)
	}
}

func TestScoreMonotonicity(t *testing.T) {
	c := NewClassifier(nil)

	base := "markets steady today"
	baseScore := c.Score(base)

	// 追加一个正向词不应降低分数，追加一个负向词不应提高分数
	if got := c.Score(base + " growth"); got <= baseScore {
		t.Fatalf("adding positive term: score %d -> %d, want increase", baseScore, got)
	}
	if got := c.Score(base + " crisis"); got >= baseScore {
		t.Fatalf("adding negative term: score %d -> %d, want decrease", baseScore, got)
	}
}

func TestLabelForScoreSignPartition(t *testing.T) {
	cases := []struct {
		score int
		want  Label
	}{
		{3, LabelPositive},
		{1, LabelPositive},
		{0, LabelNeutral},
		{-1, LabelNegative},
		{-5, LabelNegative},
	}

	for _, cse := range cases {
		if got := LabelForScore(cse.score); got != cse.want {
			t.Fatalf("LabelForScore(%d) = %s, want %s", cse.score, got, cse.want)
		}
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	in := "  Economic \t growth\n continues  "
	if got := Normalize(in); got != "Economic growth continues" {
		t.Fatalf("Normalize(%q) = %q", in, got)
	}
	if got := Normalize("   "); got != "" {
		t.Fatalf("Normalize(blank) = %q, want empty", got)
	}
}

func TestCustomLexiconInjection(t *testing.T) {
	lex := NewLexicon([]string{"moon"}, []string{"doom"})
	c := NewClassifier(lex)

	if label, score := c.Classify("to the moon"); label != LabelPositive || score != 1 {
		t.Fatalf("custom positive term not matched: (%s, %d)", label, score)
	}
	if label, score := c.Classify("doom and gloom"); label != LabelNegative || score != -1 {
		t.Fatalf("custom negative term not matched: (%s, %d)", label, score)
	}
	// 默认词表不应生效
	if label, _ := c.Classify("growth"); label != LabelNeutral {
		t.Fatalf("default lexicon leaked into custom classifier: %s", label)
	}
}

func TestLexiconAccessorsReturnCopies(t *testing.T) {
	lex := NewLexicon([]string{"good"}, []string{"bad"})

	terms := lex.PositiveTerms()
	terms[0] = "mutated"

	if got := lex.PositiveTerms()[0]; got != "good" {
		t.Fatalf("lexicon mutated through accessor: %q", got)
	}
}
