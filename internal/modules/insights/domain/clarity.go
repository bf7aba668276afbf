package domain

import (
	"regexp"
	"strings"
)

type ClarityBefore struct {
	Confusion   int
	Stress      int
	Uncertainty int
}

type ClarityAfter struct {
	Clarity    int
	Resolution int
	Peace      int
}

type ClarityMetrics struct {
	Before      ClarityBefore
	After       ClarityAfter
	Improvement float64
	Insights    []string
}

var (
	confusionWords   = []string{"confused", "unclear", "dont know", "don't know", "unsure", "lost", "mixed up"}
	stressWords      = []string{"stressed", "overwhelmed", "anxious", "pressure", "racing"}
	uncertaintyWords = []string{"maybe", "not sure", "confused", "uncertain", "doubt"}

	clarityWords    = []string{"clear", "understand", "realize", "see now", "makes sense", "obvious"}
	resolutionWords = []string{"decided", "plan", "will", "going to", "next step", "action"}
	peaceWords      = []string{"calm", "better", "relieved", "peaceful", "settled", "centered"}
)

const (
	ClarityInsightGained    = "Writing helped you gain significant clarity"
	ClarityInsightProcessed = "You processed complex thoughts into understanding"
	ClarityInsightActions   = "You moved from confusion to actionable next steps"
	ClarityInsightQuestions = "You started with questions and worked toward answers"

	clarityMaxInsights     = 3
	clarityMinSentences    = 6
	clarityStrongThreshold = 2
)

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)

// MeasureClarity compares words that signal confusion with words that signal
// resolution in a single entry. Phrases are matched as substrings.
func MeasureClarity(entry Entry) ClarityMetrics {
	content := strings.ToLower(entry.Content)
	before := ClarityBefore{
		Confusion:   countPhrases(confusionWords, content),
		Stress:      countPhrases(stressWords, content),
		Uncertainty: countPhrases(uncertaintyWords, content),
	}
	after := ClarityAfter{
		Clarity:    countPhrases(clarityWords, content),
		Resolution: countPhrases(resolutionWords, content),
		Peace:      countPhrases(peaceWords, content),
	}
	beforeScore := float64(before.Confusion+before.Stress+before.Uncertainty) / 3
	afterScore := float64(after.Clarity+after.Resolution+after.Peace) / 3
	improvement := afterScore - beforeScore

	var insights []string
	if improvement > 1 {
		insights = append(insights, ClarityInsightGained)
	}
	if after.Clarity >= clarityStrongThreshold {
		insights = append(insights, ClarityInsightProcessed)
	}
	if after.Resolution >= clarityStrongThreshold {
		insights = append(insights, ClarityInsightActions)
	}
	if questionsFirst(entry.Content) {
		insights = append(insights, ClarityInsightQuestions)
	}
	return ClarityMetrics{
		Before:      before,
		After:       after,
		Improvement: improvement,
		Insights:    head(insights, clarityMaxInsights),
	}
}

func countPhrases(phrases []string, content string) int {
	n := 0
	for _, p := range phrases {
		if strings.Contains(content, p) {
			n++
		}
	}
	return n
}

// questionsFirst reports whether the first half of a long entry asks more
// questions than the second half.
func questionsFirst(content string) bool {
	var sentences []string
	for _, s := range sentencePattern.FindAllString(content, -1) {
		if strings.TrimSpace(strings.TrimRight(s, ".!?")) != "" {
			sentences = append(sentences, strings.TrimSpace(s))
		}
	}
	if len(sentences) < clarityMinSentences {
		return false
	}
	half := len(sentences) / 2
	return countQuestions(sentences[:half]) > countQuestions(sentences[half:])
}

func countQuestions(sentences []string) int {
	n := 0
	for _, s := range sentences {
		n += strings.Count(s, "?")
	}
	return n
}
