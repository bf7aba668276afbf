package domain

import (
	"cmp"
	"slices"
)

const (
	MaxThemes = 6

	minAdHocTermLength = 4
	minEmotionCount    = 1
	minLifeAreaCount   = 2
)

type Theme struct {
	Term      string
	Count     int
	Sentiment float64
}

type themeSlot struct {
	term       string
	seq        int
	emotion    bool
	count      int
	sentiments []float64
}

type themeAccumulator struct {
	slots map[string]*themeSlot
	order []*themeSlot
}

func (acc *themeAccumulator) slot(term string, emotion bool) *themeSlot {
	if s, ok := acc.slots[term]; ok {
		return s
	}
	s := &themeSlot{term: term, seq: len(acc.order), emotion: emotion}
	acc.slots[term] = s
	acc.order = append(acc.order, s)
	return s
}

// ExtractThemes ranks the recurring themes of entries. Every table theme is a
// candidate from the start; other words can only join through the meaningful
// allow-list. A theme counts at most once per entry. Emotion themes need one
// entry and always rank first, everything else needs two.
func (a *Analyzer) ExtractThemes(entries []Entry) []Theme {
	if len(entries) == 0 {
		return []Theme{}
	}

	acc := &themeAccumulator{slots: map[string]*themeSlot{}}
	for _, th := range a.lex.themes {
		acc.slot(th.name, th.emotion)
	}

	for _, entry := range entries {
		tokens := Tokenize(entry.Content)
		score := a.scoreTokens(tokens).Score
		present := toSet(tokens)
		counted := map[string]struct{}{}

		mark := func(s *themeSlot) {
			if _, done := counted[s.term]; done {
				return
			}
			counted[s.term] = struct{}{}
			s.count++
			s.sentiments = append(s.sentiments, score)
		}

		for _, th := range a.lex.themes {
			if intersects(th.keywords, present) {
				mark(acc.slots[th.name])
			}
		}
		for _, tok := range tokens {
			if a.adHocCandidate(tok) {
				mark(acc.slot(tok, a.IsEmotion(tok)))
			}
		}
	}

	kept := make([]*themeSlot, 0, len(acc.order))
	for _, s := range acc.order {
		threshold := minLifeAreaCount
		if s.emotion {
			threshold = minEmotionCount
		}
		if s.count >= threshold {
			kept = append(kept, s)
		}
	}
	slices.SortFunc(kept, func(x, y *themeSlot) int {
		if x.emotion != y.emotion {
			if x.emotion {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(y.count, x.count); c != 0 {
			return c
		}
		return cmp.Compare(x.seq, y.seq)
	})

	out := make([]Theme, 0, min(len(kept), MaxThemes))
	for _, s := range kept {
		if len(out) == MaxThemes {
			break
		}
		out = append(out, Theme{Term: s.term, Count: s.count, Sentiment: mean(s.sentiments)})
	}
	return out
}

func (a *Analyzer) adHocCandidate(tok string) bool {
	if _, ok := a.lex.stopwords[tok]; ok {
		return false
	}
	if _, ok := a.lex.excluded[tok]; ok {
		return false
	}
	if len(tok) < minAdHocTermLength {
		return false
	}
	if _, ok := a.lex.keywords[tok]; ok {
		return false
	}
	_, ok := a.lex.meaningful[tok]
	return ok
}

func intersects(keywords, present map[string]struct{}) bool {
	small, large := keywords, present
	if len(small) > len(large) {
		small, large = large, small
	}
	for w := range small {
		if _, ok := large[w]; ok {
			return true
		}
	}
	return false
}
