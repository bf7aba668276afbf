// Package domain holds the journal text analytics: tokenizing, lexicon-based
// sentiment, recurring theme extraction, prompt selection and the weekly summary.
//
// Every function is a pure computation over the entries it is handed. Entries are
// expected newest first, the order the journal lists them in.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"gopkg.in/yaml.v3"
)

// Entry is the read-only view of a journal entry the analyzer consumes.
type Entry struct {
	ID        string
	CreatedAt time.Time
	Content   string
}

type Analyzer struct {
	lex    compiledLexicon
	digest string
}

func NewAnalyzer(lex Lexicon) *Analyzer {
	return &Analyzer{lex: compile(lex), digest: lexiconDigest(lex)}
}

// Digest identifies the lexicon the analyzer was built from. Results computed
// under one digest are not valid under another.
func (a *Analyzer) Digest() string {
	return a.digest
}

func lexiconDigest(lex Lexicon) string {
	payload, err := yaml.Marshal(lex)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:8])
}

// Default builds an analyzer over DefaultLexicon.
func Default() *Analyzer {
	return NewAnalyzer(DefaultLexicon())
}

// IsEmotion reports whether term names an emotion-group theme.
func (a *Analyzer) IsEmotion(term string) bool {
	_, ok := a.lex.emotions[term]
	return ok
}

func recent(entries []Entry, n int) []Entry {
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
