// Package capability declares the narrow NLP ports the analysis pipeline
// depends on. Hosts supply implementations at construction time; the
// pipeline never reaches for a specific upstream library.
package capability

import "strings"

// Tokenizer splits text into raw word tokens. Punctuation and numbers are
// tokens in the raw split; filtering happens downstream.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// StopWords reports membership in a closed, case-insensitive stop-word list.
// Implementations receive lower-cased tokens.
type StopWords interface {
	IsStop(token string) bool
}

// EntityRecognizer returns the surface text of every named entity found in
// text, in order of appearance. Duplicates are meaningful.
type EntityRecognizer interface {
	RecognizeEntities(text string) ([]string, error)
}

// SentimentScorer returns a compound polarity score in [-1, 1].
type SentimentScorer interface {
	Compound(text string) (float64, error)
}

// TokenizerFunc adapts a plain function to Tokenizer.
type TokenizerFunc func(text string) ([]string, error)

func (f TokenizerFunc) Tokenize(text string) ([]string, error) { return f(text) }

// RecognizerFunc adapts a plain function to EntityRecognizer.
type RecognizerFunc func(text string) ([]string, error)

func (f RecognizerFunc) RecognizeEntities(text string) ([]string, error) { return f(text) }

// ScorerFunc adapts a plain function to SentimentScorer.
type ScorerFunc func(text string) (float64, error)

func (f ScorerFunc) Compound(text string) (float64, error) { return f(text) }

// StopSet is a map-backed StopWords.
type StopSet map[string]struct{}

// NewStopSet builds a StopSet from terms, lower-casing each one.
func NewStopSet(terms []string) StopSet {
	set := make(StopSet, len(terms))
	for _, t := range terms {
		set[normalizeTerm(t)] = struct{}{}
	}
	return set
}

// IsStop implements StopWords.
func (s StopSet) IsStop(token string) bool {
	_, ok := s[token]
	return ok
}

// Add inserts a term.
func (s StopSet) Add(term string) {
	s[normalizeTerm(term)] = struct{}{}
}

// Remove deletes a term.
func (s StopSet) Remove(term string) {
	delete(s, normalizeTerm(term))
}

// NoEntities is a recognizer that never finds anything.
var NoEntities EntityRecognizer = RecognizerFunc(func(string) ([]string, error) { return nil, nil })

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
