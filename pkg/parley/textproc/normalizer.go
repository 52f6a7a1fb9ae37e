package textproc

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/parley/pkg/parley/capability"
)

// Normalizer turns a line of text into the token sequence used for word and
// n-gram statistics: lower-cased, stop words removed, alphabetic only.
type Normalizer struct {
	tokenizer capability.Tokenizer
	stopwords capability.StopWords
	caser     cases.Caser
}

// NewNormalizer creates a normalizer over the given tokenizer and stop words.
// A nil stopwords filters nothing.
func NewNormalizer(tokenizer capability.Tokenizer, stopwords capability.StopWords) *Normalizer {
	if stopwords == nil {
		stopwords = capability.StopSet{}
	}
	return &Normalizer{
		tokenizer: tokenizer,
		stopwords: stopwords,
		caser:     cases.Lower(language.English),
	}
}

// Normalize lower-cases text, tokenizes it and keeps the tokens that are
// not stop words and consist only of letters. Order and duplicates are
// preserved. Tokenizer errors are returned as-is.
//
// A Normalizer is not safe for concurrent use.
func (n *Normalizer) Normalize(text string) ([]string, error) {
	lowered := n.caser.String(norm.NFC.String(text))

	raw, err := n.tokenizer.Tokenize(lowered)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if !isAlpha(tok) {
			continue
		}
		if n.stopwords.IsStop(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// isAlpha mirrors str.isalpha: non-empty and every rune a letter.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
