package textproc

import (
	"strings"
	"unicode"
)

// WordTokenizer splits text on word boundaries. Runs of letters, marks and
// digits become word tokens; every other non-space rune is a token of its
// own, so punctuation survives the raw split.
type WordTokenizer struct{}

// NewWordTokenizer returns the default tokenizer.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

// Tokenize implements capability.Tokenizer. It never fails.
func (t *WordTokenizer) Tokenize(text string) ([]string, error) {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case isWordRune(r):
			current.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()

	return tokens, nil
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}
