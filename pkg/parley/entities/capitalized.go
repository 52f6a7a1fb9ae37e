package entities

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalized is a proper-noun heuristic: it reports runs of capitalized
// words that do not open a sentence. The pronoun "I" is never an entity.
type Capitalized struct {
	ignore map[string]struct{}
}

// NewCapitalized creates the heuristic recognizer. Words in ignore are never
// treated as the start of an entity.
func NewCapitalized(ignore ...string) *Capitalized {
	set := map[string]struct{}{"I": {}}
	for _, w := range ignore {
		set[w] = struct{}{}
	}
	return &Capitalized{ignore: set}
}

// RecognizeEntities implements capability.EntityRecognizer.
func (c *Capitalized) RecognizeEntities(text string) ([]string, error) {
	var out []string
	var run []string
	sentenceStart := true

	flush := func() {
		if len(run) > 0 {
			out = append(out, strings.Join(run, " "))
			run = run[:0]
		}
	}

	for _, field := range strings.Fields(text) {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		last, _ := utf8.DecodeLastRuneInString(field)
		endsSentence := strings.ContainsRune(".!?", last)
		breaksRun := strings.ContainsRune(",;:", last)

		switch {
		case word == "":
			flush()
		case sentenceStart:
			// sentence openers are capitalized regardless
		case isCapitalized(word):
			if _, skip := c.ignore[word]; skip {
				flush()
				break
			}
			run = append(run, word)
		default:
			flush()
		}

		if word != "" {
			sentenceStart = false
		}
		if endsSentence || breaksRun {
			flush()
		}
		if endsSentence {
			sentenceStart = true
		}
	}
	flush()
	return out, nil
}

func isCapitalized(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}
