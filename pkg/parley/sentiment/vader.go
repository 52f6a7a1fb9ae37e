package sentiment

import (
	"math"
	"strings"
	"unicode"
)

// Empirically derived constants of the VADER heuristics.
const (
	boosterIncrement  = 0.293
	capsIncrement     = 0.733
	negationScalar    = -0.74
	normAlpha         = 15.0
	exclaimIncrement  = 0.292
	maxExclaims       = 4
	questionIncrement = 0.18
	maxQuestionBoost  = 0.96
)

// Vader is a rule-based, lexicon-driven compound sentiment scorer.
type Vader struct {
	lexicon *Lexicon
}

// NewVader creates a scorer over lex. A nil lex uses DefaultLexicon.
func NewVader(lex *Lexicon) *Vader {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Vader{lexicon: lex}
}

// Compound implements capability.SentimentScorer. The score is normalized
// to [-1, 1] and rounded to four decimals.
func (v *Vader) Compound(text string) (float64, error) {
	words := splitWords(text)
	if len(words) == 0 {
		return 0, nil
	}
	capDiff := mixedCase(words)

	lowered := make([]string, len(words))
	for i, w := range words {
		lowered[i] = strings.ToLower(w)
	}

	valences := make([]float64, len(words))
	for i, word := range words {
		valences[i] = v.wordValence(i, word, words, lowered, capDiff)
	}

	butWeighting(lowered, valences)

	var sum float64
	for _, s := range valences {
		sum += s
	}
	if sum == 0 {
		return 0, nil
	}

	amp := punctuationEmphasis(text)
	if sum > 0 {
		sum += amp
	} else {
		sum -= amp
	}

	return round4(normalize(sum)), nil
}

func (v *Vader) wordValence(i int, word string, words, lowered []string, capDiff bool) float64 {
	lower := lowered[i]
	if _, isBooster := v.lexicon.booster(lower); isBooster {
		return 0
	}
	if lower == "kind" && i+1 < len(lowered) && lowered[i+1] == "of" {
		return 0
	}

	valence, ok := v.lexicon.Valence(lower)
	if !ok {
		return 0
	}
	if capDiff && isAllCaps(word) {
		valence += sign(valence) * capsIncrement
	}

	for back := 1; back <= 3 && i-back >= 0; back++ {
		prev := lowered[i-back]
		if _, inLex := v.lexicon.Valence(prev); inLex {
			continue
		}
		if b, isBooster := v.lexicon.booster(prev); isBooster {
			scalar := b
			if valence < 0 {
				scalar = -scalar
			}
			if capDiff && isAllCaps(words[i-back]) {
				scalar += sign(valence) * capsIncrement
			}
			switch back {
			case 2:
				scalar *= 0.95
			case 3:
				scalar *= 0.9
			}
			valence += scalar
		}
		if v.lexicon.isNegation(prev) {
			valence *= negationScalar
		}
	}
	return valence
}

// butWeighting dampens sentiment before "but" and amplifies it after.
func butWeighting(lowered []string, valences []float64) {
	idx := -1
	for i, w := range lowered {
		if w == "but" {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	for i := range valences {
		switch {
		case i < idx:
			valences[i] *= 0.5
		case i > idx:
			valences[i] *= 1.5
		}
	}
}

func punctuationEmphasis(text string) float64 {
	exclaims := strings.Count(text, "!")
	if exclaims > maxExclaims {
		exclaims = maxExclaims
	}
	amp := float64(exclaims) * exclaimIncrement

	questions := strings.Count(text, "?")
	if questions > 1 {
		if questions <= 3 {
			amp += float64(questions) * questionIncrement
		} else {
			amp += maxQuestionBoost
		}
	}
	return amp
}

func normalize(score float64) float64 {
	n := score / math.Sqrt(score*score+normAlpha)
	if n < -1 {
		return -1
	}
	if n > 1 {
		return 1
	}
	return n
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

// splitWords splits on whitespace and trims surrounding punctuation. Words
// that are only punctuation are dropped.
func splitWords(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}

func isAllCaps(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// mixedCase reports whether some, but not all, words are upper-case.
func mixedCase(words []string) bool {
	caps := 0
	for _, w := range words {
		if isAllCaps(w) {
			caps++
		}
	}
	return caps > 0 && caps < len(words)
}
