package sentiment

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexiconYAML []byte

// Lexicon holds word valences and the modifier word lists used by Vader.
type Lexicon struct {
	valence   map[string]float64
	boosters  map[string]float64
	negations map[string]struct{}
}

type lexiconFile struct {
	Lexicon  map[string]float64 `yaml:"lexicon"`
	Boosters struct {
		Increase []string `yaml:"increase"`
		Decrease []string `yaml:"decrease"`
	} `yaml:"boosters"`
	Negations []string `yaml:"negations"`
}

// DefaultLexicon returns the embedded English lexicon.
func DefaultLexicon() *Lexicon {
	lex, err := ParseLexicon(defaultLexiconYAML)
	if err != nil {
		panic(fmt.Sprintf("sentiment: embedded lexicon: %v", err))
	}
	return lex
}

// LoadLexicon reads a lexicon from a YAML file.
//
// Expected format:
//
//	lexicon:
//	  great: 3.1
//	  terrible: -2.1
//	boosters:
//	  increase: [very, really]
//	  decrease: [slightly]
//	negations: [not, never]
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLexicon(data)
}

// ParseLexicon decodes lexicon YAML. Words are lower-cased.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	lex := &Lexicon{
		valence:   make(map[string]float64, len(f.Lexicon)),
		boosters:  make(map[string]float64),
		negations: make(map[string]struct{}, len(f.Negations)),
	}
	for word, v := range f.Lexicon {
		if v < -4 || v > 4 {
			return nil, fmt.Errorf("parse lexicon: valence %v for %q outside [-4, 4]", v, word)
		}
		lex.valence[strings.ToLower(word)] = v
	}
	for _, w := range f.Boosters.Increase {
		lex.boosters[strings.ToLower(w)] = boosterIncrement
	}
	for _, w := range f.Boosters.Decrease {
		lex.boosters[strings.ToLower(w)] = -boosterIncrement
	}
	for _, w := range f.Negations {
		lex.negations[strings.ToLower(w)] = struct{}{}
	}
	return lex, nil
}

// Valence returns the valence of a lower-cased word.
func (l *Lexicon) Valence(word string) (float64, bool) {
	v, ok := l.valence[word]
	return v, ok
}

// Size returns the number of words with a valence.
func (l *Lexicon) Size() int {
	return len(l.valence)
}

func (l *Lexicon) isNegation(word string) bool {
	if _, ok := l.negations[word]; ok {
		return true
	}
	return strings.Contains(word, "n't")
}

func (l *Lexicon) booster(word string) (float64, bool) {
	v, ok := l.boosters[word]
	return v, ok
}
