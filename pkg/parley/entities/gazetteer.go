package entities

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Entry is a gazetteer label and the phrases that refer to it.
type Entry struct {
	Label   string   `yaml:"label"`
	Phrases []string `yaml:"phrases"`
}

// Gazetteer finds known phrases as whole words. Matching is case-sensitive
// and returns the surface text as it appears in the input.
type Gazetteer struct {
	phrases []string // longest first
	labels  map[string]string
}

// NewGazetteer builds a gazetteer from entries.
func NewGazetteer(entries []Entry) *Gazetteer {
	g := &Gazetteer{labels: make(map[string]string)}
	for _, e := range entries {
		for _, p := range e.Phrases {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if _, dup := g.labels[p]; !dup {
				g.phrases = append(g.phrases, p)
			}
			g.labels[p] = e.Label
		}
	}
	sort.SliceStable(g.phrases, func(i, j int) bool {
		return len(g.phrases[i]) > len(g.phrases[j])
	})
	return g
}

// LoadGazetteer reads entries from a YAML file of the form
//
//	entities:
//	  - label: ORG
//	    phrases: [Acme Corp, Acme]
func LoadGazetteer(path string) (*Gazetteer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f struct {
		Entities []Entry `yaml:"entities"`
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse gazetteer: %w", err)
	}
	return NewGazetteer(f.Entities), nil
}

// Label returns the label configured for phrase.
func (g *Gazetteer) Label(phrase string) (string, bool) {
	l, ok := g.labels[phrase]
	return l, ok
}

// RecognizeEntities implements capability.EntityRecognizer. Longer phrases
// win over phrases they contain; matches do not overlap.
func (g *Gazetteer) RecognizeEntities(text string) ([]string, error) {
	type match struct {
		start int
		text  string
	}
	var found []match
	taken := make([]bool, len(text))

	for _, p := range g.phrases {
		offset := 0
		for {
			idx := strings.Index(text[offset:], p)
			if idx < 0 {
				break
			}
			start := offset + idx
			end := start + len(p)
			if wordBoundary(text, start, end) && !overlaps(taken, start, end) {
				for i := start; i < end; i++ {
					taken[i] = true
				}
				found = append(found, match{start: start, text: text[start:end]})
			}
			offset = start + 1
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].start < found[j].start })
	out := make([]string, len(found))
	for i, m := range found {
		out[i] = m.text
	}
	return out, nil
}

func overlaps(taken []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if taken[i] {
			return true
		}
	}
	return false
}

func wordBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordChar(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordChar(r) {
			return false
		}
	}
	return true
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
