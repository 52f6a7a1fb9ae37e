package entities

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// Statistical tags named entities with prose's averaged-perceptron model
// and reports their surface text in order of appearance.
type Statistical struct{}

// NewStatistical creates the model-backed recognizer.
func NewStatistical() *Statistical {
	return &Statistical{}
}

// RecognizeEntities implements capability.EntityRecognizer.
func (s *Statistical) RecognizeEntities(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}
	ents := doc.Entities()
	if len(ents) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(ents))
	for _, ent := range ents {
		out = append(out, ent.Text)
	}
	return out, nil
}
