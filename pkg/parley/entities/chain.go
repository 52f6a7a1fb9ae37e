package entities

import "github.com/cognicore/parley/pkg/parley/capability"

// Chain runs several recognizers and concatenates their results. The first
// error aborts the chain.
type Chain []capability.EntityRecognizer

// RecognizeEntities implements capability.EntityRecognizer.
func (c Chain) RecognizeEntities(text string) ([]string, error) {
	var out []string
	for _, r := range c {
		ents, err := r.RecognizeEntities(text)
		if err != nil {
			return nil, err
		}
		out = append(out, ents...)
	}
	return out, nil
}
