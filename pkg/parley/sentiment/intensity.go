package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Intensity scores text with the full VADER lexicon and rule set.
// It is the default sentiment scorer; Vader is used only with a custom lexicon.
type Intensity struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewIntensity loads the bundled VADER lexicon.
func NewIntensity() *Intensity {
	return &Intensity{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Compound implements capability.SentimentScorer. The score lies in
// [-1, 1] and is rounded to four decimals.
func (s *Intensity) Compound(text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	return round4(s.analyzer.PolarityScores(text).Compound), nil
}
