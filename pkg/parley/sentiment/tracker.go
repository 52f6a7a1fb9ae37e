package sentiment

import (
	"github.com/cognicore/parley/pkg/parley/capability"
	"github.com/cognicore/parley/pkg/parley/lineparse"
)

// Point is one entry of the sentiment time series.
type Point struct {
	Timestamp string // ISO-8601, no zone suffix
	Score     float64
}

// Tracker scores every line and records the timestamped ones in file order.
type Tracker struct {
	scorer capability.SentimentScorer
	series []Point
	scored int
}

// NewTracker creates a tracker over scorer.
func NewTracker(scorer capability.SentimentScorer) *Tracker {
	return &Tracker{scorer: scorer}
}

// Observe scores line.Text. Lines without a timestamp are scored but left
// out of the series.
func (t *Tracker) Observe(line lineparse.Line) (float64, error) {
	score, err := t.scorer.Compound(line.Text)
	if err != nil {
		return 0, err
	}
	t.scored++
	if line.HasTimestamp {
		t.series = append(t.series, Point{Timestamp: line.ISOTimestamp(), Score: score})
	}
	return score, nil
}

// Series returns a copy of the recorded points.
func (t *Tracker) Series() []Point {
	out := make([]Point, len(t.series))
	copy(out, t.series)
	return out
}

// Scored returns how many lines were scored, timestamped or not.
func (t *Tracker) Scored() int {
	return t.scored
}
