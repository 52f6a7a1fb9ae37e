package analysis

import (
	"time"

	"github.com/cognicore/parley/pkg/parley/freq"
	"github.com/cognicore/parley/pkg/parley/sentiment"
)

// Result holds the seven collections produced by one run plus run metadata.
type Result struct {
	WordFreq        *freq.Table
	NGramFreq       *freq.NGramTable
	EntityFreq      *freq.Table
	QuestionFreq    *freq.Table // keyed by full line text
	ResolutionFreq  *freq.Table // keyed by full line text
	SentimentSeries []sentiment.Point
	IssueCategories *freq.Table // first-increment order

	Source           string
	Lines            int
	TimestampedLines int
	NGramSize        int
	StartedAt        time.Time
	Duration         time.Duration
}

// accumulator owns the mutable aggregators of a single run.
type accumulator struct {
	words       *freq.Table
	ngrams      *freq.NGramTable
	entities    *freq.Table
	questions   *freq.Table
	resolutions *freq.Table
	issues      *freq.Table
	tracker     *sentiment.Tracker
	lines       int
}

func newAccumulator(tracker *sentiment.Tracker) *accumulator {
	return &accumulator{
		words:       freq.NewTable(),
		ngrams:      freq.NewNGramTable(),
		entities:    freq.NewTable(),
		questions:   freq.NewTable(),
		resolutions: freq.NewTable(),
		issues:      freq.NewTable(),
		tracker:     tracker,
	}
}

func (acc *accumulator) result() *Result {
	series := acc.tracker.Series()
	return &Result{
		WordFreq:         acc.words,
		NGramFreq:        acc.ngrams,
		EntityFreq:       acc.entities,
		QuestionFreq:     acc.questions,
		ResolutionFreq:   acc.resolutions,
		SentimentSeries:  series,
		IssueCategories:  acc.issues,
		Lines:            acc.lines,
		TimestampedLines: len(series),
	}
}
