// Package analysis runs the per-line pipeline over a transcript file and
// assembles the frequency tables, sentiment series and issue tally.
package analysis

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/cognicore/parley/pkg/parley/capability"
	"github.com/cognicore/parley/pkg/parley/classify"
	"github.com/cognicore/parley/pkg/parley/internalerr"
	"github.com/cognicore/parley/pkg/parley/lineparse"
	"github.com/cognicore/parley/pkg/parley/ngram"
	"github.com/cognicore/parley/pkg/parley/sentiment"
	"github.com/cognicore/parley/pkg/parley/textproc"
)

const (
	// DefaultNGramSize is the window used when callers do not pick one.
	DefaultNGramSize = 2

	// MaxLineBytes bounds a single transcript line.
	MaxLineBytes = 4 << 20
)

// DefaultResolutionPhrases mark a line as a resolution statement.
var DefaultResolutionPhrases = []string{"resolved", "will get back to you", "solution", "fixed"}

// Options configures an Analyzer. Nil capabilities fall back to the
// built-in implementations.
type Options struct {
	Tokenizer         capability.Tokenizer
	StopWords         capability.StopWords
	Recognizer        capability.EntityRecognizer
	Scorer            capability.SentimentScorer
	Classifier        *classify.Classifier
	ResolutionPhrases []string
	NGramSize         int

	// Preprocess rewrites line text after parsing, before any capability
	// sees it. Used for stripping markup.
	Preprocess func(string) string

	Logger *zerolog.Logger
}

// Analyzer runs the analysis pipeline. Each Run owns fresh aggregators, so an
// Analyzer may be reused for several files one after another.
type Analyzer struct {
	tokenizer   capability.Tokenizer
	stopwords   capability.StopWords
	recognizer  capability.EntityRecognizer
	scorer      capability.SentimentScorer
	classifier  *classify.Classifier
	resolutions []string
	ngramSize   int
	preprocess  func(string) string
	log         zerolog.Logger
}

// New validates opts and builds an Analyzer. NGramSize below 1 is rejected
// with internalerr.ErrInvalidInput.
func New(opts Options) (*Analyzer, error) {
	if opts.NGramSize < 1 {
		return nil, fmt.Errorf("%w: n-gram size must be at least 1, got %d", internalerr.ErrInvalidInput, opts.NGramSize)
	}

	a := &Analyzer{
		tokenizer:   opts.Tokenizer,
		stopwords:   opts.StopWords,
		recognizer:  opts.Recognizer,
		scorer:      opts.Scorer,
		classifier:  opts.Classifier,
		resolutions: opts.ResolutionPhrases,
		ngramSize:   opts.NGramSize,
		preprocess:  opts.Preprocess,
		log:         zerolog.Nop(),
	}
	if a.tokenizer == nil {
		a.tokenizer = textproc.NewWordTokenizer()
	}
	if a.stopwords == nil {
		a.stopwords = capability.StopSet{}
	}
	if a.recognizer == nil {
		a.recognizer = capability.NoEntities
	}
	if a.scorer == nil {
		a.scorer = sentiment.NewIntensity()
	}
	if a.classifier == nil {
		a.classifier = classify.Default()
	}
	if a.resolutions == nil {
		a.resolutions = DefaultResolutionPhrases
	}
	if opts.Logger != nil {
		a.log = *opts.Logger
	}
	return a, nil
}

// NGramSize returns the configured window size.
func (a *Analyzer) NGramSize() int {
	return a.ngramSize
}

// Run analyzes the file at path. An unopenable file is logged and reported
// as internalerr.ErrFileNotAccessible with a nil result. Invalid UTF-8 and
// capability failures abort the run without a partial result.
func (a *Analyzer) Run(path string) (*Result, error) {
	started := time.Now()

	f, err := os.Open(path)
	if err != nil {
		a.log.Warn().Err(err).Str("path", path).Msg("file not accessible")
		return nil, fmt.Errorf("%w: %v", internalerr.ErrFileNotAccessible, err)
	}
	defer f.Close()

	// The normalizer carries a caser, so each run gets its own.
	normalizer := textproc.NewNormalizer(a.tokenizer, a.stopwords)
	acc := newAccumulator(sentiment.NewTracker(a.scorer))

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	for scanner.Scan() {
		acc.lines++
		raw := scanner.Text()
		if !utf8.ValidString(raw) {
			return nil, fmt.Errorf("%w: line %d", internalerr.ErrInvalidEncoding, acc.lines)
		}
		if err := a.processLine(acc, normalizer, raw); err != nil {
			a.log.Error().Err(err).Str("path", path).Int("line", acc.lines).Msg("analysis aborted")
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d exceeds %d bytes", internalerr.ErrInvalidInput, acc.lines+1, MaxLineBytes)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	res := acc.result()
	res.Source = path
	res.NGramSize = a.ngramSize
	res.StartedAt = started
	res.Duration = time.Since(started)

	a.log.Debug().
		Str("path", path).
		Int("lines", res.Lines).
		Int("timestamped", res.TimestampedLines).
		Int("words", res.WordFreq.Len()).
		Dur("took", res.Duration).
		Msg("analysis complete")
	return res, nil
}

func (a *Analyzer) processLine(acc *accumulator, normalizer *textproc.Normalizer, raw string) error {
	line := lineparse.Parse(raw)
	if a.preprocess != nil {
		line.Text = a.preprocess(line.Text)
	}
	text := line.Text

	tokens, err := normalizer.Normalize(text)
	if err != nil {
		return &CapabilityError{Capability: CapTokenizer, Line: acc.lines, Err: err}
	}
	grams := ngram.Generate(tokens, a.ngramSize)
	acc.words.Update(tokens...)
	acc.ngrams.Update(grams...)

	ents, err := a.recognizer.RecognizeEntities(text)
	if err != nil {
		return &CapabilityError{Capability: CapRecognizer, Line: acc.lines, Err: err}
	}
	acc.entities.Update(ents...)

	if strings.Contains(text, "?") {
		acc.questions.Update(text)
	}
	if a.isResolution(text) {
		acc.resolutions.Update(text)
	}

	if _, err := acc.tracker.Observe(line); err != nil {
		return &CapabilityError{Capability: CapScorer, Line: acc.lines, Err: err}
	}

	acc.issues.Update(a.classifier.Classify(text)...)
	return nil
}

func (a *Analyzer) isResolution(text string) bool {
	for _, p := range a.resolutions {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
