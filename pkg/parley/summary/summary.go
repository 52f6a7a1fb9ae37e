// Package summary builds the truncated top-K view of an analysis result
// and writes it as a JSON document.
package summary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cognicore/parley/pkg/parley/analysis"
	"github.com/cognicore/parley/pkg/parley/freq"
	"github.com/cognicore/parley/pkg/parley/internalerr"
)

// NGramSep joins n-gram tokens in exported keys.
const NGramSep = "_"

// Summary is the exported document. Field order is the document's key order.
type Summary struct {
	WordFreq            Counts `json:"word_freq"`
	NGramFreq           Counts `json:"ngram_freq"`
	EntityFreq          Counts `json:"entity_freq"`
	QuestionFreq        Counts `json:"question_freq"`
	SentimentTimeSeries Series `json:"sentiment_time_series"`
	Resolutions         Counts `json:"resolutions"`
	IssueCategories     Counts `json:"issue_categories"`
}

// Build keeps the k highest-count entries of each frequency table, the first
// k points of the sentiment series and every issue category.
func Build(res *analysis.Result, k int) (*Summary, error) {
	if res == nil {
		return nil, fmt.Errorf("%w: nil result", internalerr.ErrInvalidInput)
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: result count must not be negative, got %d", internalerr.ErrInvalidInput, k)
	}

	ngrams := res.NGramFreq.Top(k)
	ngramCounts := make(Counts, len(ngrams))
	for i, e := range ngrams {
		ngramCounts[i] = freq.Entry{Key: e.NGram.Join(NGramSep), Count: e.Count}
	}

	series := res.SentimentSeries
	if k < len(series) {
		series = series[:k]
	}

	return &Summary{
		WordFreq:            top(res.WordFreq, k),
		NGramFreq:           ngramCounts,
		EntityFreq:          top(res.EntityFreq, k),
		QuestionFreq:        top(res.QuestionFreq, k),
		SentimentTimeSeries: append(Series{}, series...),
		Resolutions:         top(res.ResolutionFreq, k),
		IssueCategories:     Counts(res.IssueCategories.Entries()),
	}, nil
}

func top(t *freq.Table, k int) Counts {
	return Counts(t.Top(k))
}

// Encode writes s as indented JSON. Non-ASCII text is written as UTF-8.
func Encode(w io.Writer, s *Summary) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(s)
}

// Marshal returns the encoded document.
func Marshal(s *Summary) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a document written by Encode.
func Decode(r io.Reader) (*Summary, error) {
	var s Summary
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return &s, nil
}

// WriteFile writes s to path, creating missing parent directories. The
// document goes to a temporary file first and is renamed into place, so a
// failed write never leaves a truncated file at path.
func WriteFile(path string, s *Summary) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create %s: %v", internalerr.ErrOutputUnwritable, dir, err)
		}
	}

	tmp := path + ".tmp"
	if err := writeSynced(tmp, data); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: write %s: %v", internalerr.ErrOutputUnwritable, tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: rename to %s: %v", internalerr.ErrOutputUnwritable, path, err)
	}
	return nil
}

// Export builds the top-k summary of res and writes it to path.
func Export(res *analysis.Result, path string, k int) error {
	s, err := Build(res, k)
	if err != nil {
		return err
	}
	return WriteFile(path, s)
}

func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
