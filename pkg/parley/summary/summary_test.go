package summary

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cognicore/parley/pkg/parley/analysis"
	"github.com/cognicore/parley/pkg/parley/capability"
	"github.com/cognicore/parley/pkg/parley/internalerr"
)

func analyze(t *testing.T, lines ...string) *analysis.Result {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.txt")
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	a, err := analysis.New(analysis.Options{
		NGramSize: 2,
		StopWords: capability.NewStopSet([]string{"a", "the", "i", "is"}),
		Recognizer: capability.RecognizerFunc(func(text string) ([]string, error) {
			if strings.Contains(text, "Acme") {
				return []string{"Acme"}, nil
			}
			return nil, nil
		}),
		Scorer: capability.ScorerFunc(func(string) (float64, error) { return 0.25, nil }),
	})
	if err != nil {
		t.Fatal(err)
	}
	res, err := a.Run(path)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestBuildTruncatesToK(t *testing.T) {
	res := analyze(t,
		"2024-01-01 10:00:00 | zebra apple apple",
		"2024-01-01 10:01:00 | mango apple zebra",
		"2024-01-01 10:02:00 | kiwi",
	)
	s, err := Build(res, 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// apple=3, zebra=2, mango=1, kiwi=1
	want := Counts{{Key: "apple", Count: 3}, {Key: "zebra", Count: 2}}
	if !reflect.DeepEqual(s.WordFreq, want) {
		t.Errorf("WordFreq = %+v, want %+v", s.WordFreq, want)
	}
	if len(s.SentimentTimeSeries) != 2 || s.SentimentTimeSeries[1].Timestamp != "2024-01-01T10:01:00" {
		t.Errorf("series = %+v", s.SentimentTimeSeries)
	}
	if len(s.NGramFreq) != 2 {
		t.Errorf("ngrams = %+v", s.NGramFreq)
	}
}

func TestBuildTieBreakFirstSeen(t *testing.T) {
	res := analyze(t, "delta alpha charlie bravo")
	s, err := Build(res, 3)
	if err != nil {
		t.Fatal(err)
	}
	var keys []string
	for _, e := range s.WordFreq {
		keys = append(keys, e.Key)
	}
	if !reflect.DeepEqual(keys, []string{"delta", "alpha", "charlie"}) {
		t.Errorf("keys = %v", keys)
	}
}

func TestBuildFewerThanK(t *testing.T) {
	res := analyze(t, "refund now")
	s, err := Build(res, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.WordFreq) != 2 || len(s.NGramFreq) != 1 {
		t.Errorf("expected every entry, got %+v / %+v", s.WordFreq, s.NGramFreq)
	}
	if s.NGramFreq[0].Key != "refund_now" {
		t.Errorf("ngram key = %q, want refund_now", s.NGramFreq[0].Key)
	}
}

func TestBuildKeepsAllCategories(t *testing.T) {
	res := analyze(t, "billing error, help")
	s, err := Build(res, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.IssueCategories) != 3 {
		t.Errorf("categories truncated: %+v", s.IssueCategories)
	}
}

func TestBuildZeroAndNegativeK(t *testing.T) {
	res := analyze(t, "2024-01-01 10:00:00 | billing help?")
	s, err := Build(res, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.WordFreq) != 0 || len(s.SentimentTimeSeries) != 0 || len(s.IssueCategories) != 2 {
		t.Errorf("unexpected k=0 summary %+v", s)
	}

	if _, err := Build(res, -1); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := Build(nil, 1); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for nil result, got %v", err)
	}
}

func TestExportRoundTripCategories(t *testing.T) {
	res := analyze(t,
		"2024-01-01 10:00:00 | my payment failed with an error",
		"2024-01-01 10:01:00 | Acme support helped, issue resolved",
		"2024-01-01 10:02:00 | invoice question?",
	)
	path := filepath.Join(t.TempDir(), "nested", "out", "summary.json")
	if err := Export(res, path, 1); err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(got.IssueCategories, Counts(res.IssueCategories.Entries())) {
		t.Errorf("categories = %+v, want %+v", got.IssueCategories, res.IssueCategories.Entries())
	}
	if n, ok := got.EntityFreq.Count("Acme"); !ok || n != 1 {
		t.Errorf("entity Acme = %d, %v", n, ok)
	}
	if len(got.SentimentTimeSeries) != 1 || got.SentimentTimeSeries[0].Score != 0.25 {
		t.Errorf("series = %+v", got.SentimentTimeSeries)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}

func TestEmptyResultExportsSevenKeys(t *testing.T) {
	res := analyze(t)
	var buf bytes.Buffer
	s, err := Build(res, 10)
	if err != nil {
		t.Fatal(err)
	}
	if err := Encode(&buf, s); err != nil {
		t.Fatal(err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	want := map[string]string{
		"word_freq":             "{}",
		"ngram_freq":            "{}",
		"entity_freq":           "{}",
		"question_freq":         "{}",
		"sentiment_time_series": "[]",
		"resolutions":           "{}",
		"issue_categories":      "{}",
	}
	if len(doc) != len(want) {
		t.Fatalf("got %d keys, want %d", len(doc), len(want))
	}
	for key, empty := range want {
		if string(doc[key]) != empty {
			t.Errorf("%s = %s, want %s", key, doc[key], empty)
		}
	}
}

func TestEncodeKeepsOrderAndUnicode(t *testing.T) {
	s := &Summary{
		WordFreq:            Counts{{Key: "zürich", Count: 5}, {Key: "a<b", Count: 4}, {Key: "apple", Count: 4}},
		SentimentTimeSeries: Series{{Timestamp: "2024-01-01T10:00:00", Score: -0.5}},
	}
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	z := strings.Index(out, `"zürich": 5`)
	ab := strings.Index(out, `"a<b": 4`)
	ap := strings.Index(out, `"apple": 4`)
	if z < 0 || ab < 0 || ap < 0 || !(z < ab && ab < ap) {
		t.Errorf("order or escaping lost:\n%s", out)
	}
	if !strings.Contains(out, "\n    \"word_freq\": {") {
		t.Errorf("expected 4-space indentation:\n%s", out)
	}
	if !strings.Contains(out, `"2024-01-01T10:00:00",`) || !strings.Contains(out, "-0.5") {
		t.Errorf("series point not encoded as pair:\n%s", out)
	}

	keys := []string{"word_freq", "ngram_freq", "entity_freq", "question_freq", "sentiment_time_series", "resolutions", "issue_categories"}
	last := -1
	for _, k := range keys {
		i := strings.Index(out, `"`+k+`"`)
		if i <= last {
			t.Errorf("key %s out of order", k)
		}
		last = i
	}
}

func TestWriteFileUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	err := WriteFile(filepath.Join(blocker, "summary.json"), &Summary{})
	if !errors.Is(err, internalerr.ErrOutputUnwritable) {
		t.Errorf("expected ErrOutputUnwritable, got %v", err)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	if err := os.WriteFile(path, []byte("old contents that are not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, &Summary{WordFreq: Counts{{Key: "new", Count: 1}}}); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	got, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n, _ := got.WordFreq.Count("new"); n != 1 {
		t.Errorf("file not overwritten: %s", data)
	}
}

func TestDecodeRejectsBadSeries(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"sentiment_time_series": [["2024-01-01T10:00:00"]]}`))
	if err == nil {
		t.Error("expected error for one-element point")
	}
}
