package summary

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cognicore/parley/pkg/parley/freq"
	"github.com/cognicore/parley/pkg/parley/sentiment"
)

// Counts is a key to count mapping that keeps its order through JSON.
// It encodes as an object whose members appear in slice order.
type Counts []freq.Entry

// MarshalJSON implements json.Marshaler.
func (c Counts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, e.Key); err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, ":%d", e.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, preserving member order.
func (c *Counts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*c = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("counts: expected object, got %v", tok)
	}

	out := Counts{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("counts: expected string key, got %v", tok)
		}
		var n int64
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("counts: value for %q: %w", key, err)
		}
		out = append(out, freq.Entry{Key: key, Count: n})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}

// Count returns the count stored for key.
func (c Counts) Count(key string) (int64, bool) {
	for _, e := range c {
		if e.Key == key {
			return e.Count, true
		}
	}
	return 0, false
}

// Series is the sentiment time series. Each point encodes as a
// two-element array: ["<iso timestamp>", score].
type Series []sentiment.Point

// MarshalJSON implements json.Marshaler.
func (s Series) MarshalJSON() ([]byte, error) {
	pairs := make([][2]any, len(s))
	for i, p := range s {
		pairs[i] = [2]any{p.Timestamp, p.Score}
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Series) UnmarshalJSON(data []byte) error {
	var raw [][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Series, len(raw))
	for i, pair := range raw {
		if len(pair) != 2 {
			return fmt.Errorf("series: point %d has %d elements", i, len(pair))
		}
		if err := json.Unmarshal(pair[0], &out[i].Timestamp); err != nil {
			return fmt.Errorf("series: point %d timestamp: %w", i, err)
		}
		if err := json.Unmarshal(pair[1], &out[i].Score); err != nil {
			return fmt.Errorf("series: point %d score: %w", i, err)
		}
	}
	*s = out
	return nil
}

// writeString encodes s as a JSON string without HTML escaping.
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
