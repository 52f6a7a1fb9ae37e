package lineparse

import (
	"strings"
	"time"
)

// TimestampLayout is the only accepted timestamp shape ("YYYY-MM-DD HH:MM:SS").
const TimestampLayout = "2006-01-02 15:04:05"

// ISOLayout renders timestamps without a zone suffix.
const ISOLayout = "2006-01-02T15:04:05"

// Delimiter separates the timestamp from the text payload.
const Delimiter = "|"

// Line is one parsed input record.
type Line struct {
	Text         string
	Timestamp    time.Time
	HasTimestamp bool
}

// Parse splits raw on the first "|". When the left side is a valid
// timestamp the right side, trimmed, is the text. A missing delimiter and a
// malformed timestamp both yield the whole trimmed line with no timestamp.
func Parse(raw string) Line {
	left, right, found := strings.Cut(raw, Delimiter)
	if !found {
		return Line{Text: strings.TrimSpace(raw)}
	}

	stamp := strings.TrimSpace(left)
	if len(stamp) != len(TimestampLayout) {
		return Line{Text: strings.TrimSpace(raw)}
	}
	ts, err := time.Parse(TimestampLayout, stamp)
	if err != nil {
		return Line{Text: strings.TrimSpace(raw)}
	}

	return Line{
		Text:         strings.TrimSpace(right),
		Timestamp:    ts,
		HasTimestamp: true,
	}
}

// ISOTimestamp formats the timestamp as ISO-8601, or "" when absent.
func (l Line) ISOTimestamp() string {
	if !l.HasTimestamp {
		return ""
	}
	return l.Timestamp.Format(ISOLayout)
}
