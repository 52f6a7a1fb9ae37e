package lineparse

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		text    string
		hasTS   bool
		wantISO string
	}{
		{
			name:    "timestamped line",
			raw:     "2024-01-01 10:00:00 | I have a billing issue, please help\n",
			text:    "I have a billing issue, please help",
			hasTS:   true,
			wantISO: "2024-01-01T10:00:00",
		},
		{
			name:    "no padding around delimiter",
			raw:     "2024-03-05 23:59:59|done",
			text:    "done",
			hasTS:   true,
			wantISO: "2024-03-05T23:59:59",
		},
		{
			name:  "no delimiter",
			raw:   "  just checking in  \n",
			text:  "just checking in",
			hasTS: false,
		},
		{
			name:  "malformed timestamp keeps whole line",
			raw:   "yesterday | it broke",
			text:  "yesterday | it broke",
			hasTS: false,
		},
		{
			name:  "single digit month is not the exact pattern",
			raw:   "2024-1-01 10:00:00 | hi",
			text:  "2024-1-01 10:00:00 | hi",
			hasTS: false,
		},
		{
			name:  "fractional seconds are not the exact pattern",
			raw:   "2024-01-01 10:00:00.123456 | order late",
			text:  "2024-01-01 10:00:00.123456 | order late",
			hasTS: false,
		},
		{
			name:  "date only",
			raw:   "2024-01-01 | hi",
			text:  "2024-01-01 | hi",
			hasTS: false,
		},
		{
			name:    "only first delimiter splits",
			raw:     "2024-01-01 10:00:00 | a | b",
			text:    "a | b",
			hasTS:   true,
			wantISO: "2024-01-01T10:00:00",
		},
		{
			name:  "empty line",
			raw:   "\n",
			text:  "",
			hasTS: false,
		},
		{
			name:  "crlf line ending",
			raw:   "hello there\r\n",
			text:  "hello there",
			hasTS: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if got.Text != tt.text {
				t.Errorf("Text = %q, want %q", got.Text, tt.text)
			}
			if got.HasTimestamp != tt.hasTS {
				t.Errorf("HasTimestamp = %v, want %v", got.HasTimestamp, tt.hasTS)
			}
			if got.ISOTimestamp() != tt.wantISO {
				t.Errorf("ISOTimestamp() = %q, want %q", got.ISOTimestamp(), tt.wantISO)
			}
		})
	}
}

func TestParseTimestampValue(t *testing.T) {
	got := Parse("2024-01-01 10:00:00 | x")
	want := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	if !got.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, want)
	}
}
