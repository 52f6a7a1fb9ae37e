package textproc

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cognicore/parley/pkg/parley/capability"
)

func TestWordTokenizerSplitsPunctuation(t *testing.T) {
	tok := NewWordTokenizer()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"plain", "hello world", []string{"hello", "world"}},
		{"comma", "issue, please", []string{"issue", ",", "please"}},
		{"question", "refund?", []string{"refund", "?"}},
		{"numbers", "order 123 shipped", []string{"order", "123", "shipped"}},
		{"mixed", "win10 crash", []string{"win10", "crash"}},
		{"apostrophe", "can't", []string{"can", "'", "t"}},
		{"empty", "", nil},
		{"only spaces", "   \t ", nil},
		{"unicode letters", "naïve café", []string{"naïve", "café"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tok.Tokenize(tt.text)
			if err != nil {
				t.Fatalf("Tokenize: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalizerFiltersStopwordsAndNonAlpha(t *testing.T) {
	stops := capability.NewStopSet([]string{"i", "have", "a", "please"})
	n := NewNormalizer(NewWordTokenizer(), stops)

	got, err := n.Normalize("I have a billing issue, please help")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := []string{"billing", "issue", "help"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizerDropsNumericAndMixedTokens(t *testing.T) {
	n := NewNormalizer(NewWordTokenizer(), nil)

	got, err := n.Normalize("Error 404 on win10 after 3pm!!")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := []string{"error", "on", "after"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizerPreservesOrderAndDuplicates(t *testing.T) {
	n := NewNormalizer(NewWordTokenizer(), capability.NewStopSet([]string{"the"}))

	got, err := n.Normalize("The bug, the BUG and the Bug")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := []string{"bug", "bug", "and", "bug"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizerStopwordsCaseInsensitive(t *testing.T) {
	n := NewNormalizer(NewWordTokenizer(), capability.NewStopSet([]string{"THE"}))

	got, _ := n.Normalize("The thing")
	if len(got) != 1 || got[0] != "thing" {
		t.Errorf("expected [thing], got %q", got)
	}
}

func TestNormalizerPropagatesTokenizerError(t *testing.T) {
	boom := errors.New("tokenizer exploded")
	n := NewNormalizer(capability.TokenizerFunc(func(string) ([]string, error) {
		return nil, boom
	}), nil)

	if _, err := n.Normalize("anything"); !errors.Is(err, boom) {
		t.Fatalf("expected tokenizer error, got %v", err)
	}
}

func TestNormalizerEmptyInput(t *testing.T) {
	n := NewNormalizer(NewWordTokenizer(), nil)

	got, err := n.Normalize("")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty input should produce no tokens, got %q", got)
	}
}
