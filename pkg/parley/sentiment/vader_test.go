package sentiment

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVaderPolarity(t *testing.T) {
	v := NewVader(nil)

	tests := []struct {
		name string
		text string
		sign int
	}{
		{"positive", "Thanks, that was really helpful", 1},
		{"negative", "This is a terrible experience", -1},
		{"neutral", "my order number is here", 0},
		{"negated positive", "this is not good", -1},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Compound(tt.text)
			if err != nil {
				t.Fatalf("Compound: %v", err)
			}
			switch {
			case tt.sign > 0 && got <= 0:
				t.Errorf("Compound(%q) = %v, want positive", tt.text, got)
			case tt.sign < 0 && got >= 0:
				t.Errorf("Compound(%q) = %v, want negative", tt.text, got)
			case tt.sign == 0 && got != 0:
				t.Errorf("Compound(%q) = %v, want 0", tt.text, got)
			}
		})
	}
}

func TestVaderRange(t *testing.T) {
	v := NewVader(nil)
	texts := []string{
		"GREAT GREAT GREAT awesome best love love love!!!!!!",
		"worst worst terrible horrible awful HATE!!!!",
		"good",
	}
	for _, text := range texts {
		got, _ := v.Compound(text)
		if got < -1 || got > 1 {
			t.Errorf("Compound(%q) = %v outside [-1, 1]", text, got)
		}
	}
}

func TestVaderKnownScore(t *testing.T) {
	v := NewVader(nil)
	// good = 1.9; 1.9 / sqrt(1.9^2 + 15) = 0.4404
	got, _ := v.Compound("good")
	if got != 0.4404 {
		t.Errorf("Compound(good) = %v, want 0.4404", got)
	}
}

func TestVaderModifiers(t *testing.T) {
	v := NewVader(nil)

	plain, _ := v.Compound("the support was good")
	boosted, _ := v.Compound("the support was very good")
	if boosted <= plain {
		t.Errorf("booster should raise score: plain=%v boosted=%v", plain, boosted)
	}

	exclaimed, _ := v.Compound("the support was good!!")
	if exclaimed <= plain {
		t.Errorf("exclamation should raise score: plain=%v exclaimed=%v", plain, exclaimed)
	}

	shouted, _ := v.Compound("the support was GOOD")
	if shouted <= plain {
		t.Errorf("caps emphasis should raise score: plain=%v shouted=%v", plain, shouted)
	}

	contrast, _ := v.Compound("the agent was nice but the refund failed")
	if contrast >= 0 {
		t.Errorf("clause after 'but' should dominate, got %v", contrast)
	}
}

func TestLoadLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lex.yaml")
	data := []byte("lexicon:\n  Stellar: 3\n  meh: -0.5\nboosters:\n  increase: [very]\nnegations: [not]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	if lex.Size() != 2 {
		t.Errorf("Size = %d, want 2", lex.Size())
	}
	if v, ok := lex.Valence("stellar"); !ok || v != 3 {
		t.Errorf("Valence(stellar) = %v, %v", v, ok)
	}

	score, _ := NewVader(lex).Compound("not stellar")
	if score >= 0 {
		t.Errorf("negated custom word should be negative, got %v", score)
	}
}

func TestParseLexiconRejectsOutOfRange(t *testing.T) {
	if _, err := ParseLexicon([]byte("lexicon:\n  wow: 9\n")); err == nil {
		t.Error("expected error for valence outside [-4, 4]")
	}
}
