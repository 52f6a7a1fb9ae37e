package ngram

import "strings"

// keySep joins tokens into a map key. It cannot occur inside a token
// produced by the normalizer, so distinct n-grams never collide.
const keySep = "\x1f"

// NGram is an ordered tuple of consecutive tokens.
type NGram []string

// Key returns a hashable identity for the n-gram. It is order-sensitive.
func (g NGram) Key() string {
	return strings.Join(g, keySep)
}

// Join renders the n-gram with sep between tokens.
func (g NGram) Join(sep string) string {
	return strings.Join(g, sep)
}

// FromKey rebuilds an n-gram from Key output.
func FromKey(key string) NGram {
	if key == "" {
		return NGram{}
	}
	return NGram(strings.Split(key, keySep))
}

// Generate returns every contiguous window of n tokens, in order. There are
// max(0, len(tokens)-n+1) windows; n < 1 yields none. Windows are copies and
// do not alias tokens.
func Generate(tokens []string, n int) []NGram {
	if n < 1 || len(tokens) < n {
		return nil
	}
	out := make([]NGram, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		window := make(NGram, n)
		copy(window, tokens[i:i+n])
		out = append(out, window)
	}
	return out
}
