package freq

import "github.com/cognicore/parley/pkg/parley/ngram"

// NGramTable is a Table keyed by n-gram identity.
type NGramTable struct {
	table *Table
	grams map[string]ngram.NGram
}

// NGramEntry is one n-gram with its count.
type NGramEntry struct {
	NGram ngram.NGram
	Count int64
}

// NewNGramTable creates an empty n-gram table.
func NewNGramTable() *NGramTable {
	return &NGramTable{
		table: NewTable(),
		grams: make(map[string]ngram.NGram),
	}
}

// Update increments each n-gram by its multiplicity in grams.
func (t *NGramTable) Update(grams ...ngram.NGram) {
	for _, g := range grams {
		key := g.Key()
		if _, ok := t.grams[key]; !ok {
			t.grams[key] = append(ngram.NGram(nil), g...)
		}
		t.table.Update(key)
	}
}

// Count returns the count for g.
func (t *NGramTable) Count(g ngram.NGram) int64 {
	return t.table.Count(g.Key())
}

// Len returns the number of distinct n-grams.
func (t *NGramTable) Len() int {
	return t.table.Len()
}

// Top returns the k most frequent n-grams, ties in first-seen order.
func (t *NGramTable) Top(k int) []NGramEntry {
	top := t.table.Top(k)
	out := make([]NGramEntry, len(top))
	for i, e := range top {
		out[i] = NGramEntry{NGram: t.grams[e.Key], Count: e.Count}
	}
	return out
}

// Entries returns every n-gram in first-seen order.
func (t *NGramTable) Entries() []NGramEntry {
	all := t.table.Entries()
	out := make([]NGramEntry, len(all))
	for i, e := range all {
		out[i] = NGramEntry{NGram: t.grams[e.Key], Count: e.Count}
	}
	return out
}
