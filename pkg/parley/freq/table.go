package freq

import "sort"

// Table counts keys and remembers the order in which each key first appeared.
// Counts only grow.
type Table struct {
	counts map[string]int64
	order  []string
}

// Entry is one key with its count.
type Entry struct {
	Key   string
	Count int64
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int64)}
}

// Update increments each key once per occurrence in keys, so a key repeated
// within one batch gains its multiplicity.
func (t *Table) Update(keys ...string) {
	for _, k := range keys {
		if _, ok := t.counts[k]; !ok {
			t.order = append(t.order, k)
		}
		t.counts[k]++
	}
}

// Count returns the count for key (0 when unseen).
func (t *Table) Count(key string) int64 {
	return t.counts[key]
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.order)
}

// Total returns the sum of all counts.
func (t *Table) Total() int64 {
	var total int64
	for _, c := range t.counts {
		total += c
	}
	return total
}

// Keys returns the distinct keys in first-seen order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Entries returns every key with its count in first-seen order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.order))
	for i, k := range t.order {
		out[i] = Entry{Key: k, Count: t.counts[k]}
	}
	return out
}

// Top returns the k highest counts, ties broken by first-seen order.
// k <= 0 returns nothing; k beyond Len returns every entry.
func (t *Table) Top(k int) []Entry {
	if k <= 0 {
		return nil
	}
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if k < len(entries) {
		entries = entries[:k]
	}
	return entries
}
