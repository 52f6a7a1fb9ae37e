package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cognicore/parley/pkg/parley/analysis"
	"github.com/cognicore/parley/pkg/parley/freq"
)

// printReport writes the console view of a result: the top n entries of
// the word, n-gram, entity and question tables and the full issue tally.
func printReport(w io.Writer, res *analysis.Result, n int) {
	fmt.Fprintf(w, "Analyzed %s: %d lines, %d with timestamps\n", res.Source, res.Lines, res.TimestampedLines)

	printTable(w, "Top words", res.WordFreq.Top(n))

	grams := res.NGramFreq.Top(n)
	entries := make([]freq.Entry, len(grams))
	for i, g := range grams {
		entries[i] = freq.Entry{Key: g.NGram.Join(" "), Count: g.Count}
	}
	printTable(w, fmt.Sprintf("Top %d-grams", res.NGramSize), entries)

	printTable(w, "Top entities", res.EntityFreq.Top(n))
	printTable(w, "Top questions", res.QuestionFreq.Top(n))
	printTable(w, "Issue categories", res.IssueCategories.Entries())
}

func printTable(w io.Writer, title string, entries []freq.Entry) {
	fmt.Fprintf(w, "\n%s:\n", title)
	if len(entries) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "  %s\t%d\n", e.Key, e.Count)
	}
	tw.Flush()
}
