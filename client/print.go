package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
)

func PrintResult(w io.Writer, au aurora.Aurora, r *Result) {
	fmt.Fprintln(w, au.Bold(r.Name))
	fmt.Fprint(w, r.Surface.Render())

	for _, f := range r.Failures {
		fmt.Fprintf(w, "%s step %d, %s at (%d, %d): %v\n", au.Red("✗"), f.Step, f.Kind, f.X, f.Y, f.Err)
	}

	b := r.Surface.Breakdown()
	for _, c := range b.Contributions {
		fmt.Fprintf(w, "  %-24s %s\n", c.Item, signed(au, c.Score))
	}
	fmt.Fprintf(w, "  %-24s %s\n", "tree bonus", signed(au, b.TreeBonus))
	fmt.Fprintf(w, "%s %s\n\n", au.Bold("value"), au.Bold(signed(au, b.Total)))
}

func signed(au aurora.Aurora, score int) aurora.Value {
	s := fmt.Sprintf("%+d", score)
	switch {
	case score > 0:
		return au.Green(s)
	case score < 0:
		return au.Red(s)
	}
	return au.Faint(s)
}

func PrintSummary(w io.Writer, au aurora.Aurora, results []*Result) {
	if len(results) < 2 {
		return
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Surface.Value() > best.Surface.Value() {
			best = r
		}
	}

	fmt.Fprintln(w, strings.Repeat("─", 32))
	fmt.Fprintf(w, "%d paintings, best %s with %s\n", len(results), au.Bold(best.Name), au.Bold(best.Surface.Value()))
}
