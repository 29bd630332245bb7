// Package terminal renders view descriptions as text and runs the
// interactive command loop.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/windoze95/movierec/internal/view"
)

// Printer writes views and alerts to w. It implements controller.Notifier.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Alert prints message prefixed with "!".
func (p *Printer) Alert(message string) {
	if message == "" {
		return
	}
	fmt.Fprintf(p.w, "! %s\n", message)
}

// Line prints a plain line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// PrintSearch prints the search results panel.
func (p *Printer) PrintSearch(v view.SearchView) {
	fmt.Fprintln(p.w, "== Search results ==")
	if len(v.Entries) == 0 {
		fmt.Fprintln(p.w, "(none)")
	}
	for _, e := range v.Entries {
		p.printEntry(e)
	}
	if v.LoadMoreVisible {
		fmt.Fprintln(p.w, "-- type 'more' to load more --")
	}
}

// PrintRecommendations prints the recommended movies panel.
func (p *Printer) PrintRecommendations(v view.RecommendationsView) {
	fmt.Fprintln(p.w, "== Recommended movies ==")
	if v.Placeholder != "" {
		fmt.Fprintln(p.w, v.Placeholder)
		return
	}
	for _, e := range v.Entries {
		p.printEntry(e)
	}
}

func (p *Printer) printEntry(e view.Entry) {
	fmt.Fprintf(p.w, "[%d] %s\n", e.MovieID, e.Heading)
	if body := strings.TrimSpace(e.Body); body != "" {
		fmt.Fprintf(p.w, "    %s\n", body)
	}
	fmt.Fprintf(p.w, "    > %s: recommend %d\n", e.Action, e.MovieID)
}
