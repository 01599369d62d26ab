// Package tui holds terminal-only presentation: the banner, verdict colors
// and the interactive prompt. Every helper degrades to plain text when the
// writer is not a terminal, so piped output stays byte-for-byte stable.
package tui

import (
	"io"
	"os"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// VerdictStyler returns a styler coloring verdict messages for w. When w is
// not a terminal it returns nil, which callers treat as "no styling".
func VerdictStyler(w io.Writer) func(domain.Outcome, string) string {
	if !IsTerminal(w) {
		return nil
	}
	return newStyler(termenv.NewOutput(w))
}

func newStyler(out *termenv.Output) func(domain.Outcome, string) string {
	return func(o domain.Outcome, msg string) string {
		s := out.String(msg)
		switch o {
		case domain.OutcomeAccepted:
			return s.Foreground(out.Color("#4ade80")).Bold().String()
		case domain.OutcomeUnknownSymbol:
			return s.Foreground(out.Color("#fbbf24")).String()
		default:
			return s.Foreground(out.Color("#f87171")).String()
		}
	}
}

// Prompt returns the prompt writer for interactive sessions: w itself on a
// terminal, nil otherwise.
func Prompt(w io.Writer) io.Writer {
	if !IsTerminal(w) {
		return nil
	}
	return w
}
