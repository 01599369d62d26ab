package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/automata/pkg/domain"
)

// Styler decorates a verdict line, e.g. with terminal colors.
type Styler func(outcome domain.Outcome, line string) string

// TextHandler prints the verdict literal for each result.
type TextHandler struct {
	Writer io.Writer
	Styler Styler
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithStyler decorates every printed line.
func WithStyler(s Styler) TextHandlerOption {
	return func(h *TextHandler) {
		h.Styler = s
	}
}

// NewTextHandler creates a handler writing to w (Stdout if nil).
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{Writer: w}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Output(ctx context.Context, res domain.Result) error {
	line := res.Outcome.Message()
	if h.Styler != nil {
		line = h.Styler(res.Outcome, line)
	}
	_, err := fmt.Fprintln(h.Writer, line)
	return err
}
