package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
)

// Stats summarizes a finished session.
type Stats struct {
	Lines         int
	Accepted      int
	Rejected      int
	UnknownSymbol int
}

func (s *Stats) record(o domain.Outcome) {
	s.Lines++
	switch o {
	case domain.OutcomeAccepted:
		s.Accepted++
	case domain.OutcomeUnknownSymbol:
		s.UnknownSymbol++
	default:
		s.Rejected++
	}
}

// Session evaluates every input line against one automaton.
type Session struct {
	evaluator ports.Evaluator
	name      string
	sentinel  *string
	prompt    string
	handler   ResultHandler
	prompts   io.Writer
	logger    *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSentinel stops the session at the first line equal to s.
// Without a sentinel the session runs until end of stream.
func WithSentinel(s string) SessionOption {
	return func(r *Session) {
		r.sentinel = &s
	}
}

// WithPrompt prints a banner line to w before reading input.
func WithPrompt(w io.Writer, prompt string) SessionOption {
	return func(r *Session) {
		r.prompts = w
		r.prompt = prompt
	}
}

// WithHandler configures how verdicts are presented.
func WithHandler(h ResultHandler) SessionOption {
	return func(r *Session) {
		r.handler = h
	}
}

// WithName sets the automaton name reported in results and logs.
func WithName(name string) SessionOption {
	return func(r *Session) {
		r.name = name
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(r *Session) {
		r.logger = logger
	}
}

// NewSession creates a session over the given evaluator.
// Verdicts default to a TextHandler on Stdout.
func NewSession(evaluator ports.Evaluator, opts ...SessionOption) *Session {
	s := &Session{
		evaluator: evaluator,
		handler:   NewTextHandler(nil),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads lines from r until the sentinel, end of stream or ctx is done.
// Reaching the sentinel or end of stream is a normal exit and returns a nil error.
// Reading happens on a separate goroutine so a canceled ctx ends a session
// blocked on input.
func (s *Session) Run(ctx context.Context, r io.Reader) (Stats, error) {
	var stats Stats

	if s.prompts != nil && s.prompt != "" {
		fmt.Fprintln(s.prompts, s.prompt)
	}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(r, done)

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		var (
			next line
			ok   bool
		)
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case next, ok = <-lines:
		}

		if !ok {
			s.logger.Debug("end of input", "lines", stats.Lines)
			return stats, nil
		}
		if next.err != nil {
			return stats, fmt.Errorf("failed to read input: %w", next.err)
		}
		if s.sentinel != nil && next.text == *s.sentinel {
			s.logger.Debug("sentinel reached", "lines", stats.Lines)
			return stats, nil
		}

		res := s.evaluator.Evaluate(next.text)
		res.Automaton = s.name
		stats.record(res.Outcome)

		s.logger.Debug("evaluated",
			"automaton", s.name,
			"input", next.text,
			"outcome", res.Outcome,
			"steps", len(res.Steps),
			"final", res.Final.String(),
		)
		if res.Err != nil {
			s.logger.Debug("input rejected", "automaton", s.name, "err", res.Err)
		}

		if err := s.handler.Output(ctx, res); err != nil {
			return stats, fmt.Errorf("failed to write verdict: %w", err)
		}
	}
}
