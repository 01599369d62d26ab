package runner

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/automata/pkg/domain"
)

// Middleware wraps a ResultHandler with extra behavior.
type Middleware func(ResultHandler) ResultHandler

// Chain applies mws to h; the first middleware is the outermost.
func Chain(h ResultHandler, mws ...Middleware) ResultHandler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// MultiHandler hands every result to all handlers, in order.
// Every handler runs even if an earlier one fails; the errors are joined.
func MultiHandler(handlers ...ResultHandler) ResultHandler {
	return ResultHandlerFunc(func(ctx context.Context, res domain.Result) error {
		var errs []error
		for _, h := range handlers {
			if err := h.Output(ctx, res); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

// TraceMiddleware logs the active states after every symbol, then the final
// set and outcome, before passing the result on.
func TraceMiddleware(logger *slog.Logger) Middleware {
	return func(next ResultHandler) ResultHandler {
		return ResultHandlerFunc(func(ctx context.Context, res domain.Result) error {
			symbols := []rune(res.Input)
			for i, step := range res.Steps {
				var sym string
				if i < len(symbols) {
					sym = string(symbols[i])
				}
				logger.Info("step", "automaton", res.Automaton, "index", i, "symbol", sym, "states", step.String())
			}
			logger.Info("final",
				"automaton", res.Automaton,
				"input", res.Input,
				"states", res.Final.String(),
				"outcome", res.Outcome,
			)
			return next.Output(ctx, res)
		})
	}
}
