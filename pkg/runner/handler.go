package runner

import (
	"context"

	"github.com/aretw0/automata/pkg/domain"
)

// ResultHandler presents the verdict of one evaluated line.
type ResultHandler interface {
	Output(ctx context.Context, res domain.Result) error
}

// ResultHandlerFunc adapts a function to ResultHandler.
type ResultHandlerFunc func(ctx context.Context, res domain.Result) error

func (f ResultHandlerFunc) Output(ctx context.Context, res domain.Result) error {
	return f(ctx, res)
}
