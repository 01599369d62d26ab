package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/automata/pkg/domain"
)

// Line is the JSON-Lines record emitted per evaluated input.
type Line struct {
	domain.Result
	Message  string `json:"message"`
	Accepted bool   `json:"accepted"`
}

// NewLine decorates res with its verdict literal.
func NewLine(res domain.Result) Line {
	return Line{
		Result:   res,
		Message:  res.Outcome.Message(),
		Accepted: res.Accepted(),
	}
}

// JSONHandler emits one JSON object per evaluated line.
type JSONHandler struct {
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler writing JSON Lines to w (Stdout if nil).
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{Encoder: json.NewEncoder(w)}
}

func (h *JSONHandler) Output(ctx context.Context, res domain.Result) error {
	return h.Encoder.Encode(NewLine(res))
}
