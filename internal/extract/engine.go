// Package extract turns document payloads into validated name records via a
// structured-output language model call, then normalizes them into tagged
// interchange rows.
package extract

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/document"
	"github.com/sells-group/prospect-cli/internal/model"
)

// Engine drives name extraction for one document at a time.
type Engine struct {
	backend Completer
	prompt  string
}

// Option configures the engine.
type Option func(*Engine)

// WithPrompt overrides the default extraction prompt.
func WithPrompt(prompt string) Option {
	return func(e *Engine) {
		if prompt != "" {
			e.prompt = prompt
		}
	}
}

// NewEngine creates an extraction engine on top of a model backend.
func NewEngine(backend Completer, opts ...Option) *Engine {
	e := &Engine{
		backend: backend,
		prompt:  DefaultPrompt,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Extract submits the document to the model backend and recovers the
// validated name records. Request failures and unparseable responses surface
// as errors; an empty slice with a nil error means the model found no names.
func (e *Engine) Extract(ctx context.Context, doc *document.Payload) ([]model.NameRecord, error) {
	content, err := e.backend.Complete(ctx, e.prompt, doc)
	if err != nil {
		return nil, eris.Wrap(err, "extract: model request")
	}

	records, err := ParseNames(content)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("extract: parsed names",
		zap.String("kind", string(doc.Kind)),
		zap.Int("records", len(records)),
	)

	return records, nil
}
