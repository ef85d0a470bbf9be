package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/Maho1100/minaria-quest/internal/store"
)

// EventSink receives one record per model request. *store.Store
// satisfies it.
type EventSink interface {
	RecordLLM(ctx context.Context, ev store.LLMEvent) error
}

// LoggingProvider is a decorator that records every model request as
// an event.
type LoggingProvider struct {
	inner     Provider
	sink      EventSink
	sessionID string
}

// WithLogging wraps a Provider with event logging under the given
// session ID.
func WithLogging(p Provider, sink EventSink, sessionID string) Provider {
	return &LoggingProvider{inner: p, sink: sink, sessionID: sessionID}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := l.inner.Generate(ctx, req)

	ev := store.LLMEvent{
		SessionID: l.sessionID,
		Purpose:   PurposeFrom(ctx),
		Model:     l.inner.ModelID(),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		ev.Err = err.Error()
	}

	// Log the event but never fail the request over it.
	if logErr := l.sink.RecordLLM(ctx, ev); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record model request event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
