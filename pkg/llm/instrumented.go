package llm

import (
	"context"
	"time"
)

// Observer receives one callback per provider call.
type Observer interface {
	ObserveAI(operation string, duration time.Duration, err error)
}

type operationKey struct{}

// WithOperation labels provider calls made with ctx for observers.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, operationKey{}, operation)
}

func operationFrom(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey{}).(string); ok && op != "" {
		return op
	}
	return "unlabelled"
}

// Instrumented wraps a provider and reports each call to the observer.
type Instrumented struct {
	next     LLMProvider
	observer Observer
}

func NewInstrumented(next LLMProvider, observer Observer) *Instrumented {
	return &Instrumented{next: next, observer: observer}
}

func (i *Instrumented) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	start := time.Now()
	out, err := i.next.Chat(ctx, history, options...)
	i.observer.ObserveAI(operationFrom(ctx), time.Since(start), err)
	return out, err
}

func (i *Instrumented) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	start := time.Now()
	out, err := i.next.Generate(ctx, prompt, options...)
	i.observer.ObserveAI(operationFrom(ctx), time.Since(start), err)
	return out, err
}
