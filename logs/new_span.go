package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span for a compilation unit.
// A span started inside another one records it as parent.
type NewSpan func(ctx context.Context, unit string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, unit string) (context.Context, Span) {
		parent, _ := ctx.Value(SpanKey).(Span)

		span := Span(rand.Text()[:10])
		ctx = context.WithValue(ctx, SpanKey, span)

		args := []any{"unit", unit}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}
