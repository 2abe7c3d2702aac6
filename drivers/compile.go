package drivers

import (
	"context"

	"github.com/reusee/tan/logs"
	"github.com/reusee/tan/tanconfigs"
	"github.com/reusee/tan/tanlang"
)

// Compile translates one compilation unit with the configured dialect.
type Compile func(ctx context.Context, name string, source string) (string, error)

func (Module) Compile(
	getDialect tanconfigs.GetDialect,
	newObserver NewObserver,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Compile {
	return func(ctx context.Context, name string, source string) (string, error) {
		ctx, _ = newSpan(ctx, name)

		dialect, err := getDialect()
		if err != nil {
			return "", logs.WrapSpan(ctx, err)
		}

		output, err := tanlang.Compile(source, tanlang.Options{
			Name:     name,
			Dialect:  &dialect,
			Observer: newObserver(ctx),
		})
		if err != nil {
			logger.DebugContext(ctx, "compile failed", "dialect", dialect.Name, "error", err)
			return "", logs.WrapSpan(ctx, err)
		}

		logger.DebugContext(ctx, "compiled", "dialect", dialect.Name, "bytes", len(output))
		return output, nil
	}
}
