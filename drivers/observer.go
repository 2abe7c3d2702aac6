package drivers

import (
	"context"

	"github.com/reusee/tan/logs"
	"github.com/reusee/tan/tanconfigs"
	"github.com/reusee/tan/tanlang"
)

// NewObserver returns the tracing observer of one compilation, nil if tracing is off.
type NewObserver func(ctx context.Context) tanlang.Observer

func (Module) NewObserver(
	trace tanconfigs.Trace,
	logger logs.Logger,
) NewObserver {
	return func(ctx context.Context) tanlang.Observer {
		if !trace {
			return nil
		}
		return tanlang.ObserverFuncs{
			Tokens: func(tokens []tanlang.Token) {
				strs := make([]string, 0, len(tokens))
				for _, tok := range tokens {
					strs = append(strs, tok.String())
				}
				logger.InfoContext(ctx, "tokens", "count", len(tokens), "tokens", strs)
			},
			Program: func(program *tanlang.Program) {
				for i, stmt := range program.Stmts {
					logger.InfoContext(ctx, "statement", "index", i, "ast", stmt.String())
				}
			},
			Output: func(output string) {
				logger.InfoContext(ctx, "output", "code", output)
			},
		}
	}
}
