package drivers

import (
	"context"
	"io"

	"github.com/reusee/tan/hostexec"
	"github.com/reusee/tan/logs"
)

// Execute runs compiled code, writing printed values to stdout.
type Execute func(ctx context.Context, name string, code string, stdout io.Writer) error

func (Module) Execute(
	logger logs.Logger,
) Execute {
	return func(ctx context.Context, name string, code string, stdout io.Writer) error {
		globals, err := hostexec.Run(ctx, name, code, hostexec.Options{
			Stdout: stdout,
		})
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "executed", "unit", name, "globals", len(globals))
		return nil
	}
}
