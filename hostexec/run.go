package hostexec

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

type Options struct {
	Stdout      io.Writer      // if nil, default to os.Stdout
	Predeclared map[string]any // Go values visible to the program
}

// emitted programs re-bind names at top level
var fileOptions = &syntax.FileOptions{
	GlobalReassign:  true,
	TopLevelControl: true,
}

// Check parses code without running it.
func Check(name string, code string) error {
	_, err := fileOptions.Parse(name, code, 0)
	return err
}

// Run executes emitted code and returns its globals.
// Cancelling ctx interrupts the program.
func Run(ctx context.Context, name string, code string, options Options) (map[string]any, error) {
	stdout := options.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	predeclared := make(starlark.StringDict, len(options.Predeclared))
	for key, value := range options.Predeclared {
		v, err := toValue(key, value)
		if err != nil {
			return nil, err
		}
		predeclared[key] = v
	}

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			io.WriteString(stdout, msg+"\n")
		},
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	globals, err := starlark.ExecFileOptions(fileOptions, thread, name, code, predeclared)
	if err != nil {
		if evalErr, ok := err.(*starlark.EvalError); ok {
			return nil, fmt.Errorf("run %s: %s", name, strings.TrimSpace(evalErr.Backtrace()))
		}
		return nil, fmt.Errorf("run %s: %w", name, err)
	}

	ret := make(map[string]any, len(globals))
	for key, value := range globals {
		ret[key] = fromValue(value)
	}
	return ret, nil
}
