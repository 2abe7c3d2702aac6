package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/reusee/dscope"
	"github.com/reusee/tan/cmds"
	"github.com/reusee/tan/drivers"
	"github.com/reusee/tan/logs"
	"github.com/reusee/tan/modes"
	"github.com/reusee/tan/tanconfigs"
)

var (
	encodeArgs   = cmds.Collect[string]("encode")
	listDialects = cmds.Switch("dialects")
)

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	if err := run(context.Background(), scope, os.Stdout); err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(1)
	}
}

// run performs the action selected by the command words, writing results to stdout.
func run(ctx context.Context, scope dscope.Scope, stdout io.Writer) (err error) {
	scope.Call(func(
		compile drivers.Compile,
		execute drivers.Execute,
		encode drivers.Encode,
		list drivers.ListDialects,
		runCode tanconfigs.Run,
		logger logs.Logger,
	) {

		if *listDialects {
			for _, name := range list() {
				fmt.Fprintln(stdout, name)
			}
			return
		}

		if len(*encodeArgs) > 0 {
			for _, arg := range *encodeArgs {
				value, e := strconv.ParseInt(arg, 10, 64)
				if e != nil {
					err = e
					return
				}
				str, e := encode(value)
				if e != nil {
					err = e
					return
				}
				fmt.Fprintln(stdout, str)
			}
			return
		}

		name, source, e := readInput()
		if e != nil {
			err = e
			return
		}
		logger.DebugContext(ctx, "input", "name", name, "len", len(source))

		code, e := compile(ctx, name, source)
		if e != nil {
			err = e
			return
		}

		if !runCode {
			fmt.Fprintln(stdout, code)
			return
		}
		err = execute(ctx, name, code, stdout)

	})
	return
}
