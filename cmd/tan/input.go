package main

import (
	"io"
	"os"

	"github.com/reusee/tan/cmds"
)

var fileFlag = cmds.Var[string]("file")

func init() {
	cmds.Define("-file", cmds.Func(func(path string) {
		*fileFlag = path
	}).Desc("read source from path instead of stdin"))
}

// readInput returns the unit name and its source.
func readInput() (name string, source string, err error) {
	if *fileFlag == "" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", wrap(err)
		}
		return "<stdin>", string(content), nil
	}
	content, err := os.ReadFile(*fileFlag)
	if err != nil {
		return "", "", wrap(err)
	}
	return *fileFlag, string(content), nil
}
