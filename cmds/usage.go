package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	out := p.Output
	if out == nil {
		out = os.Stderr
	}
	printCommands(out, p.commands, 0)
}

func printCommands(out io.Writer, commands map[string]*Command, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		// aliases are listed with their command
		if command == nil || slices.Contains(command.Aliases, name) {
			continue
		}
		label := strings.Join(append([]string{name}, command.Aliases...), ", ")
		if command.Func.IsValid() {
			for i := range command.Func.Type().NumIn() {
				label += " <" + command.Func.Type().In(i).String() + ">"
			}
		}
		fmt.Fprintf(out, "%s%-32s %s\n", indent, label, command.Description)
		if len(command.Subs) > 0 {
			printCommands(out, command.Subs, depth+1)
		}
	}
}
