package cmds

import (
	"fmt"
	"reflect"
)

// Command is a word on the command line.
// A Func command takes its arguments from the following words; a Sub command makes more words available.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

var errorType = reflect.TypeFor[error]()

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	fnType := fnValue.Type()
	switch {
	case fnType.NumOut() > 1:
		panic(fmt.Errorf("must return 0 or 1 value"))
	case fnType.NumOut() == 1 && fnType.Out(0) != errorType:
		panic(fmt.Errorf("must return error"))
	}
	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
