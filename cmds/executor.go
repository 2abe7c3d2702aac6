package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/tan/vars"
)

type Executor struct {
	commands map[string]*Command
	Output   io.Writer // usage output, default to os.Stderr
	Exit     func(code int)
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
		Exit:     os.Exit,
	}
	ret.Define("-h", Func(func() {
		ret.PrintUsage()
		ret.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))
	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, n := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[n]; ok {
			panic(fmt.Errorf("duplicated command %s", n))
		}
		p.commands[n] = command
	}
}

type UnknownCommandError struct {
	Name string
}

func (u *UnknownCommandError) Error() string {
	return "unknown command: " + u.Name
}

func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			return &UnknownCommandError{Name: name}
		}

		if command.Func.IsValid() {
			var err error
			args, err = call(name, command.Func, args)
			if err != nil {
				return err
			}
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, sub := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = sub
			}
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

// call consumes one word per parameter and returns the remaining words.
func call(name string, fn reflect.Value, args []string) ([]string, error) {
	fnType := fn.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := parseArg(fnType.In(i), args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	rets := fn.Call(callArgs)
	if len(rets) > 0 && !rets[0].IsNil() {
		return nil, rets[0].Interface().(error)
	}
	return args, nil
}

func parseArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			// optional
			return reflect.New(t.Elem()), nil
		}
		elem, err := parseArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	if len(args) == 0 {
		return ret, fmt.Errorf("expecting argument, got nothing")
	}
	str := args[0]
	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)

	case reflect.String:
		ret.SetString(str)

	default:
		return ret, fmt.Errorf("unsupported type: %v", t)
	}

	return ret, nil
}
