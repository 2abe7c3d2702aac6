package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int64]("TestVarInt")
	b := Var[string]("TestVarString")
	GlobalExecutor.MustExecute([]string{
		"TestVarInt", "42",
		"TestVarString", "tan",
	})
	if *a != 42 {
		t.Fatal()
	}
	if *b != "tan" {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"TestVarString.",
	})
	if *b != "" {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*foo {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "a",
		"TestCollect", "b",
	})
	if str := fmt.Sprintf("%v", *list); str != "[a b]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Dialect string
	v := Var[Dialect]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "tan",
	})
	if *v != "tan" {
		t.Fatal()
	}
}
