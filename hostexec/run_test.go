package hostexec

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	buf := new(bytes.Buffer)
	globals, err := Run(t.Context(), "test", "x = 5\ny = 21\nprint((x + (y * 2)))", Options{
		Stdout: buf,
	})
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "47\n" {
		t.Fatalf("got %q", buf.String())
	}
	if globals["x"] != int64(5) {
		t.Fatalf("got %#v", globals["x"])
	}
}

func TestRunReassign(t *testing.T) {
	buf := new(bytes.Buffer)
	globals, err := Run(t.Context(), "test", "a = 1\na = (a + 1)\nprint(a)", Options{
		Stdout: buf,
	})
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "2\n" {
		t.Fatalf("got %q", buf.String())
	}
	if globals["a"] != int64(2) {
		t.Fatalf("got %#v", globals["a"])
	}
}

func TestRunDivision(t *testing.T) {
	buf := new(bytes.Buffer)
	_, err := Run(t.Context(), "test", "print((15 / 2))\nprint((4 / 2))", Options{
		Stdout: buf,
	})
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "7.5\n2.0\n" {
		t.Fatalf("got %q", buf.String())
	}

	_, err = Run(t.Context(), "test", "print((1 / 0))", Options{
		Stdout: buf,
	})
	if err == nil {
		t.Fatal("should error")
	}
}

func TestRunUndefined(t *testing.T) {
	_, err := Run(t.Context(), "test", "print(nope)", Options{
		Stdout: new(bytes.Buffer),
	})
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Fatalf("got %v", err)
	}
}

func TestRunPredeclared(t *testing.T) {
	buf := new(bytes.Buffer)
	_, err := Run(t.Context(), "test", "print((base * 2))\nprint(names)", Options{
		Stdout: buf,
		Predeclared: map[string]any{
			"base":  20,
			"names": []string{"xiib", "keet"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "40\n[\"xiib\", \"keet\"]\n" {
		t.Fatalf("got %q", buf.String())
	}

	_, err = Run(t.Context(), "test", "", Options{
		Predeclared: map[string]any{
			"ch": make(chan int),
		},
	})
	if err == nil {
		t.Fatal("should error")
	}
}

func TestRunCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := Run(ctx, "test", "for i in range(1000000000):\n  x = i", Options{
		Stdout: new(bytes.Buffer),
	})
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), "cancel") {
		t.Fatalf("got %v", err)
	}
}

func TestCheck(t *testing.T) {
	if err := Check("test", "x = (1 + 2)\nprint(x)"); err != nil {
		t.Fatal(err)
	}
	if err := Check("test", "x = (1 +"); err == nil {
		t.Fatal("should error")
	}
}
