package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("compiled", "unit", "hello.tan")
		logger.With("dialect", "tan").Warn("slow")
	})
	if !strings.Contains(buf.String(), "unit=hello.tan") {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "dialect=tan") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestJournalKey(t *testing.T) {
	if got := journalKey("span.parent-id"); got != "SPAN_PARENT_ID" {
		t.Fatalf("got %v", got)
	}
}

func TestWrapSpan(t *testing.T) {
	base := errors.New("boom")
	if err := WrapSpan(context.Background(), base); err != base {
		t.Fatalf("got %v", err)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	err := WrapSpan(ctx, base)
	if !errors.Is(err, base) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "span abc") {
		t.Fatalf("got %v", err)
	}
	if WrapSpan(ctx, nil) != nil {
		t.Fatal()
	}
}

func TestLevel(t *testing.T) {
	defer SetLevel(slog.LevelInfo)
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		SetLevel(slog.LevelWarn)
		logger.Info("hidden")
		SetLevel(slog.LevelDebug)
		logger.Debug("shown")
	})
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("got %s", buf.String())
	}
}
