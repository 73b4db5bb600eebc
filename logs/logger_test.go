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
		logger.Warn("build failure", "line", 2)
		if !strings.Contains(buf.String(), "app=novel") {
			t.Fatalf("got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "line=2") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("steps.per-tick"); got != "STEPS_PER_TICK" {
		t.Fatalf("got %s", got)
	}
}

func TestWrapSpan(t *testing.T) {
	err := errors.New("foo")
	if WrapSpan(context.Background(), err) != err {
		t.Fatal()
	}
	if WrapSpan(context.Background(), nil) != nil {
		t.Fatal()
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	wrapped := WrapSpan(ctx, err)
	if !errors.Is(wrapped, err) {
		t.Fatal()
	}
	if !strings.Contains(wrapped.Error(), "span: abc") {
		t.Fatalf("got %v", wrapped)
	}
}

func TestHandlerWithAttrs(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(&Handler{
		Handler: slog.NewTextHandler(buf, nil),
	}).With("engine", "e1")
	ctx := context.WithValue(context.Background(), SpanKey, Span("xyz"))
	logger.InfoContext(ctx, "step")
	if !strings.Contains(buf.String(), "span=xyz") {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "engine=e1") {
		t.Fatalf("got %s", buf.String())
	}
}
