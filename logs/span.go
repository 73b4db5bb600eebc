package logs

import (
	"context"
	"errors"
	"fmt"
)

// Span identifies one unit of work, like a console run or a websocket session.
type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanOf(ctx context.Context) Span {
	if v, ok := ctx.Value(SpanKey).(Span); ok {
		return v
	}
	return ""
}

// WrapSpan annotates err with the span carried by ctx.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span := SpanOf(ctx)
	if span == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
