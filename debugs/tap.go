package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/novel/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens an interactive starlark REPL on stdin with globals bound, returning when stdin is closed.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Eval evaluates one starlark expression against globals.
type Eval func(expr string, globals map[string]any) (starlark.Value, error)

func (Module) Eval() Eval {
	return func(expr string, globals map[string]any) (starlark.Value, error) {
		thread := &starlark.Thread{
			Name: "eval",
		}
		return starlark.EvalOptions(fileOptions, thread, "<expr>", expr, toStringDict(globals))
	}
}
