package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/novel/novelvm"
	"go.starlark.net/starlark"
)

func TestEval(t *testing.T) {
	engine := novelvm.NewEngine(nil)
	engine.SetSource("test", "+++>++#")
	if err := engine.Build(); err != nil {
		t.Fatal(err)
	}
	if err := engine.Start(); err != nil {
		t.Fatal(err)
	}
	for engine.CanStep() {
		if err := engine.Step(); err != nil {
			t.Fatal(err)
		}
	}

	dscope.New(
		new(Module),
	).Call(func(
		eval Eval,
	) {
		globals := map[string]any{
			"engine": engine.Snapshot(),
		}

		for expr, expected := range map[string]starlark.Value{
			`engine["State"]`:    starlark.String("halted"),
			`engine["Cells"][0]`: starlark.MakeInt(3),
			`engine["Cells"][1]`: starlark.MakeInt(2),
			`engine["Stack"]`:    starlark.NewList([]starlark.Value{starlark.MakeInt(2)}),
			`engine["Pointer"]`:  starlark.MakeInt(1),
		} {
			v, err := eval(expr, globals)
			if err != nil {
				t.Fatalf("%s: %v", expr, err)
			}
			equal, err := starlark.Equal(v, expected)
			if err != nil {
				t.Fatal(err)
			}
			if !equal {
				t.Fatalf("%s: got %v", expr, v)
			}
		}

		if _, err := eval(`engine["Nope"]`, globals); err == nil {
			t.Fatal("should error")
		}
	})
}

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		// stdin is not a terminal under go test, the REPL returns at EOF
		tap(t.Context(), "test", map[string]any{
			"pc": 42,
		})
	})
}
