package novelvm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/novel/modes"
)

func TestWriteTrace(t *testing.T) {
	e, err := run(t, "+++>#$$")
	if err == nil {
		t.Fatal("should fault")
	}
	buf := new(bytes.Buffer)
	e.WriteTrace(buf)
	out := buf.String()
	for _, expected := range []string{
		"state: faulted",
		"pc: 6 ($)",
		"pointer: 1",
		"000003 000000",
		"Cells: (map[int]uint32) (len=1) {",
		"Program: (string)",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("expecting %q in:\n%s", expected, out)
		}
	}
}

func TestModule(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		newEngine NewEngineFunc,
	) {
		e := newEngine()
		if e.Logger == nil {
			t.Fatal()
		}
		e.Populate([]string{"+", "&0"})
		if err := e.Build(); err != nil {
			t.Fatal(err)
		}
		if e.Program().Len() != 3 {
			t.Fatalf("got %d", e.Program().Len())
		}
	})
}
