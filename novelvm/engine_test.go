package novelvm

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/reusee/novel/novellang"
)

const maxTestSteps = 100000

func build(t *testing.T, src string) *Engine {
	t.Helper()
	e := NewEngine(nil)
	e.SetSource("test", src)
	if err := e.Build(); err != nil {
		t.Fatalf("build %q: %v", src, err)
	}
	return e
}

// run drives the engine like the host does, feeding inputs whenever it waits.
func run(t *testing.T, src string, inputs ...string) (*Engine, error) {
	t.Helper()
	e := build(t, src)
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	for range maxTestSteps {
		switch e.State() {
		case Halted:
			return e, nil
		case Faulted:
			return e, e.Err()
		case WaitingForInput:
			if len(inputs) == 0 {
				t.Fatalf("%q: input exhausted", src)
			}
			if err := e.SubmitInput(inputs[0]); err != nil {
				return e, err
			}
			inputs = inputs[1:]
			continue
		}
		if err := e.Step(); err != nil {
			return e, err
		}
	}
	t.Fatalf("%q: did not terminate", src)
	return nil, nil
}

func TestExamples(t *testing.T) {
	t.Run("output numeric", func(t *testing.T) {
		e, err := run(t, "+++&0")
		if err != nil {
			t.Fatal(err)
		}
		out := strings.TrimSuffix(e.Output(), finishNotice)
		if !strings.HasSuffix(out, "3") {
			t.Fatalf("got %q", e.Output())
		}
	})

	t.Run("numeric input", func(t *testing.T) {
		e, err := run(t, "?0&0", "42")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(e.Output(), "42") {
			t.Fatalf("got %q", e.Output())
		}
		if v, _ := e.Cell(0); v != 42 {
			t.Fatalf("got %d", v)
		}
	})

	t.Run("decrement below zero", func(t *testing.T) {
		e, err := run(t, "---")
		if err == nil {
			t.Fatal("should fault")
		}
		var fault *Fault
		if !errors.As(err, &fault) {
			t.Fatalf("got %T", err)
		}
		if fault.Kind != CellUnderflow || fault.PC != 0 {
			t.Fatalf("got %+v", fault)
		}
		if !strings.Contains(e.Output(), "below 0") {
			t.Fatalf("got %q", e.Output())
		}
		if e.State() != Faulted || e.IsExecutable() || e.CanStep() {
			t.Fatal()
		}
	})

	t.Run("pop empty stack", func(t *testing.T) {
		e, err := run(t, "###$$$$")
		if !errors.Is(err, ErrEmptyStack) {
			t.Fatalf("got %v", err)
		}
		if e.PC() != 6 {
			t.Fatalf("got pc %d", e.PC())
		}
		if !strings.Contains(e.Output(), "empty stack") {
			t.Fatalf("got %q", e.Output())
		}
	})

	t.Run("empty source", func(t *testing.T) {
		e := build(t, "")
		if !slices.Equal(e.Program().Tokens, []novellang.Token{novellang.EndOfProgram}) {
			t.Fatalf("got %v", e.Program().Tokens)
		}
		if !e.IsExecutable() {
			t.Fatal()
		}
		if err := e.Start(); err != nil {
			t.Fatal(err)
		}
		if err := e.Step(); err != nil {
			t.Fatal(err)
		}
		if e.State() != Halted {
			t.Fatalf("got %v", e.State())
		}
		if e.IsExecutable() || e.CanStep() {
			t.Fatal()
		}
		if !strings.HasSuffix(e.Output(), finishNotice) {
			t.Fatalf("got %q", e.Output())
		}
	})
}

func TestBuildFailure(t *testing.T) {
	e := NewEngine(nil)
	e.Populate([]string{"++", "+?x"})
	err := e.Build()
	if !errors.Is(err, novellang.ErrBadSuffix) {
		t.Fatalf("got %v", err)
	}
	if e.IsExecutable() || e.State() != NotBuilt {
		t.Fatal()
	}
	if !errors.Is(e.Start(), ErrNotExecutable) {
		t.Fatal()
	}
	if !errors.Is(e.Step(), ErrNotExecutable) {
		t.Fatal()
	}
	if got := e.Output(); got != "[ERROR]: Build Failure, expected '0' or 'a' after ? token at 2:2\n" {
		t.Fatalf("got %q", got)
	}
}

func TestBuildResets(t *testing.T) {
	e, err := run(t, "+++#>++#", "")
	if err != nil {
		t.Fatal(err)
	}
	first := e.Program()
	if len(e.StackValues()) != 2 {
		t.Fatal()
	}

	if err := e.Build(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(first.Tokens, e.Program().Tokens) {
		t.Fatalf("got %v", e.Program().Tokens)
	}
	if len(e.StackValues()) != 0 || e.Pointer() != 0 || e.PC() != 0 {
		t.Fatal()
	}
	for i := range TapeSize {
		if v, _ := e.Cell(i); v != 0 {
			t.Fatalf("cell %d = %d", i, v)
		}
	}
	if e.Output() != buildSuccessNotice {
		t.Fatalf("got %q", e.Output())
	}
	if e.State() != Built {
		t.Fatal()
	}
}

func TestResetWhileWaiting(t *testing.T) {
	e := build(t, "+?a")
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	for e.CanRecurStep() {
		if err := e.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if err := e.Step(); err != nil {
		t.Fatal(err)
	}
	if !e.IsWaitingForInput() {
		t.Fatalf("got %v", e.State())
	}
	e.AppendKey('h')
	if err := e.Reset(); err != nil {
		t.Fatal(err)
	}
	if e.IsWaitingForInput() || e.PendingEntry() != "" || e.PendingKind() != 0 {
		t.Fatal()
	}
	if v, _ := e.Cell(0); v != 0 {
		t.Fatal()
	}
	if e.State() != Built {
		t.Fatal()
	}
}

func TestStartStates(t *testing.T) {
	e := NewEngine(nil)
	if !errors.Is(e.Start(), ErrNotExecutable) {
		t.Fatal()
	}
	e.Populate([]string{"+"})
	if err := e.Build(); err != nil {
		t.Fatal(err)
	}
	if e.CanStep() {
		t.Fatal("built engine should not be scheduled")
	}
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	if !e.CanStep() {
		t.Fatal()
	}
}

func TestSingleStepFromBuilt(t *testing.T) {
	e := build(t, "++?0&0")
	if err := e.Step(); err != nil {
		t.Fatal(err)
	}
	if e.State() != Built || e.PC() != 1 {
		t.Fatalf("got %v %d", e.State(), e.PC())
	}
	if err := e.Step(); err != nil {
		t.Fatal(err)
	}
	if err := e.Step(); err != nil {
		t.Fatal(err)
	}
	if !e.IsWaitingForInput() {
		t.Fatal()
	}
	if !errors.Is(e.Step(), ErrWaitingForInput) {
		t.Fatal()
	}
	if err := e.SubmitInput("7"); err != nil {
		t.Fatal(err)
	}
	if e.State() != Built || e.PC() != 3 {
		t.Fatalf("got %v %d", e.State(), e.PC())
	}
}

func TestStartWhileWaiting(t *testing.T) {
	e := build(t, "?0&0")
	if err := e.Step(); err != nil {
		t.Fatal(err)
	}
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	if err := e.SubmitInput("5"); err != nil {
		t.Fatal(err)
	}
	if e.State() != Running {
		t.Fatalf("got %v", e.State())
	}
}

func TestHaltedRejectsStep(t *testing.T) {
	e, err := run(t, "+")
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(e.Step(), ErrNotExecutable) {
		t.Fatal()
	}
	if !errors.Is(e.Start(), ErrNotExecutable) {
		t.Fatal()
	}
}

func TestProgramIsCopied(t *testing.T) {
	e := build(t, "+-")
	prog := e.Program()
	prog.Tokens[0] = novellang.Pop
	if e.Program().Tokens[0] != novellang.Increment {
		t.Fatal()
	}
}

func TestBuildsRestartOutput(t *testing.T) {
	e := NewEngine(nil)
	if e.Builds() != 0 {
		t.Fatal()
	}
	e.SetSource("test", "+&0")
	if err := e.Build(); err != nil {
		t.Fatal(err)
	}
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	for e.CanStep() {
		if err := e.Step(); err != nil {
			t.Fatal(err)
		}
	}
	before := e.Output()
	if err := e.Reset(); err != nil {
		t.Fatal(err)
	}
	if e.Builds() != 2 {
		t.Fatalf("got %d", e.Builds())
	}
	if len(e.Output()) >= len(before) {
		t.Fatalf("got %q", e.Output())
	}
}
