package novelvm

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/reusee/novel/logs"
	"github.com/reusee/novel/novellang"
)

const (
	buildSuccessNotice = "[INFO]: Build Successful\n"
	finishNotice       = "\n[INFO]: Finished Execution\n"
)

type Engine struct {
	Logger logs.Logger

	name    string
	source  string
	program novellang.Program

	tape    Tape
	stack   Stack[uint32]
	pc      int
	state   State
	resume  State
	pending PendingInput
	output  strings.Builder
	err     error
	builds  int
}

func NewEngine(logger logs.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		Logger: logger,
	}
}

// Populate replaces the working source with the editor lines joined by newlines.
func (e *Engine) Populate(lines []string) {
	e.source = novellang.JoinLines(lines)
}

// SetSource replaces the working source; name shows up in build errors.
func (e *Engine) SetSource(name string, content string) {
	e.name = name
	e.source = content
}

func (e *Engine) Source() string {
	return e.source
}

func (e *Engine) clear() {
	e.program = novellang.Program{}
	e.tape.Clear()
	e.stack.Clear()
	e.pc = 0
	e.state = NotBuilt
	e.resume = NotBuilt
	e.pending = PendingInput{}
	e.output.Reset()
	e.err = nil
}

// Build wipes all runtime state and lexes the working source.
// It is safe to call in any state.
func (e *Engine) Build() error {
	e.clear()
	e.builds++

	program, err := novellang.NewLexer(e.name, e.source).Lex()
	e.program = program
	if err != nil {
		e.err = err
		var buildErr *novellang.BuildError
		if errors.As(err, &buildErr) {
			fmt.Fprintf(&e.output, "[ERROR]: Build Failure, %s at %d:%d\n",
				buildErr.Message(), buildErr.Pos.Line, buildErr.Pos.Column)
		} else {
			fmt.Fprintf(&e.output, "[ERROR]: Build Failure, %s\n", err.Error())
		}
		e.Logger.Warn("build failed",
			"source", e.name,
			"error", err,
		)
		return err
	}

	e.state = Built
	e.output.WriteString(buildSuccessNotice)
	e.Logger.Info("build successful",
		"source", e.name,
		"tokens", program.Len(),
	)
	return nil
}

// Reset is a full wipe and rebuild from the current source.
func (e *Engine) Reset() error {
	return e.Build()
}

// Start moves a built program to Running.
// Starting while suspended on input makes the engine keep running after the commit.
func (e *Engine) Start() error {
	switch e.state {
	case Built:
		e.state = Running
		e.Logger.Info("execution started", "source", e.name)
		return nil
	case Running:
		return nil
	case WaitingForInput:
		e.resume = Running
		return nil
	}
	return ErrNotExecutable
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) IsExecutable() bool {
	return e.state.Executable()
}

func (e *Engine) IsWaitingForInput() bool {
	return e.state == WaitingForInput
}

func (e *Engine) CanStep() bool {
	return e.state == Running
}

// CanRecurStep reports whether the host may step again in the same tick.
func (e *Engine) CanRecurStep() bool {
	return e.state == Running && !e.program.At(e.pc).IsInput()
}

// Output is the whole log since the last build. It only grows until the next build,
// so hosts that poll it should keep an offset and forward the tail.
func (e *Engine) Output() string {
	return e.output.String()
}

// Builds counts Build calls. A change means Output restarted from empty.
func (e *Engine) Builds() int {
	return e.builds
}

func (e *Engine) PendingEntry() string {
	return string(e.pending.Entry)
}

// Err returns the build error or fault that stopped the engine, if any.
func (e *Engine) Err() error {
	return e.err
}

func (e *Engine) PC() int {
	return e.pc
}

func (e *Engine) Pointer() int {
	return e.tape.Pointer()
}

func (e *Engine) Cell(i int) (uint32, error) {
	v, fault := e.tape.Get(i)
	if fault != nil {
		return 0, fault
	}
	return v, nil
}

func (e *Engine) StackValues() []uint32 {
	return e.stack.Values()
}

func (e *Engine) Program() novellang.Program {
	return novellang.Program{
		Tokens:    append([]novellang.Token(nil), e.program.Tokens...),
		Positions: append([]novellang.Pos(nil), e.program.Positions...),
	}
}

func (e *Engine) halt() {
	e.state = Halted
	e.output.WriteString(finishNotice)
	e.Logger.Info("execution finished", "source", e.name, "pc", e.pc)
}

func (e *Engine) fail(fault *Fault) error {
	fault.PC = e.pc
	fault.Token = e.program.At(e.pc)
	fault.Pos = e.program.PosAt(e.pc)
	e.state = Faulted
	e.err = fault
	fmt.Fprintf(&e.output, "[ERROR]: %s\n", fault.Error())
	e.Logger.Warn("execution fault",
		"source", e.name,
		"kind", fault.Kind.String(),
		"pc", fault.PC,
		"error", fault,
	)
	return fault
}
