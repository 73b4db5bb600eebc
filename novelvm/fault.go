package novelvm

import (
	"errors"
	"fmt"

	"github.com/reusee/novel/novellang"
)

var (
	ErrNotExecutable   = errors.New("program is not executable")
	ErrWaitingForInput = errors.New("waiting for input")
	ErrNotWaiting      = errors.New("not waiting for input")
	ErrEmptyStack      = errors.New("empty stack")
)

type FaultKind uint8

const (
	CellOverflow FaultKind = iota + 1
	CellUnderflow
	PointerUnderflow
	PointerOverflow
	ShiftOutOfRange
	IndexOutOfRange
	EmptyStack
	InvalidCodePoint
	UnmatchedJump
	BadInput
)

var faultKindNames = map[FaultKind]string{
	CellOverflow:     "cell overflow",
	CellUnderflow:    "cell underflow",
	PointerUnderflow: "pointer underflow",
	PointerOverflow:  "pointer overflow",
	ShiftOutOfRange:  "shift out of range",
	IndexOutOfRange:  "index out of range",
	EmptyStack:       "empty stack",
	InvalidCodePoint: "invalid code point",
	UnmatchedJump:    "unmatched jump",
	BadInput:         "bad input",
}

func (k FaultKind) String() string {
	if name, ok := faultKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("fault(%d)", uint8(k))
}

// Fault is a runtime error. The engine stops in Faulted until rebuilt.
type Fault struct {
	Kind    FaultKind
	Message string
	PC      int
	Token   novellang.Token
	Pos     novellang.Pos
}

func newFault(kind FaultKind, format string, args ...any) *Fault {
	return &Fault{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func (f *Fault) Error() string {
	if f.Pos.Line == 0 {
		return f.Message
	}
	return fmt.Sprintf("%s (token %d '%s' at %d:%d)", f.Message, f.PC, f.Token, f.Pos.Line, f.Pos.Column)
}

func (f *Fault) Is(target error) bool {
	return f.Kind == EmptyStack && target == ErrEmptyStack
}
