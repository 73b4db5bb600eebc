package novelvm

import (
	"strconv"
	"unicode/utf8"

	"github.com/reusee/novel/novellang"
)

// Step executes the token at PC.
// It is valid in Built (single stepping) and Running.
func (e *Engine) Step() error {
	switch e.state {
	case Built, Running:
	case WaitingForInput:
		return ErrWaitingForInput
	default:
		return ErrNotExecutable
	}

	tok := e.program.At(e.pc)
	e.Logger.Debug("step",
		"pc", e.pc,
		"token", tok.String(),
		"pointer", e.tape.Pointer(),
		"stack", e.stack.Len(),
	)

	var fault *Fault
	switch tok {

	case novellang.Increment:
		fault = e.tape.Increment()

	case novellang.Decrement:
		fault = e.tape.Decrement()

	case novellang.ShiftLeft:
		fault = e.tape.ShiftLeft()

	case novellang.ShiftRight:
		fault = e.tape.ShiftRight()

	case novellang.ShiftToValue:
		fault = e.tape.ShiftToValue()

	case novellang.ResetPointer:
		e.tape.ResetPointer()

	case novellang.Push:
		var v uint32
		if v, fault = e.tape.Current(); fault == nil {
			e.stack.Push(v)
		}

	case novellang.Pop:
		v, err := e.stack.Pop()
		if err != nil {
			fault = newFault(EmptyStack, "Attempted to pop from empty stack.")
		} else {
			fault = e.tape.SetCurrent(v)
		}

	case novellang.InputNumeric:
		e.suspend(NumericInput)
		return nil

	case novellang.InputText:
		e.suspend(TextInput)
		return nil

	case novellang.OutputNumeric:
		var v uint32
		if v, fault = e.tape.Current(); fault == nil {
			e.output.WriteString(strconv.FormatUint(uint64(v), 10))
		}

	case novellang.OutputText:
		var v uint32
		if v, fault = e.tape.Current(); fault == nil {
			if r := rune(v); utf8.ValidRune(r) {
				e.output.WriteRune(r)
			} else {
				fault = newFault(InvalidCodePoint, "Value %d at index %d is not a valid character.", v, e.tape.Pointer())
			}
		}

	case novellang.JumpIfZero:
		var v uint32
		if v, fault = e.tape.Current(); fault == nil && v == 0 {
			target, ok := e.matchForward()
			if !ok {
				return e.fail(newFault(UnmatchedJump, "Unable to find matching '}' for conditional jump."))
			}
			e.pc = target
			return nil
		}

	case novellang.JumpBack:
		target, ok := e.matchBackward()
		if !ok {
			return e.fail(newFault(UnmatchedJump, "Unable to find matching '=' for non-conditional jump."))
		}
		e.pc = target
		return nil

	case novellang.JumpIfZeroMarker, novellang.JumpBackMarker:

	case novellang.EndOfProgram:
		e.halt()
		return nil

	}

	if fault != nil {
		return e.fail(fault)
	}
	e.pc++
	return nil
}
