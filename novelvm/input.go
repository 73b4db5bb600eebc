package novelvm

import (
	"strconv"
	"strings"
)

type InputKind uint8

const (
	NumericInput InputKind = iota + 1
	TextInput
)

func (k InputKind) String() string {
	switch k {
	case NumericInput:
		return "numeric"
	case TextInput:
		return "text"
	}
	return "none"
}

// PendingInput is the console entry assembled from keystrokes while the engine waits.
type PendingInput struct {
	Kind  InputKind
	Entry []rune
}

func (e *Engine) suspend(kind InputKind) {
	e.resume = e.state
	e.state = WaitingForInput
	e.pending = PendingInput{
		Kind: kind,
	}
	e.Logger.Debug("waiting for input",
		"kind", kind.String(),
		"pc", e.pc,
	)
}

func (e *Engine) PendingKind() InputKind {
	return e.pending.Kind
}

// AppendKey adds a character to the pending entry. Keys are dropped unless the engine waits for input.
func (e *Engine) AppendKey(r rune) bool {
	if e.state != WaitingForInput {
		return false
	}
	e.pending.Entry = append(e.pending.Entry, r)
	return true
}

// Backspace removes the last character of the pending entry.
func (e *Engine) Backspace() bool {
	if e.state != WaitingForInput || len(e.pending.Entry) == 0 {
		return false
	}
	e.pending.Entry = e.pending.Entry[:len(e.pending.Entry)-1]
	return true
}

// SubmitInput replaces the pending entry with text and commits it.
func (e *Engine) SubmitInput(text string) error {
	if e.state != WaitingForInput {
		return ErrNotWaiting
	}
	e.pending.Entry = []rune(text)
	return e.Submit()
}

// Submit commits the pending entry and advances past the input token.
func (e *Engine) Submit() error {
	if e.state != WaitingForInput {
		return ErrNotWaiting
	}

	pending := e.pending
	e.pending = PendingInput{}
	entry := string(pending.Entry)
	e.output.WriteString(entry)
	e.output.WriteByte('\n')
	e.state = e.resume

	switch pending.Kind {

	case NumericInput:
		text := strings.TrimSpace(entry)
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return e.fail(newFault(BadInput, "Invalid numeric input %q.", entry))
		}
		if v > MaxCell {
			return e.fail(newFault(BadInput, "Numeric input %d above integer max.", v))
		}
		if fault := e.tape.SetCurrent(uint32(v)); fault != nil {
			return e.fail(fault)
		}

	case TextInput:
		for _, r := range pending.Entry {
			if fault := e.tape.SetCurrent(uint32(r)); fault != nil {
				return e.fail(fault)
			}
			if e.tape.ShiftRight() != nil {
				// tape boundary, the rest is dropped
				break
			}
		}

	}

	e.Logger.Debug("input committed",
		"kind", pending.Kind.String(),
		"entry", entry,
	)
	e.pc++
	return nil
}
