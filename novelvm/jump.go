package novelvm

import "github.com/reusee/novel/novellang"

// matchForward finds the '}' closing the '{' at PC and returns the index after it.
func (e *Engine) matchForward() (int, bool) {
	tokens := e.program.Tokens
	depth := 0
	for i := e.pc + 1; i < len(tokens); i++ {
		switch tokens[i] {
		case novellang.JumpIfZero:
			depth++
		case novellang.JumpIfZeroMarker:
			if depth == 0 {
				return i + 1, true
			}
			depth--
		}
	}
	return 0, false
}

// matchBackward finds the '=' opening the loop closed by the ':' at PC and returns the index after it.
func (e *Engine) matchBackward() (int, bool) {
	tokens := e.program.Tokens
	depth := 0
	for i := e.pc - 1; i >= 0; i-- {
		switch tokens[i] {
		case novellang.JumpBack:
			depth++
		case novellang.JumpBackMarker:
			if depth == 0 {
				return i + 1, true
			}
			depth--
		}
	}
	return 0, false
}
