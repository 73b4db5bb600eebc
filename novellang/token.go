package novellang

type Token uint8

const (
	Increment Token = iota
	Decrement
	ShiftLeft
	ShiftRight
	ShiftToValue
	ResetPointer
	Push
	Pop
	InputNumeric
	InputText
	OutputNumeric
	OutputText
	JumpIfZero
	JumpIfZeroMarker
	JumpBack
	JumpBackMarker
	EndOfProgram
)

var tokenSpellings = [...]string{
	Increment:        "+",
	Decrement:        "-",
	ShiftLeft:        "<",
	ShiftRight:       ">",
	ShiftToValue:     "^",
	ResetPointer:     "_",
	Push:             "#",
	Pop:              "$",
	InputNumeric:     "?0",
	InputText:        "?a",
	OutputNumeric:    "&0",
	OutputText:       "&a",
	JumpIfZero:       "{",
	JumpIfZeroMarker: "}",
	JumpBack:         ":",
	JumpBackMarker:   "=",
	EndOfProgram:     "EOP",
}

// String returns the source spelling of the token.
func (t Token) String() string {
	if int(t) < len(tokenSpellings) {
		return tokenSpellings[t]
	}
	return "INVALID"
}

// IsInput reports whether executing the token suspends the engine for console input.
func (t Token) IsInput() bool {
	return t == InputNumeric || t == InputText
}

var singles = map[rune]Token{
	'+': Increment,
	'-': Decrement,
	'<': ShiftLeft,
	'>': ShiftRight,
	'^': ShiftToValue,
	'_': ResetPointer,
	'#': Push,
	'$': Pop,
	'{': JumpIfZero,
	'}': JumpIfZeroMarker,
	':': JumpBack,
	'=': JumpBackMarker,
}

// second character of ?x and &x
var pairs = map[rune]map[rune]Token{
	'?': {
		'0': InputNumeric,
		'a': InputText,
	},
	'&': {
		'0': OutputNumeric,
		'a': OutputText,
	},
}
