package novellang

type Program struct {
	Tokens    []Token
	Positions []Pos
}

func (p *Program) append(tok Token, pos Pos) {
	p.Tokens = append(p.Tokens, tok)
	p.Positions = append(p.Positions, pos)
}

func (p Program) Len() int {
	return len(p.Tokens)
}

// At returns the token at pc, or EndOfProgram past the end.
func (p Program) At(pc int) Token {
	if pc < 0 || pc >= len(p.Tokens) {
		return EndOfProgram
	}
	return p.Tokens[pc]
}

func (p Program) PosAt(pc int) (pos Pos) {
	if pc < 0 || pc >= len(p.Positions) {
		return
	}
	return p.Positions[pc]
}

// Complete reports whether the program ends with EndOfProgram, which only a successful lex produces.
func (p Program) Complete() bool {
	n := len(p.Tokens)
	return n > 0 && p.Tokens[n-1] == EndOfProgram
}

func (p Program) String() string {
	buf := make([]byte, 0, len(p.Tokens)*2)
	for i, tok := range p.Tokens {
		if tok == EndOfProgram {
			continue
		}
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, tok.String()...)
	}
	return string(buf)
}
