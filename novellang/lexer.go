package novellang

import (
	"bufio"
	"strings"
	"unicode"
)

type Lexer struct {
	source *Source
	reader *bufio.Reader

	currPos Pos
	prevPos Pos
}

func NewLexer(name string, content string) *Lexer {
	source := NewSource(name, content)
	return &Lexer{
		source: source,
		reader: bufio.NewReader(strings.NewReader(content)),
		currPos: Pos{
			Source: source,
			Line:   1,
			Column: 1,
		},
	}
}

func (l *Lexer) readRune() (rune, bool) {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		return 0, false
	}
	l.prevPos = l.currPos
	if r == '\n' {
		l.currPos.Line++
		l.currPos.Column = 1
	} else {
		l.currPos.Column++
	}
	return r, true
}

func (l *Lexer) unreadRune() {
	l.reader.UnreadRune()
	l.currPos = l.prevPos
}

func (l *Lexer) peekRune() (rune, bool) {
	r, ok := l.readRune()
	if ok {
		l.unreadRune()
	}
	return r, ok
}

// skip consumes whitespace and // comments.
func (l *Lexer) skip() error {
	for {
		r, ok := l.readRune()
		if !ok {
			return nil
		}
		if unicode.IsSpace(r) {
			continue
		}
		if r != '/' {
			l.unreadRune()
			return nil
		}
		pos := l.prevPos
		if next, ok := l.peekRune(); !ok || next != '/' {
			return &BuildError{
				Err:  ErrUnknownCharacter,
				Char: '/',
				Pos:  pos,
			}
		}
		for {
			r, ok := l.readRune()
			if !ok || r == '\n' {
				break
			}
		}
	}
}

// Next returns the next token and its position.
// At end of input it returns EndOfProgram; lexing is over after that or after an error.
func (l *Lexer) Next() (Token, Pos, error) {
	if err := l.skip(); err != nil {
		return 0, err.(*BuildError).Pos, err
	}
	startPos := l.currPos

	r, ok := l.readRune()
	if !ok {
		return EndOfProgram, startPos, nil
	}

	if tok, ok := singles[r]; ok {
		return tok, startPos, nil
	}

	if suffixes, ok := pairs[r]; ok {
		second, ok := l.readRune()
		if tok, found := suffixes[second]; ok && found {
			return tok, startPos, nil
		}
		return 0, startPos, &BuildError{
			Err:  ErrBadSuffix,
			Char: r,
			Pos:  startPos,
		}
	}

	return 0, startPos, &BuildError{
		Err:  ErrUnknownCharacter,
		Char: r,
		Pos:  startPos,
	}
}

// Lex tokenizes the whole source.
// On failure the tokens read so far are returned along with a *BuildError, and the program is not Complete.
func Lex(content string) (Program, error) {
	return NewLexer("", content).Lex()
}

func (l *Lexer) Lex() (Program, error) {
	var prog Program
	for {
		tok, pos, err := l.Next()
		if err != nil {
			return prog, err
		}
		prog.append(tok, pos)
		if tok == EndOfProgram {
			return prog, nil
		}
	}
}
