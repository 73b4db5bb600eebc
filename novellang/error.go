package novellang

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

var (
	ErrUnknownCharacter = errors.New("unable to recognize character as a token")
	ErrBadSuffix        = errors.New("expected '0' or 'a'")
)

// BuildError reports where lexing stopped.
type BuildError struct {
	Err  error
	Char rune
	Pos  Pos
}

func (b *BuildError) Message() string {
	switch {
	case errors.Is(b.Err, ErrBadSuffix):
		return fmt.Sprintf("%s after %c token", b.Err.Error(), b.Char)
	case b.Char != 0:
		return fmt.Sprintf("%s: %c", b.Err.Error(), b.Char)
	}
	return b.Err.Error()
}

func (b *BuildError) Error() string {
	if b.Pos.Source == nil || b.Pos.Source.Name == "" {
		return fmt.Sprintf("%s at %d:%d", b.Message(), b.Pos.Line, b.Pos.Column)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%d:%d\n", b.Message(), b.Pos.Source.Name, b.Pos.Line, b.Pos.Column)

	lines := b.Pos.Source.Lines
	idx := b.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		col := b.Pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
				continue
			}
			sb.WriteString(strings.Repeat(" ", runeWidth(r)))
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (b *BuildError) Unwrap() error {
	return b.Err
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
