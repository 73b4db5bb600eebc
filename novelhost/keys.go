package novelhost

import (
	"unicode"

	"github.com/reusee/novel/novelvm"
)

// Key is a raw key event from a host: a key name and the shift modifier.
// Names are single characters ("a", "7", "-", ".") or one of "<space>", "<enter>", "<backspace>".
type Key struct {
	K     string `json:"k"`
	Shift bool   `json:"shift"`
}

type KeyAction uint8

const (
	KeyIgnore KeyAction = iota
	KeyInsert
	KeySubmit
	KeyDelete
)

func (a KeyAction) String() string {
	switch a {
	case KeyInsert:
		return "insert"
	case KeySubmit:
		return "submit"
	case KeyDelete:
		return "delete"
	}
	return "ignore"
}

var (
	lowerKeys = map[string]rune{
		"-":       '-',
		".":       '.',
		"<space>": ' ',
		" ":       ' ',
	}
	upperKeys = map[string]rune{
		"-":       '_',
		"<space>": ' ',
		" ":       ' ',
	}
)

func init() {
	for r := 'a'; r <= 'z'; r++ {
		lowerKeys[string(r)] = r
		upperKeys[string(r)] = unicode.ToUpper(r)
	}
	for r := '0'; r <= '9'; r++ {
		lowerKeys[string(r)] = r
	}
}

// Translate maps a raw key to the character it inserts, or to an editing action.
func Translate(key Key) (rune, KeyAction) {
	switch key.K {
	case "<enter>", "<return>":
		return 0, KeySubmit
	case "<backspace>":
		return 0, KeyDelete
	}
	table := lowerKeys
	if key.Shift {
		table = upperKeys
	}
	if r, ok := table[key.K]; ok {
		return r, KeyInsert
	}
	return 0, KeyIgnore
}

// KeyOf is the inverse of Translate for typed characters.
func KeyOf(r rune) Key {
	switch {
	case r == '\n' || r == '\r':
		return Key{K: "<enter>"}
	case r == ' ':
		return Key{K: "<space>"}
	case r == '_':
		return Key{K: "-", Shift: true}
	case r >= 'A' && r <= 'Z':
		return Key{K: string(unicode.ToLower(r)), Shift: true}
	}
	return Key{K: string(r)}
}

// Feed routes a key to the engine. Keys are dropped unless the engine waits for input.
// It reports whether the key changed the pending entry or committed it.
func Feed(engine *novelvm.Engine, key Key) (bool, error) {
	if !engine.IsWaitingForInput() {
		return false, nil
	}
	r, action := Translate(key)
	switch action {
	case KeyInsert:
		return engine.AppendKey(r), nil
	case KeyDelete:
		return engine.Backspace(), nil
	case KeySubmit:
		return true, engine.Submit()
	}
	return false, nil
}
