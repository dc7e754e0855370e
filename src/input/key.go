// Package input turns the raw byte stream of a terminal in raw mode into
// keys.
package input

import "fmt"

// Kind identifies what a Key represents.
type Kind int

const (
	KindCharacter Kind = iota
	KindControl
	KindArrowUp
	KindArrowDown
	KindArrowLeft
	KindArrowRight
	KindPageUp
	KindPageDown
	KindHome
	KindEnd
	KindDelete
	KindBackspace
	KindEscape
	KindEnter
)

var kindNames = map[Kind]string{
	KindArrowUp:    "ArrowUp",
	KindArrowDown:  "ArrowDown",
	KindArrowLeft:  "ArrowLeft",
	KindArrowRight: "ArrowRight",
	KindPageUp:     "PageUp",
	KindPageDown:   "PageDown",
	KindHome:       "Home",
	KindEnd:        "End",
	KindDelete:     "Delete",
	KindBackspace:  "Backspace",
	KindEscape:     "Escape",
	KindEnter:      "Enter",
}

// Key is one decoded keypress. Byte holds the character for KindCharacter
// and the lowercase letter for KindControl; it is zero otherwise.
type Key struct {
	Kind Kind
	Byte byte
}

// Predefined keys for the kinds that carry no byte.
var (
	ArrowUp    = Key{Kind: KindArrowUp}
	ArrowDown  = Key{Kind: KindArrowDown}
	ArrowLeft  = Key{Kind: KindArrowLeft}
	ArrowRight = Key{Kind: KindArrowRight}
	PageUp     = Key{Kind: KindPageUp}
	PageDown   = Key{Kind: KindPageDown}
	Home       = Key{Kind: KindHome}
	End        = Key{Kind: KindEnd}
	Delete     = Key{Kind: KindDelete}
	Backspace  = Key{Kind: KindBackspace}
	Escape     = Key{Kind: KindEscape}
	Enter      = Key{Kind: KindEnter}
)

// Character returns the key for a plain byte.
func Character(b byte) Key {
	return Key{Kind: KindCharacter, Byte: b}
}

// Control returns the key for Ctrl plus letter, e.g. Control('q').
func Control(letter byte) Key {
	return Key{Kind: KindControl, Byte: letter}
}

// IsControl reports whether k is Ctrl plus letter.
func (k Key) IsControl(letter byte) bool {
	return k.Kind == KindControl && k.Byte == letter
}

func (k Key) String() string {
	switch k.Kind {
	case KindCharacter:
		return fmt.Sprintf("Character(%q)", k.Byte)
	case KindControl:
		return fmt.Sprintf("Ctrl-%c", k.Byte-'a'+'A')
	}
	if name, ok := kindNames[k.Kind]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k.Kind))
}
