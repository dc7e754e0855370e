package editor

import (
	"crew/src/input"
)

// prompt is a one-line input read in the message bar while normal key
// handling is suspended.
type prompt struct {
	format   string
	canceled string
	input    []byte
	accept   func(string)
}

func (e *Editor) startPrompt(format, canceled string, accept func(string)) {
	e.prompt = &prompt{format: format, canceled: canceled, accept: accept}
	e.SetStatus(format, "")
}

// Prompting reports whether a prompt is collecting input.
func (e *Editor) Prompting() bool {
	return e.prompt != nil
}

func (e *Editor) promptKey(k input.Key) {
	p := e.prompt
	switch {
	case k.Kind == input.KindBackspace || k.Kind == input.KindDelete || k.IsControl('h'):
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	case k.Kind == input.KindEscape:
		e.prompt = nil
		e.SetStatus("%s", p.canceled)
		return
	case k.Kind == input.KindEnter:
		if len(p.input) == 0 {
			break
		}
		e.prompt = nil
		e.SetStatus("")
		p.accept(string(p.input))
		return
	case k.Kind == input.KindCharacter && k.Byte >= 0x20 && k.Byte < 0x7f:
		p.input = append(p.input, k.Byte)
	}
	e.SetStatus(p.format, p.input)
}
