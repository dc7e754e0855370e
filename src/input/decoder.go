package input

import "time"

// DefaultTimeout is how long the decoder waits for each byte, the same
// tenth of a second a VTIME=1 raw terminal would wait.
const DefaultTimeout = 100 * time.Millisecond

const (
	esc       = 0x1b
	del       = 0x7f
	tab       = '\t'
	enter     = '\r'
	ctrlLimit = 0x1f
)

// Source yields single bytes with a bounded wait. ok is false with a nil
// error when no byte arrived within d.
type Source interface {
	ReadTimeout(d time.Duration) (b byte, ok bool, err error)
}

// Decoder reads one key per call from a Source. Escape sequences carry no
// terminator, so they are told apart from a bare Escape by whether the next
// byte arrives within the timeout.
type Decoder struct {
	src     Source
	timeout time.Duration
}

func NewDecoder(src Source, timeout time.Duration) *Decoder {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Decoder{src: src, timeout: timeout}
}

// ReadKey decodes the next key. ok is false when no byte arrived at all
// within the timeout. An error is returned only when the source fails before
// a key has started; once an escape sequence is underway any failure
// degrades to Escape. Bytes that follow an unrecognized sequence are
// dropped.
func (d *Decoder) ReadKey() (key Key, ok bool, err error) {
	c, ok, err := d.src.ReadTimeout(d.timeout)
	if err != nil || !ok {
		return Key{}, false, err
	}

	switch {
	case c == esc:
		return d.escape(), true, nil
	case c == del:
		return Backspace, true, nil
	case c == enter:
		return Enter, true, nil
	case c == tab:
		return Character(c), true, nil
	case c <= ctrlLimit:
		return Control(c ^ 0x60), true, nil
	}
	return Character(c), true, nil
}

func (d *Decoder) next() (byte, bool) {
	c, ok, err := d.src.ReadTimeout(d.timeout)
	if err != nil {
		return 0, false
	}
	return c, ok
}

func (d *Decoder) escape() Key {
	c, ok := d.next()
	if !ok {
		return Escape
	}
	switch c {
	case '[':
		return d.csi()
	case 'O':
		return d.ss3()
	}
	return Escape
}

func (d *Decoder) csi() Key {
	c, ok := d.next()
	if !ok {
		return Escape
	}
	switch c {
	case 'A':
		return ArrowUp
	case 'B':
		return ArrowDown
	case 'C':
		return ArrowRight
	case 'D':
		return ArrowLeft
	case 'H':
		return Home
	case 'F':
		return End
	}
	if c >= '1' && c <= '9' {
		return d.csiTilde(c)
	}
	return Escape
}

func (d *Decoder) csiTilde(digit byte) Key {
	c, ok := d.next()
	if !ok || c != '~' {
		return Escape
	}
	switch digit {
	case '1', '7':
		return Home
	case '3':
		return Delete
	case '4', '8':
		return End
	case '5':
		return PageUp
	case '6':
		return PageDown
	}
	return Escape
}

func (d *Decoder) ss3() Key {
	c, ok := d.next()
	if !ok {
		return Escape
	}
	switch c {
	case 'H':
		return Home
	case 'F':
		return End
	}
	return Escape
}
