package editor

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"crew/src/input"
	"crew/src/render"
)

// KeyReader yields decoded keys. ok is false when no key arrived in time.
type KeyReader interface {
	ReadKey() (key input.Key, ok bool, err error)
}

// Size is a terminal size in character cells.
type Size struct {
	Rows int
	Cols int
}

// Session is what Run needs from the outside world. Resize and FileChanged
// may be nil.
type Session struct {
	Keys        KeyReader
	Out         io.Writer
	Resize      <-chan Size
	FileChanged <-chan struct{}
}

// Run draws the screen and processes keys until the user quits or the key
// source reaches io.EOF. Notifications are applied between keys, so the
// editor state is only ever touched from the calling goroutine.
func (e *Editor) Run(s Session) error {
	var last []byte
	for {
		e.drain(&s)

		frame := render.Encode(e.Plan())
		if !bytes.Equal(frame, last) {
			if _, err := s.Out.Write(frame); err != nil {
				return fmt.Errorf("writing frame: %w", err)
			}
			last = frame
		}

		key, ok, err := s.Keys.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				e.log.Printf("input closed")
				return nil
			}
			return fmt.Errorf("reading key: %w", err)
		}
		if !ok {
			continue
		}
		if e.ProcessKey(key) == ActionQuit {
			if _, err := s.Out.Write(render.ClearScreen()); err != nil {
				return fmt.Errorf("clearing screen: %w", err)
			}
			return nil
		}
	}
}

func (e *Editor) drain(s *Session) {
	for {
		select {
		case size, ok := <-s.Resize:
			if !ok {
				s.Resize = nil
				continue
			}
			e.Resize(size.Rows, size.Cols)
		case _, ok := <-s.FileChanged:
			if !ok {
				s.FileChanged = nil
				continue
			}
			e.FileChanged()
		default:
			return
		}
	}
}
