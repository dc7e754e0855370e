// Package render turns the editor state into the lines to draw on screen and
// encodes them as a VT100 frame.
package render

import (
	"fmt"
	"time"

	"crew/src/buffer"
	"crew/src/viewport"
)

// Filler marks screen lines past the end of the document.
const Filler = "~"

// Frame is everything the generator reads.
type Frame struct {
	Buffer         *buffer.Buffer
	Cursor         viewport.Cursor
	View           viewport.Viewport
	Message        string
	MessageTime    time.Time
	MessageTimeout time.Duration
	Now            time.Time
	Welcome        string
}

// Plan is one screen's worth of output: View.ScreenRows text lines, the
// status line, the message line and the cursor position relative to the
// text area.
type Plan struct {
	Lines     [][]byte
	Status    []byte
	Message   []byte
	CursorRow int
	CursorCol int
}

// Generate builds the plan for f. It performs no I/O.
func Generate(f Frame) Plan {
	var p Plan
	p.Lines = make([][]byte, f.View.ScreenRows)
	for y := range p.Lines {
		p.Lines[y] = textLine(f, y)
	}
	p.Status = statusLine(f)
	p.Message = messageLine(f)
	p.CursorRow, p.CursorCol = f.View.Screen(f.Cursor)
	return p
}

func textLine(f Frame, y int) []byte {
	cols := f.View.ScreenCols
	row := f.Buffer.Row(y + f.View.RowOffset)
	if row == nil {
		if f.Buffer.Len() == 0 && y == f.View.ScreenRows/3 {
			return welcomeLine(f.Welcome, cols)
		}
		return []byte(Filler)
	}

	r := row.Rendered()
	if f.View.ColOffset >= len(r) {
		return []byte{}
	}
	r = r[f.View.ColOffset:]
	if len(r) > cols {
		r = r[:cols]
	}
	return r
}

func welcomeLine(welcome string, cols int) []byte {
	if len(welcome) > cols {
		welcome = welcome[:cols]
	}
	var line []byte
	padding := (cols - len(welcome)) / 2
	if padding > 0 {
		line = append(line, Filler...)
		padding--
	}
	for ; padding > 0; padding-- {
		line = append(line, ' ')
	}
	return append(line, welcome...)
}

func statusLine(f Frame) []byte {
	cols := f.View.ScreenCols
	name := f.Buffer.FileName()
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if f.Buffer.IsDirty() {
		modified = "(modified)"
	}
	left := fmt.Sprintf("%.20s - %d lines %s", name, f.Buffer.Len(), modified)
	right := fmt.Sprintf("%d/%d", f.Cursor.Row+1, f.Buffer.Len())

	if len(left) > cols {
		left = left[:cols]
	}
	line := []byte(left)
	for len(line) < cols {
		if cols-len(line) == len(right) {
			line = append(line, right...)
			break
		}
		line = append(line, ' ')
	}
	return line
}

func messageLine(f Frame) []byte {
	msg := f.Message
	if msg == "" || f.Now.Sub(f.MessageTime) >= f.MessageTimeout {
		return []byte{}
	}
	if len(msg) > f.View.ScreenCols {
		msg = msg[:f.View.ScreenCols]
	}
	return []byte(msg)
}
