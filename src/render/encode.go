package render

import (
	"bytes"
	"fmt"
)

// VT100 sequences used to draw a frame.
const (
	hideCursor   = "\x1b[?25l"
	showCursor   = "\x1b[?25h"
	cursorHome   = "\x1b[H"
	clearLine    = "\x1b[K"
	clearScreen  = "\x1b[2J"
	reverseVideo = "\x1b[7m"
	resetStyle   = "\x1b[m"
	newline      = "\r\n"
)

// Encode writes p as a complete frame: every line is drawn over the previous
// one so the screen never has to be cleared between frames.
func Encode(p Plan) []byte {
	var b bytes.Buffer
	b.WriteString(hideCursor)
	b.WriteString(cursorHome)

	for _, line := range p.Lines {
		b.Write(line)
		b.WriteString(clearLine)
		b.WriteString(newline)
	}

	b.WriteString(reverseVideo)
	b.Write(p.Status)
	b.WriteString(resetStyle)
	b.WriteString(newline)

	b.WriteString(clearLine)
	b.Write(p.Message)

	fmt.Fprintf(&b, "\x1b[%d;%dH", p.CursorRow+1, p.CursorCol+1)
	b.WriteString(showCursor)
	return b.Bytes()
}

// ClearScreen returns the bytes that blank the terminal and home the cursor.
func ClearScreen() []byte {
	return []byte(clearScreen + cursorHome)
}
