package editor

import (
	"crew/src/buffer"
	"crew/src/input"
)

// Action tells the caller of ProcessKey what to do next.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
)

// ProcessKey applies one key to the editor.
func (e *Editor) ProcessKey(k input.Key) Action {
	defer e.view.Reconcile(&e.cursor, e.buf)

	if e.prompt != nil {
		e.quit.Reset()
		e.promptKey(k)
		return ActionNone
	}

	if k.IsControl('q') {
		if e.quit.Press(e.buf.IsDirty()) == QuitConfirmed {
			e.log.Printf("quit")
			return ActionQuit
		}
		e.SetStatus("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quit.Remaining()+1)
		return ActionNone
	}
	e.quit.Reset()

	switch k.Kind {
	case input.KindCharacter:
		if k.Byte == '\t' || (k.Byte >= 0x20 && k.Byte < 0x7f) {
			e.insertChar(k.Byte)
		}
	case input.KindEnter:
		e.insertNewline()
	case input.KindControl:
		switch k.Byte {
		case 's':
			e.save()
		case 'h':
			e.deleteChar()
		}
	case input.KindBackspace:
		e.deleteChar()
	case input.KindDelete:
		e.moveCursor(input.KindArrowRight)
		e.deleteChar()
	case input.KindArrowUp, input.KindArrowDown, input.KindArrowLeft, input.KindArrowRight:
		e.moveCursor(k.Kind)
	case input.KindPageUp, input.KindPageDown:
		e.page(k.Kind)
	case input.KindHome:
		e.cursor.Col = 0
	case input.KindEnd:
		if row := e.buf.Row(e.cursor.Row); row != nil {
			e.cursor.Col = row.Len()
		}
	}
	return ActionNone
}

func (e *Editor) insertChar(c byte) {
	if e.cursor.Row == e.buf.Len() {
		e.buf.InsertRow(e.buf.Len(), nil)
	}
	e.buf.InsertChar(e.cursor.Position(), c)
	e.cursor.Col++
}

func (e *Editor) insertNewline() {
	if e.cursor.Col == 0 {
		e.buf.InsertRow(e.cursor.Row, nil)
		e.buf.Touch()
	} else {
		e.buf.SplitRow(e.cursor.Position())
	}
	e.cursor.Row++
	e.cursor.Col = 0
}

// deleteChar removes the byte left of the cursor, joining the row onto the
// previous one at column zero.
func (e *Editor) deleteChar() {
	if e.cursor.Row == e.buf.Len() {
		return
	}
	if e.cursor.Row == 0 && e.cursor.Col == 0 {
		return
	}
	if e.cursor.Col > 0 {
		e.buf.DeleteChar(buffer.Position{Row: e.cursor.Row, Col: e.cursor.Col - 1})
		e.cursor.Col--
		return
	}
	col := e.buf.MergeIntoPrevious(e.cursor.Row)
	e.cursor.Row--
	e.cursor.Col = col
}

func (e *Editor) moveCursor(kind input.Kind) {
	row := e.buf.Row(e.cursor.Row)
	switch kind {
	case input.KindArrowLeft:
		if e.cursor.Col != 0 {
			e.cursor.Col--
		} else if e.cursor.Row > 0 {
			e.cursor.Row--
			e.cursor.Col = e.buf.Row(e.cursor.Row).Len()
		}
	case input.KindArrowRight:
		if row != nil && e.cursor.Col < row.Len() {
			e.cursor.Col++
		} else if row != nil && e.cursor.Col == row.Len() {
			e.cursor.Row++
			e.cursor.Col = 0
		}
	case input.KindArrowUp:
		if e.cursor.Row != 0 {
			e.cursor.Row--
		}
	case input.KindArrowDown:
		if e.cursor.Row < e.buf.Len() {
			e.cursor.Row++
		}
	}

	// Snap to the end of a shorter row.
	length := 0
	if row := e.buf.Row(e.cursor.Row); row != nil {
		length = row.Len()
	}
	if e.cursor.Col > length {
		e.cursor.Col = length
	}
}

// page moves the cursor to the top or bottom edge of the screen, then a
// further screenful in the same direction.
func (e *Editor) page(kind input.Kind) {
	dir := input.KindArrowUp
	if kind == input.KindPageUp {
		e.cursor.Row = e.view.RowOffset
	} else {
		dir = input.KindArrowDown
		e.cursor.Row = e.view.RowOffset + e.view.ScreenRows - 1
		if e.cursor.Row > e.buf.Len() {
			e.cursor.Row = e.buf.Len()
		}
	}
	for i := 0; i < e.view.ScreenRows; i++ {
		e.moveCursor(dir)
	}
}
