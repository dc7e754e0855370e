// Package viewport maps logical cursor positions to render columns and keeps
// the visible window of the document following the cursor.
package viewport

import "crew/src/buffer"

// Cursor is the edit position. Row may equal the buffer length, the virtual
// line past the end of the document.
type Cursor struct {
	Row       int
	Col       int
	RenderCol int // derived by Reconcile, used for horizontal scrolling
}

// Position returns the logical part of the cursor.
func (c Cursor) Position() buffer.Position {
	return buffer.Position{Row: c.Row, Col: c.Col}
}

// Viewport is the window of the document shown on screen.
type Viewport struct {
	RowOffset  int
	ColOffset  int
	ScreenRows int
	ScreenCols int
}

func New(rows, cols int) Viewport {
	var v Viewport
	v.Resize(rows, cols)
	return v
}

// Resize changes the text area dimensions. Both are floored at one.
func (v *Viewport) Resize(rows, cols int) {
	v.ScreenRows = max(rows, 1)
	v.ScreenCols = max(cols, 1)
}

// RenderCol returns the render column of logical column col in content.
func RenderCol(content []byte, col int) int {
	if col > len(content) {
		col = len(content)
	}
	rx := 0
	for _, c := range content[:max(col, 0)] {
		if c == '\t' {
			rx += buffer.TabStop - rx%buffer.TabStop
			continue
		}
		rx++
	}
	return rx
}

// Reconcile refreshes cur.RenderCol and scrolls the viewport the minimum
// needed for the cursor to be visible. Calling it again without changes is a
// no-op.
func (v *Viewport) Reconcile(cur *Cursor, buf *buffer.Buffer) {
	cur.RenderCol = 0
	if row := buf.Row(cur.Row); row != nil {
		cur.RenderCol = RenderCol(row.Content(), cur.Col)
	}

	if cur.Row < v.RowOffset {
		v.RowOffset = cur.Row
	}
	if cur.Row >= v.RowOffset+v.ScreenRows {
		v.RowOffset = cur.Row - v.ScreenRows + 1
	}
	if cur.RenderCol < v.ColOffset {
		v.ColOffset = cur.RenderCol
	}
	if cur.RenderCol >= v.ColOffset+v.ScreenCols {
		v.ColOffset = cur.RenderCol - v.ScreenCols + 1
	}
}

// Screen returns the cursor position relative to the top-left of the
// viewport.
func (v Viewport) Screen(cur Cursor) (row, col int) {
	return cur.Row - v.RowOffset, cur.RenderCol - v.ColOffset
}
