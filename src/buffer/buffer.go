package buffer

// Position addresses a logical column within a row.
type Position struct {
	Row int
	Col int
}

// Buffer is the document: an ordered sequence of rows plus save state.
//
// Rows are held as stable handles, so a *Row obtained from Row keeps its
// identity while other rows are inserted or removed around it.
type Buffer struct {
	rows     []*Row
	dirty    int
	fileName string
	nextID   uint64
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Len returns the number of rows. A position whose Row equals Len is the
// virtual line just past the end of the document.
func (b *Buffer) Len() int {
	return len(b.rows)
}

// Row returns the row at index i, or nil when i is out of range.
func (b *Buffer) Row(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

// Dirty returns the number of modifications since the last save.
func (b *Buffer) Dirty() int {
	return b.dirty
}

func (b *Buffer) IsDirty() bool {
	return b.dirty > 0
}

// Touch records a modification that did not go through a content operation.
func (b *Buffer) Touch() {
	b.dirty++
}

// MarkClean resets the modification count, typically after a save.
func (b *Buffer) MarkClean() {
	b.dirty = 0
}

func (b *Buffer) FileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

// Load replaces the whole document with lines and clears the dirty count.
func (b *Buffer) Load(lines [][]byte) {
	b.rows = b.rows[:0]
	for _, line := range lines {
		b.InsertRow(len(b.rows), line)
	}
	b.dirty = 0
}

// InsertRow inserts a new row holding content at index at, clamped to
// [0, Len]. It does not count as a modification.
func (b *Buffer) InsertRow(at int, content []byte) *Row {
	at = clamp(at, 0, len(b.rows))
	b.nextID++
	row := &Row{id: b.nextID}
	row.SetContent(content)

	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = row
	return row
}

// DeleteRow removes the row at index at. Out of range indexes are ignored.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	copy(b.rows[at:], b.rows[at+1:])
	b.rows[len(b.rows)-1] = nil
	b.rows = b.rows[:len(b.rows)-1]
	b.dirty++
}

// InsertChar inserts c into the row at pos.Row. A column outside the row is
// clamped to the row end.
func (b *Buffer) InsertChar(pos Position, c byte) {
	row := b.Row(pos.Row)
	if row == nil {
		return
	}
	at := pos.Col
	if at < 0 || at > len(row.content) {
		at = len(row.content)
	}
	row.content = append(row.content, 0)
	copy(row.content[at+1:], row.content[at:])
	row.content[at] = c
	row.update()
	b.dirty++
}

// DeleteChar removes the byte at pos. Positions outside the row are ignored.
func (b *Buffer) DeleteChar(pos Position) {
	row := b.Row(pos.Row)
	if row == nil || pos.Col < 0 || pos.Col >= len(row.content) {
		return
	}
	row.content = append(row.content[:pos.Col], row.content[pos.Col+1:]...)
	row.update()
	b.dirty++
}

// SplitRow breaks the row at pos.Col: the tail moves to a new row inserted
// right after it.
func (b *Buffer) SplitRow(pos Position) {
	row := b.Row(pos.Row)
	if row == nil {
		return
	}
	at := clamp(pos.Col, 0, len(row.content))
	b.InsertRow(pos.Row+1, row.content[at:])
	row.content = row.content[:at]
	row.update()
	b.dirty++
}

// MergeIntoPrevious appends row at to the row before it and removes it.
// It returns the column in the previous row where the joined text begins,
// or -1 when there is no previous row to merge into.
func (b *Buffer) MergeIntoPrevious(at int) int {
	if at <= 0 || at >= len(b.rows) {
		return -1
	}
	prev, row := b.rows[at-1], b.rows[at]
	col := len(prev.content)
	prev.content = append(prev.content, row.content...)
	prev.update()
	b.dirty++
	b.DeleteRow(at)
	return col
}

// Serialize joins every row with a trailing newline, the on-disk form of
// the document. It returns the bytes and their length.
func (b *Buffer) Serialize() ([]byte, int) {
	total := 0
	for _, row := range b.rows {
		total += len(row.content) + 1
	}
	out := make([]byte, 0, total)
	for _, row := range b.rows {
		out = append(out, row.content...)
		out = append(out, '\n')
	}
	return out, len(out)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
