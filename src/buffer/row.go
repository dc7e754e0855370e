package buffer

// TabStop is the render width a tab advances to a multiple of.
const TabStop = 8

// Row is one line of the document.
type Row struct {
	id       uint64
	content  []byte // Row content, no trailing newline.
	rendered []byte // Content with tabs expanded for the screen.
}

// ID returns the stable handle the owning buffer assigned to the row.
func (r *Row) ID() uint64 {
	return r.id
}

// Content returns the logical bytes of the row. Callers must not modify it.
func (r *Row) Content() []byte {
	return r.content
}

// Rendered returns the tab-expanded bytes of the row.
func (r *Row) Rendered() []byte {
	return r.rendered
}

// Len returns the logical length of the row in bytes.
func (r *Row) Len() int {
	return len(r.content)
}

// SetContent replaces the row content and recomputes the rendering.
func (r *Row) SetContent(b []byte) {
	r.content = append(r.content[:0:0], b...)
	r.update()
}

func (r *Row) update() {
	tabs := 0
	for _, c := range r.content {
		if c == '\t' {
			tabs++
		}
	}
	render := make([]byte, 0, len(r.content)+tabs*(TabStop-1))
	for _, c := range r.content {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%TabStop != 0 {
				render = append(render, ' ')
			}
			continue
		}
		render = append(render, c)
	}
	r.rendered = render
}
