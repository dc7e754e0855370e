package editor

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"crew/src/buffer"
	"crew/src/clock"
	"crew/src/logging"
	"crew/src/render"
	"crew/src/store"
	"crew/src/viewport"
)

const Version = "0.0.1"

// Lines of the terminal reserved below the text area: status and message.
const reservedRows = 2

// Store persists documents.
type Store interface {
	Load(name string) ([][]byte, error)
	Save(name string, data []byte) error
}

// Options configures a new Editor. Rows and Cols are the full terminal
// size. QuitTimes is used as given, so zero means a modified document quits
// without confirmation.
type Options struct {
	Rows           int
	Cols           int
	QuitTimes      int
	MessageTimeout time.Duration
	Store          Store
	Clock          clock.Clock
	Logger         *log.Logger
}

// Editor owns one document together with its cursor and viewport. All of
// its methods must be called from a single goroutine.
type Editor struct {
	buf    *buffer.Buffer
	cursor viewport.Cursor
	view   viewport.Viewport
	quit   QuitConfirm
	prompt *prompt

	message        string
	messageTime    time.Time
	messageTimeout time.Duration

	store Store
	clock clock.Clock
	log   *log.Logger
}

func New(opts Options) *Editor {
	e := &Editor{
		buf:            buffer.NewBuffer(),
		quit:           NewQuitConfirm(opts.QuitTimes),
		messageTimeout: opts.MessageTimeout,
		store:          opts.Store,
		clock:          opts.Clock,
		log:            opts.Logger,
	}
	if e.messageTimeout <= 0 {
		e.messageTimeout = 5 * time.Second
	}
	if e.store == nil {
		e.store = store.NewFiles()
	}
	if e.clock == nil {
		e.clock = clock.Real{}
	}
	if e.log == nil {
		e.log = logging.Discard()
	}
	e.Resize(opts.Rows, opts.Cols)
	return e
}

func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

func (e *Editor) Cursor() viewport.Cursor {
	return e.cursor
}

func (e *Editor) View() viewport.Viewport {
	return e.view
}

// Message returns the current status message, expired or not.
func (e *Editor) Message() string {
	return e.message
}

// SetStatus sets the message shown below the status bar.
func (e *Editor) SetStatus(format string, args ...any) {
	e.message = fmt.Sprintf(format, args...)
	e.messageTime = e.clock.Now()
}

// Resize adapts the viewport to a terminal of rows by cols.
func (e *Editor) Resize(rows, cols int) {
	e.view.Resize(rows-reservedRows, cols)
	e.view.Reconcile(&e.cursor, e.buf)
}

// Open loads the named file. A file that does not exist yet starts an empty
// document that will be saved under that name.
func (e *Editor) Open(name string) error {
	e.buf.SetFileName(name)
	lines, err := e.store.Load(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			e.log.Printf("%s does not exist, starting empty", name)
			return nil
		}
		return err
	}
	e.buf.Load(lines)
	e.cursor = viewport.Cursor{}
	e.view.RowOffset, e.view.ColOffset = 0, 0
	e.log.Printf("opened %s: %d lines", name, len(lines))
	return nil
}

// FileChanged reports that the file was modified by another program.
func (e *Editor) FileChanged() {
	e.SetStatus("File changed on disk")
	e.log.Printf("%s changed on disk", e.buf.FileName())
}

func (e *Editor) save() {
	if e.buf.FileName() == "" {
		e.startPrompt("Save as: %s (ESC to cancel)", "Save aborted", e.saveAs)
		return
	}
	e.writeFile()
}

func (e *Editor) saveAs(name string) {
	e.buf.SetFileName(name)
	e.writeFile()
}

func (e *Editor) writeFile() {
	name := e.buf.FileName()
	data, n := e.buf.Serialize()
	if err := e.store.Save(name, data); err != nil {
		e.SetStatus("Can't save! I/O error: %v", err)
		e.log.Printf("saving %s: %v", name, err)
		return
	}
	e.buf.MarkClean()
	e.SetStatus("%d bytes written to disk", n)
	e.log.Printf("saved %s: %d bytes", name, n)
}

// Plan brings the viewport up to date and returns what the screen should
// show.
func (e *Editor) Plan() render.Plan {
	e.view.Reconcile(&e.cursor, e.buf)
	now := e.clock.Now()
	f := render.Frame{
		Buffer:         e.buf,
		Cursor:         e.cursor,
		View:           e.view,
		Message:        e.message,
		MessageTime:    e.messageTime,
		MessageTimeout: e.messageTimeout,
		Now:            now,
		Welcome:        fmt.Sprintf("Crew editor -- version %s", Version),
	}
	if e.prompt != nil {
		f.MessageTime = now
	}
	return render.Generate(f)
}
