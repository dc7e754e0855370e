package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is a tty switched to raw mode: input is delivered byte by byte
// without echo, and output is written verbatim.
type Terminal struct {
	in    *os.File
	out   *os.File
	state *term.State
}

// Open puts in into raw mode. Restore must be called before the process
// exits to give the user their shell back.
func Open(in, out *os.File) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("input is not a terminal")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enabling raw mode: %w", err)
	}
	return &Terminal{in: in, out: out, state: state}, nil
}

// Restore puts the terminal back into the mode it had before Open. It is
// safe to call more than once.
func (t *Terminal) Restore() error {
	if t.state == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.state)
	t.state = nil
	if err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}

// Write sends p to the terminal unchanged.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// ReadTimeout waits at most d for one input byte. ok is false with a nil
// error when nothing arrived in time.
func (t *Terminal) ReadTimeout(d time.Duration) (byte, bool, error) {
	fds := []unix.PollFd{{Fd: int32(t.in.Fd()), Events: unix.POLLIN}}
	deadline := time.Now().Add(d)
	for {
		wait := time.Until(deadline)
		if wait < 0 {
			wait = 0
		}
		n, err := unix.Poll(fds, int(wait.Milliseconds()))
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, false, fmt.Errorf("polling input: %w", err)
		}
		if n == 0 {
			return 0, false, nil
		}
		break
	}

	var buf [1]byte
	n, err := t.in.Read(buf[:])
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		return 0, false, io.EOF
	}
	return buf[0], true, nil
}

// Size returns the terminal dimensions. When the kernel cannot tell, the
// cursor is pushed to the bottom-right corner and its position queried.
func (t *Terminal) Size() (rows, cols int, err error) {
	rows, cols, err = t.WindowSize()
	if err == nil && cols > 0 {
		return rows, cols, nil
	}
	rows, cols, qerr := t.querySize()
	if qerr != nil {
		return 0, 0, fmt.Errorf("getting window size: %w", errors.Join(err, qerr))
	}
	return rows, cols, nil
}

// WindowSize asks the kernel only, so unlike Size it never reads input and
// may run alongside the key reader.
func (t *Terminal) WindowSize() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(t.out.Fd()))
	return rows, cols, err
}

func (t *Terminal) querySize() (rows, cols int, err error) {
	if _, err := t.out.Write([]byte("\x1b[999C\x1b[999B\x1b[6n")); err != nil {
		return 0, 0, fmt.Errorf("writing DSR: %w", err)
	}
	var resp []byte
	for len(resp) < 32 {
		c, ok, err := t.ReadTimeout(time.Second)
		if err != nil {
			return 0, 0, fmt.Errorf("reading DSR response: %w", err)
		}
		if !ok {
			return 0, 0, errors.New("no DSR response")
		}
		resp = append(resp, c)
		if c == 'R' {
			break
		}
	}
	return parseCursorReport(resp)
}

// parseCursorReport decodes a cursor position report of the form
// ESC [ rows ; cols R.
func parseCursorReport(resp []byte) (rows, cols int, err error) {
	if !bytes.HasPrefix(resp, []byte("\x1b[")) || !bytes.HasSuffix(resp, []byte("R")) {
		return 0, 0, fmt.Errorf("invalid DSR response %q", resp)
	}
	body := resp[2 : len(resp)-1]
	r, c, found := bytes.Cut(body, []byte(";"))
	if !found {
		return 0, 0, fmt.Errorf("invalid DSR response %q", resp)
	}
	rows, err1 := strconv.Atoi(string(r))
	cols, err2 := strconv.Atoi(string(c))
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("invalid DSR response %q", resp)
	}
	return rows, cols, nil
}
