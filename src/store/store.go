// Package store reads and writes documents on disk.
package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoFileName is returned when a save is attempted without a target.
var ErrNoFileName = errors.New("no file name")

// Files loads and saves documents as newline-delimited files.
type Files struct {
	watcher *Watcher
}

func NewFiles() *Files {
	return &Files{}
}

// Load returns the lines of the named file. Errors wrap the underlying
// *os.PathError, so callers can test for os.ErrNotExist.
func (f *Files) Load(name string) ([][]byte, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	lines, err := ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if f.watcher != nil {
		f.watcher.acknowledge()
	}
	return lines, nil
}

// Save writes data to the named file, creating it when needed and truncating
// it to exactly len(data) bytes.
func (f *Files) Save(name string, data []byte) error {
	if name == "" {
		return ErrNoFileName
	}
	if f.watcher != nil {
		f.watcher.mu.Lock()
		defer f.watcher.mu.Unlock()
	}
	if err := writeFile(name, data); err != nil {
		return err
	}
	if f.watcher != nil {
		f.watcher.acknowledgeLocked()
	}
	return nil
}

func writeFile(name string, data []byte) error {
	file, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	if err := file.Truncate(int64(len(data))); err != nil {
		file.Close()
		return fmt.Errorf("truncating file: %w", err)
	}
	if _, err := file.WriteAt(data, 0); err != nil {
		file.Close()
		return fmt.Errorf("writing file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}

// ReadLines splits r into lines. Every trailing '\r' and '\n' of a line is
// stripped; a final line without a newline is kept.
func ReadLines(r io.Reader) ([][]byte, error) {
	br := bufio.NewReader(r)
	var lines [][]byte
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, bytes.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
