package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linesOf(t *testing.T, in string) []string {
	t.Helper()
	lines, err := ReadLines(strings.NewReader(in))
	require.NoError(t, err)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = string(l)
	}
	return out
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"no trailing newline", "line1\nline2\nline3", []string{"line1", "line2", "line3"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\n\nb", []string{"a", "", "", "b"}},
		{"repeated carriage returns", "a\r\r\n", []string{"a"}},
		{"single newline", "\n", []string{""}},
		{"tabs kept", "\tx\n", []string{"\tx"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, linesOf(t, tt.in))
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "doc.txt")
	f := NewFiles()

	require.NoError(t, f.Save(name, []byte("line1\nline2\nline3\n")))
	lines, err := f.Load(name)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "line2", string(lines[1]))
}

func TestSaveTruncates(t *testing.T) {
	name := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(name, []byte("a much longer original body\n"), 0o644))

	f := NewFiles()
	require.NoError(t, f.Save(name, []byte("short\n")))

	got, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "short\n", string(got))
}

func TestSaveWithoutName(t *testing.T) {
	err := NewFiles().Save("", []byte("x"))
	assert.ErrorIs(t, err, ErrNoFileName)
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing", "doc.txt")
	err := NewFiles().Save(name, []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewFiles().Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
