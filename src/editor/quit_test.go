package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuitConfirmClean(t *testing.T) {
	q := NewQuitConfirm(2)
	assert.Equal(t, QuitIdle, q.State())
	assert.Equal(t, QuitConfirmed, q.Press(false))
}

func TestQuitConfirmDirty(t *testing.T) {
	q := NewQuitConfirm(2)
	assert.Equal(t, QuitArmed, q.Press(true))
	assert.Equal(t, 1, q.Remaining())
	assert.Equal(t, QuitArmed, q.Press(true))
	assert.Equal(t, 0, q.Remaining())
	assert.Equal(t, QuitConfirmed, q.Press(true))
}

func TestQuitConfirmReset(t *testing.T) {
	q := NewQuitConfirm(2)
	q.Press(true)
	q.Reset()
	assert.Equal(t, QuitIdle, q.State())
	assert.Equal(t, 2, q.Remaining())
}

func TestQuitConfirmZeroThreshold(t *testing.T) {
	q := NewQuitConfirm(0)
	assert.Equal(t, QuitConfirmed, q.Press(true))

	q = NewQuitConfirm(-3)
	assert.Equal(t, QuitConfirmed, q.Press(true))
}

func TestQuitStateString(t *testing.T) {
	assert.Equal(t, "Armed", QuitArmed.String())
	assert.Equal(t, "Unknown", QuitState(9).String())
}
