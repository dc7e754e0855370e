package editor

type QuitState int

const (
	QuitIdle QuitState = iota
	QuitArmed
	QuitConfirmed
)

func (s QuitState) String() string {
	switch s {
	case QuitIdle:
		return "Idle"
	case QuitArmed:
		return "Armed"
	case QuitConfirmed:
		return "Confirmed"
	}
	return "Unknown"
}

// QuitConfirm counts the quit presses a modified document needs before the
// editor exits. A clean document quits on the first press.
type QuitConfirm struct {
	threshold int
	remaining int
	state     QuitState
}

func NewQuitConfirm(threshold int) QuitConfirm {
	if threshold < 0 {
		threshold = 0
	}
	return QuitConfirm{threshold: threshold, remaining: threshold}
}

// Press records one quit request and returns the resulting state.
func (q *QuitConfirm) Press(dirty bool) QuitState {
	if dirty && q.remaining > 0 {
		q.remaining--
		q.state = QuitArmed
		return q.state
	}
	q.state = QuitConfirmed
	return q.state
}

// Reset disarms the confirmation after any other key.
func (q *QuitConfirm) Reset() {
	q.remaining = q.threshold
	q.state = QuitIdle
}

func (q *QuitConfirm) State() QuitState {
	return q.state
}

// Remaining is the number of warnings left before a press confirms.
func (q *QuitConfirm) Remaining() int {
	return q.remaining
}
