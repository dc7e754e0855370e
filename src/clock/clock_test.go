package clock

import (
	"testing"
	"time"
)

func TestReal_Now(t *testing.T) {
	clk := Real{}
	before := time.Now()
	now := clk.Now()
	if now.Before(before) || now.After(time.Now()) {
		t.Errorf("Real.Now returned unexpected time: %v", now)
	}
}

func TestMock_AdvanceAndSet(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clk := NewMock(start)
	if !clk.Now().Equal(start) {
		t.Fatalf("Now = %v, want %v", clk.Now(), start)
	}

	clk.Advance(5 * time.Second)
	if got := clk.Now().Sub(start); got != 5*time.Second {
		t.Errorf("after Advance: elapsed %v, want 5s", got)
	}

	later := start.Add(time.Hour)
	clk.Set(later)
	if !clk.Now().Equal(later) {
		t.Errorf("after Set: Now = %v, want %v", clk.Now(), later)
	}
}

func TestMock_ImplementsClock(t *testing.T) {
	var _ Clock = NewMock(time.Time{})
	var _ Clock = Real{}
}
