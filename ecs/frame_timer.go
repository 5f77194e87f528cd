package ecs

import "time"

// FrameTimer measures wall time between successive calls to Tick.
type FrameTimer struct {
	now      func() time.Time
	last     time.Time
	fallback float64
}

// NewFrameTimer creates a timer whose first Tick returns fallback seconds.
func NewFrameTimer(fallback float64) *FrameTimer {
	return &FrameTimer{now: time.Now, fallback: fallback}
}

// Tick returns the seconds since the previous Tick.
func (t *FrameTimer) Tick() float64 {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		return t.fallback
	}
	dt := now.Sub(t.last).Seconds()
	t.last = now
	return dt
}
