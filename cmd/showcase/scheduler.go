package main

import (
	"time"

	"github.com/decker502/whirl/pkg/timing"
)

// frameScheduler adapts Ebitengine's update loop to timing.Scheduler.
// Callbacks requested by clocks are flushed once per Update call with
// a wall-clock millisecond timestamp; Ebitengine's own TPS throttling
// paces the loop, the clocks throttle themselves below that.
type frameScheduler struct {
	start   time.Time
	pending []func(now float64)
}

func newFrameScheduler() *frameScheduler {
	return &frameScheduler{start: time.Now()}
}

func (s *frameScheduler) Now() float64 {
	return float64(time.Since(s.start)) / float64(time.Millisecond)
}

func (s *frameScheduler) RequestFrame(fn func(now float64)) {
	s.pending = append(s.pending, fn)
}

// flush runs the callbacks pending at the start of this frame.
// Callbacks queued while flushing (clocks re-arm themselves) wait for
// the next frame, otherwise an active clock would spin forever here.
func (s *frameScheduler) flush() {
	if len(s.pending) == 0 {
		return
	}
	fired := s.pending
	s.pending = nil
	now := s.Now()
	for _, fn := range fired {
		fn(now)
	}
}

var _ timing.Scheduler = (*frameScheduler)(nil)
