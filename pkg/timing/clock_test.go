package timing

import (
	"math"
	"testing"
)

// cyclicDiff measures distance between two progress values on the unit
// circle, so a value just below 1 counts as close to 0.
func cyclicDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 1-d)
}

func newTestClock(t *testing.T, opts ClockOptions) (*Clock, *ManualScheduler) {
	t.Helper()
	s := NewManualScheduler()
	c, err := NewClock(s, opts)
	if err != nil {
		t.Fatalf("NewClock: %v", err)
	}
	return c, s
}

func TestClockOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts ClockOptions
	}{
		{"zero cycle duration", ClockOptions{CycleDuration: 0, FPS: 60}},
		{"negative cycle duration", ClockOptions{CycleDuration: -1, FPS: 60}},
		{"zero fps", ClockOptions{CycleDuration: 1000, FPS: 0}},
		{"rest at one", ClockOptions{CycleDuration: 1000, FPS: 60, Rest: 1}},
		{"negative rest", ClockOptions{CycleDuration: 1000, FPS: 60, Rest: -0.1}},
		{"negative iterations", ClockOptions{CycleDuration: 1000, FPS: 60, Iterations: -1}},
		{"negative mutation interval", ClockOptions{CycleDuration: 1000, FPS: 60, MutationInterval: -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewClock(NewManualScheduler(), tt.opts); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestNewClockNilScheduler(t *testing.T) {
	if _, err := NewClock(nil, ClockOptions{CycleDuration: 1000, FPS: 60}); err == nil {
		t.Error("expected error for nil scheduler")
	}
}

func TestClockStartsPaused(t *testing.T) {
	c, s := newTestClock(t, ClockOptions{CycleDuration: 1000, FPS: 60})
	if !c.Paused() {
		t.Error("new clock should be paused")
	}
	if s.Pending() != 0 {
		t.Errorf("paused clock requested %d frames", s.Pending())
	}
}

func TestClockProgressAdvances(t *testing.T) {
	c, s := newTestClock(t, ClockOptions{CycleDuration: 1000, FPS: 100})
	c.Play()

	last := c.Progress()
	for i := 0; i < 50; i++ {
		s.Advance(10)
		got := c.Progress()
		want := float64(i+1) / 100
		if math.Abs(got-want) > eps {
			t.Fatalf("frame %d: progress %v, want %v", i+1, got, want)
		}
		if got < last {
			t.Fatalf("frame %d: progress went backwards (%v -> %v)", i+1, last, got)
		}
		last = got
	}
}

func TestClockWrapIncrementsIterationOnce(t *testing.T) {
	c, s := newTestClock(t, ClockOptions{CycleDuration: 100, FPS: 100})
	c.Play()

	// One full cycle is 10 frames of 10 ms.
	for i := 0; i < 10; i++ {
		s.Advance(10)
	}
	if got := c.Iteration(); got != 1 {
		t.Errorf("iteration after one cycle = %d, want 1", got)
	}
	if cyclicDiff(c.Progress(), 0) > eps {
		t.Errorf("progress after wrap = %v, want 0", c.Progress())
	}

	for i := 0; i < 10; i++ {
		s.Advance(10)
	}
	if got := c.Iteration(); got != 2 {
		t.Errorf("iteration after two cycles = %d, want 2", got)
	}
}

func TestClockThrottlesFasterFrames(t *testing.T) {
	c, s := newTestClock(t, ClockOptions{CycleDuration: 1000, FPS: 100})
	draws := 0
	c.SetDrawFunc(func() { draws++ })
	c.Play()

	// Host frames arrive every 5 ms; at 100 fps only every other one
	// may draw.
	for i := 0; i < 20; i++ {
		s.Advance(5)
	}
	if draws != 10 {
		t.Errorf("draw count = %d, want 10", draws)
	}
}

func TestClockIterationCapPauses(t *testing.T) {
	c, s := newTestClock(t, ClockOptions{CycleDuration: 100, FPS: 100, Iterations: 2})
	c.Play()

	for i := 0; i < 30; i++ {
		s.Advance(10)
	}
	if !c.Paused() {
		t.Error("clock should pause at the iteration cap")
	}
	if got := c.Iteration(); got != 2 {
		t.Errorf("iteration = %d, want 2", got)
	}
	if s.Pending() != 0 {
		t.Errorf("capped clock still requesting frames: %d pending", s.Pending())
	}
}

func TestClockMutationHook(t *testing.T) {
	c, s := newTestClock(t, ClockOptions{CycleDuration: 100, FPS: 100, MutationInterval: 0.5})
	mutations := 0
	c.SetMutateFunc(func() { mutations++ })
	c.Play()

	// 0.5 cycles is 50 ms; over 100 ms the hook fires at 50 and 100.
	for i := 0; i < 10; i++ {
		s.Advance(10)
	}
	if mutations != 2 {
		t.Errorf("mutation count = %d, want 2", mutations)
	}
}

// A pause freezes the mutation schedule along with progress: resuming
// must not fire the hook for time that passed while paused.
func TestClockMutationScheduleSurvivesPause(t *testing.T) {
	c, s := newTestClock(t, ClockOptions{CycleDuration: 100, FPS: 100, MutationInterval: 0.5})
	mutations := 0
	c.SetMutateFunc(func() { mutations++ })
	c.Play()

	// 30 ms of the 50 ms interval elapse before the pause.
	for i := 0; i < 3; i++ {
		s.Advance(10)
	}
	c.Pause()
	s.Advance(500)
	c.Play()

	s.Advance(10)
	if mutations != 0 {
		t.Fatalf("mutation fired %d times right after resume, want 0", mutations)
	}
	s.Advance(10)
	if mutations != 1 {
		t.Errorf("mutation count = %d, want 1 once the interval completes", mutations)
	}
}

func TestClockPauseAndResume(t *testing.T) {
	c, s := newTestClock(t, ClockOptions{CycleDuration: 1000, FPS: 100})
	c.Play()

	s.Advance(10)
	s.Advance(10)
	if got := c.Progress(); math.Abs(got-0.02) > eps {
		t.Fatalf("progress before pause = %v, want 0.02", got)
	}

	c.Pause()
	// Time passing while paused must not move progress.
	s.Advance(500)
	if got := c.Progress(); math.Abs(got-0.02) > eps {
		t.Errorf("progress during pause = %v, want 0.02", got)
	}
	if s.Pending() != 0 {
		t.Errorf("paused clock re-armed itself: %d pending", s.Pending())
	}

	c.Play()
	s.Advance(10)
	if got := c.Progress(); math.Abs(got-0.03) > eps {
		t.Errorf("progress after resume = %v, want 0.03", got)
	}
}

// Scrubbing a paused clock: seeks wrap modulo the cycle, never clamp,
// and never touch the iteration counter.
func TestClockSeekWrapsModulo(t *testing.T) {
	c, _ := newTestClock(t, ClockOptions{CycleDuration: 1000, FPS: 100})

	steps := []struct {
		frames float64
		want   float64
	}{
		{9, 0.09},
		{100, 0.09}, // a whole cycle is positionally a no-op
		{-20, 0.89},
		{9, 0.98},
		{1, 0.99},
		{1, 0}, // wraps to the start of the loop
	}
	for i, st := range steps {
		c.Seek(st.frames)
		if got := c.Progress(); cyclicDiff(got, st.want) > 1e-6 {
			t.Fatalf("seek %d (%v frames): progress %v, want %v", i, st.frames, got, st.want)
		}
	}
	if got := c.Iteration(); got != 0 {
		t.Errorf("seeking changed iteration to %d", got)
	}
}

func TestClockSeekTriggersDraw(t *testing.T) {
	c, _ := newTestClock(t, ClockOptions{CycleDuration: 1000, FPS: 100})
	draws := 0
	c.SetDrawFunc(func() { draws++ })

	c.Seek(5)
	c.Step()
	c.Seek(-3)
	if draws != 3 {
		t.Errorf("draw count = %d, want 3", draws)
	}
	if got := c.Progress(); math.Abs(got-0.03) > eps {
		t.Errorf("progress = %v, want 0.03", got)
	}
}

func TestClockReconfigure(t *testing.T) {
	c, _ := newTestClock(t, ClockOptions{CycleDuration: 1000, FPS: 100})
	c.Seek(10)

	if err := c.Reconfigure(ClockOptions{CycleDuration: 500, FPS: 50}); err != nil {
		t.Fatalf("Reconfigure: %v", err)
	}
	if got := c.Progress(); math.Abs(got-0.1) > eps {
		t.Errorf("progress after reconfigure = %v, want 0.1", got)
	}
	if got := c.FrameCount(); got != 25 {
		t.Errorf("FrameCount = %v, want 25", got)
	}

	if err := c.Reconfigure(ClockOptions{CycleDuration: -1, FPS: 50}); err == nil {
		t.Error("expected validation error from Reconfigure")
	}
}
