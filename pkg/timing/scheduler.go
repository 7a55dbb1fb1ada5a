package timing

// Scheduler is the external frame source the clock registers itself
// with. It hands out a monotonic millisecond timestamp and invokes
// requested callbacks once per host frame, in request order. The core
// never spawns goroutines; all callbacks run synchronously on the
// scheduler's frame.
type Scheduler interface {
	// RequestFrame queues fn to be invoked on the next frame with the
	// current timestamp. One request yields exactly one invocation; the
	// clock re-arms itself on every active tick.
	RequestFrame(fn func(now float64))

	// Now returns the current timestamp in milliseconds. It must be
	// non-negative and non-decreasing.
	Now() float64
}

// ManualScheduler is a Scheduler driven by explicit Advance calls.
// It backs headless operation and tests, where wall-clock time would
// make frame arithmetic non-deterministic.
type ManualScheduler struct {
	now     float64
	pending []func(now float64)
}

// NewManualScheduler returns a scheduler whose clock starts at 0 ms.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Now returns the current manual timestamp in milliseconds.
func (s *ManualScheduler) Now() float64 {
	return s.now
}

// RequestFrame queues fn for the next Advance call.
func (s *ManualScheduler) RequestFrame(fn func(now float64)) {
	s.pending = append(s.pending, fn)
}

// Advance moves the manual clock forward by ms milliseconds and fires
// the callbacks that were pending when it was called. Callbacks
// requested during the flush run on the next Advance.
func (s *ManualScheduler) Advance(ms float64) {
	s.now += ms
	fired := s.pending
	s.pending = nil
	for _, fn := range fired {
		fn(s.now)
	}
}

// Pending reports how many frame callbacks are waiting.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}
