package timing

import (
	"fmt"
	"log"

	"github.com/decker502/whirl/pkg/geom"
)

// ClockOptions configures a progress clock.
type ClockOptions struct {
	// CycleDuration is the length of one full animation loop in
	// milliseconds. Must be positive.
	CycleDuration float64

	// FPS is the target frame rate. Throttling is best-effort: frames
	// arriving faster than 1000/FPS ms apart are skipped, not queued.
	// Must be positive.
	FPS float64

	// Rest is the fraction of each cycle spent static at the start,
	// in [0, 1). Consumed by the easing functions.
	Rest float64

	// Iterations caps how many full cycles run before the clock pauses
	// itself. 0 means unbounded.
	Iterations int

	// MutationInterval is the fraction of a cycle between invocations
	// of the mutation hook. 0 means never.
	MutationInterval float64
}

func (o ClockOptions) validate() error {
	if o.CycleDuration <= 0 {
		return fmt.Errorf("clock: cycle duration must be positive, got %v", o.CycleDuration)
	}
	if o.FPS <= 0 {
		return fmt.Errorf("clock: fps must be positive, got %v", o.FPS)
	}
	if o.Rest < 0 || o.Rest >= 1 {
		return fmt.Errorf("clock: rest must be in [0, 1), got %v", o.Rest)
	}
	if o.Iterations < 0 {
		return fmt.Errorf("clock: iterations must not be negative, got %d", o.Iterations)
	}
	if o.MutationInterval < 0 {
		return fmt.Errorf("clock: mutation interval must not be negative, got %v", o.MutationInterval)
	}
	return nil
}

// Clock maps monotonic wall-clock time onto normalized cycle progress
// in [0, 1). Progress is recomputed from absolute time on every tick,
// never accumulated, so dropped frames cannot drift the cycle. The
// clock re-arms itself with its Scheduler while playing; Pause simply
// stops re-arming.
//
// A Clock starts paused. Call Play to begin ticking.
type Clock struct {
	opts ClockOptions

	currProgress  float64
	lastProgress  float64
	currIteration int

	paused         bool
	startTimestamp float64
	lastDraw       float64
	lastMutation   float64
	pauseTimestamp float64
	pausedAccum    float64

	scheduler Scheduler
	onDraw    func()
	onMutate  func()
}

// NewClock creates a paused clock bound to the given scheduler.
func NewClock(scheduler Scheduler, opts ClockOptions) (*Clock, error) {
	if scheduler == nil {
		return nil, fmt.Errorf("clock: scheduler must not be nil")
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	now := scheduler.Now()
	return &Clock{
		opts:           opts,
		paused:         true,
		startTimestamp: now,
		lastDraw:       now,
		lastMutation:   now,
		pauseTimestamp: now,
		scheduler:      scheduler,
	}, nil
}

// SetDrawFunc installs the per-frame draw callback, invoked after each
// progress update and after every Seek.
func (c *Clock) SetDrawFunc(fn func()) { c.onDraw = fn }

// SetMutateFunc installs the mutation hook, invoked synchronously from
// Tick whenever MutationInterval elapses.
func (c *Clock) SetMutateFunc(fn func()) { c.onMutate = fn }

// Progress returns the current cycle progress in [0, 1].
func (c *Clock) Progress() float64 { return c.currProgress }

// LastProgress returns the progress of the previous frame.
func (c *Clock) LastProgress() float64 { return c.lastProgress }

// Iteration returns how many full cycles have completed.
func (c *Clock) Iteration() int { return c.currIteration }

// Rest returns the configured rest fraction.
func (c *Clock) Rest() float64 { return c.opts.Rest }

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool { return c.paused }

// FrameCount returns the number of frames in one full cycle.
func (c *Clock) FrameCount() float64 { return c.opts.CycleDuration * c.opts.FPS / 1000 }

// Reconfigure replaces the clock's options after validation. Progress,
// iteration count and pause state are preserved.
func (c *Clock) Reconfigure(opts ClockOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}
	c.opts = opts
	return nil
}

// Play resumes (or starts) the clock. Time spent paused is accumulated
// so that the absolute-time progress computation does not jump.
func (c *Clock) Play() {
	if !c.paused {
		return
	}
	now := c.scheduler.Now()
	pausedFor := now - c.pauseTimestamp
	c.pausedAccum += pausedFor
	// The mutation schedule pauses with the clock; shifting its anchor
	// keeps the remaining wait from being consumed by the pause.
	c.lastMutation += pausedFor
	c.paused = false
	c.lastDraw = now
	c.arm()
}

// Pause stops the clock. Idempotent: pausing a paused clock records
// nothing.
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseTimestamp = c.scheduler.Now()
}

// Step advances by exactly one frame at the configured fps. Equivalent
// to Seek(1).
func (c *Clock) Step() {
	c.Seek(1)
}

// Seek moves the clock by the given number of frames (negative values
// rewind) and triggers a redraw. Progress wraps around the [0, 1)
// boundary; seeking a full cycle forward is a no-op positionally.
// Seek never touches the iteration counter or the mutation schedule;
// only time-driven ticks do. It also does not rebase the wall-clock
// mapping, so it is meant for scrubbing a paused clock.
func (c *Clock) Seek(frames float64) {
	progressPerFrame := (1000 / c.opts.FPS) / c.opts.CycleDuration
	c.lastProgress = c.currProgress
	c.currProgress = geom.Modulo(c.currProgress+frames*progressPerFrame, 1)
	c.draw()
}

// Tick advances the clock to the given timestamp. It is invoked by the
// scheduler once per host frame while playing.
func (c *Clock) Tick(now float64) {
	if c.paused {
		return
	}
	defer c.arm()

	if now-c.lastDraw < 1000/c.opts.FPS {
		// Too early for the target fps; skip this frame.
		return
	}

	if c.opts.MutationInterval > 0 && now-c.lastMutation >= c.opts.MutationInterval*c.opts.CycleDuration {
		c.lastMutation = now
		if c.onMutate != nil {
			c.onMutate()
		}
	}

	c.lastDraw = now
	c.lastProgress = c.currProgress
	elapsed := now - c.pausedAccum - c.startTimestamp
	c.currProgress = geom.Modulo(elapsed, c.opts.CycleDuration) / c.opts.CycleDuration

	if c.currProgress < c.lastProgress {
		c.currIteration++
		if c.opts.Iterations > 0 && c.currIteration >= c.opts.Iterations {
			log.Printf("[Clock] iteration cap %d reached, pausing", c.opts.Iterations)
			c.Pause()
		}
	}

	c.draw()
}

func (c *Clock) draw() {
	if c.onDraw != nil {
		c.onDraw()
	}
}

func (c *Clock) arm() {
	if !c.paused {
		c.scheduler.RequestFrame(c.Tick)
	}
}
