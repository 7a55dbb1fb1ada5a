package shapes

import (
	"fmt"
	"log"

	"github.com/decker502/whirl/pkg/render"
	"github.com/decker502/whirl/pkg/timing"
	"github.com/decker502/whirl/pkg/utils"
)

// Animation ties one variant to one rendering context and one progress
// clock. It is the unit of playback control: many animations may run
// concurrently as long as each owns its context exclusively.
type Animation struct {
	id      string
	ctx     render.Context
	clock   *timing.Clock
	variant Variant
	err     error
}

// AnimationOption customizes animation construction.
type AnimationOption func(*animationOptions)

type animationOptions struct {
	ids utils.IDGenerator
}

// WithIDGenerator injects the ID source. The default is the
// crypto/rand-backed generator; pass utils.NewPseudoIDGenerator
// explicitly where that is acceptable.
func WithIDGenerator(g utils.IDGenerator) AnimationOption {
	return func(o *animationOptions) { o.ids = g }
}

// NewAnimation builds an animation from its three collaborators. A nil
// context, scheduler or variant is a construction error, as is an
// invalid clock configuration reported by the variant.
func NewAnimation(ctx render.Context, scheduler timing.Scheduler, variant Variant, opts ...AnimationOption) (*Animation, error) {
	if ctx == nil {
		return nil, fmt.Errorf("animation: rendering context must not be nil")
	}
	if variant == nil {
		return nil, fmt.Errorf("animation: variant must not be nil")
	}
	o := animationOptions{ids: utils.NewSecureIDGenerator()}
	for _, opt := range opts {
		opt(&o)
	}

	clock, err := timing.NewClock(scheduler, variant.ClockOptions())
	if err != nil {
		return nil, err
	}

	a := &Animation{
		id:      o.ids.Next(),
		ctx:     ctx,
		clock:   clock,
		variant: variant,
	}
	clock.SetDrawFunc(a.drawFrame)
	clock.SetMutateFunc(variant.Mutate)
	return a, nil
}

// drawFrame renders one frame. A draw error pauses the animation and is
// surfaced through Err; the animation can be reconfigured and resumed.
func (a *Animation) drawFrame() {
	if a.err != nil {
		return
	}
	if err := a.variant.Draw(a.ctx, a.clock); err != nil {
		a.err = err
		log.Printf("[Animation %s] draw failed: %v", a.id, err)
		a.clock.Pause()
	}
}

// ID returns the animation's generated identifier.
func (a *Animation) ID() string { return a.id }

// Err returns the first draw error since the last reconfiguration, if
// any.
func (a *Animation) Err() error { return a.err }

// Clock exposes the underlying progress clock.
func (a *Animation) Clock() *timing.Clock { return a.clock }

// Play starts or resumes playback.
func (a *Animation) Play() { a.clock.Play() }

// Pause stops playback. Idempotent.
func (a *Animation) Pause() { a.clock.Pause() }

// Step advances one frame and redraws. Meant for a paused animation.
func (a *Animation) Step() { a.clock.Step() }

// Seek moves by the given number of frames and redraws.
func (a *Animation) Seek(frames float64) { a.clock.Seek(frames) }

// Reconfigure applies a variant reconfiguration and resyncs the clock
// with the variant's timing options. A previously recorded draw error
// is cleared so playback can resume.
func (a *Animation) Reconfigure(apply func() error) error {
	if err := apply(); err != nil {
		return err
	}
	if err := a.clock.Reconfigure(a.variant.ClockOptions()); err != nil {
		return err
	}
	a.err = nil
	return nil
}
