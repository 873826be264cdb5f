package glide

import (
	"fmt"
	"time"
)

type introPhase uint8

const (
	introIdle introPhase = iota
	introWaiting
	introPlaying
	introDone
)

// Intro holds the scroll lock while the page's entrance plays. It waits for
// a readiness signal, plays its timeline (or holds for a fixed time), then
// unlocks exactly once. A timeout started with the intro force-completes it
// if the signal never fires, so the page can never stay locked.
type Intro struct {
	lock     *ScrollLock
	clock    *Clock
	ready    *Ready
	timeout  time.Duration
	hold     time.Duration
	timeline *Timeline

	phase     introPhase
	frame     FrameHandle
	deadline  TimerHandle
	holdTimer TimerHandle

	// OnComplete receives nil on a normal finish, or an error wrapping
	// ErrReadinessTimeout when the timeout forced completion.
	OnComplete func(err error)
}

// IntroOptions configures an Intro.
type IntroOptions struct {
	// Ready gates the intro; nil counts as already ready.
	Ready *Ready
	// Timeout bounds the whole intro.
	Timeout time.Duration
	// Hold is how long to stay locked after ready when there is no
	// Timeline.
	Hold time.Duration
	// Timeline, if set, is a wall-clock timeline the intro plays and
	// advances itself after ready; the intro completes when it finishes.
	Timeline *Timeline
}

// NewIntro creates an idle intro bound to lock and clock.
func NewIntro(lock *ScrollLock, clock *Clock, opts IntroOptions) *Intro {
	return &Intro{
		lock:     lock,
		clock:    clock,
		ready:    opts.Ready,
		timeout:  opts.Timeout,
		hold:     opts.Hold,
		timeline: opts.Timeline,
	}
}

// Start locks scrolling, arms the timeout and begins watching for
// readiness on t. Starting a started intro is a no-op.
func (in *Intro) Start(t *Ticker) {
	if in.phase != introIdle {
		return
	}
	in.phase = introWaiting
	in.lock.Lock()
	in.deadline = in.clock.After(in.timeout, func() {
		in.finish(fmt.Errorf("intro after %v: %w", in.timeout, ErrReadinessTimeout))
	})
	in.frame = t.Add(in.tick)
}

// Done reports whether the intro has completed.
func (in *Intro) Done() bool { return in.phase == introDone }

// Waiting reports whether the intro is still waiting for readiness.
func (in *Intro) Waiting() bool { return in.phase == introWaiting }

func (in *Intro) tick(dt float64) {
	switch in.phase {
	case introWaiting:
		if in.ready != nil && !in.ready.IsReady() {
			return
		}
		in.phase = introPlaying
		if in.timeline != nil {
			in.timeline.Play()
			return
		}
		in.holdTimer = in.clock.After(in.hold, func() { in.finish(nil) })
	case introPlaying:
		if in.timeline != nil {
			in.timeline.Update(dt)
			if in.timeline.Done {
				in.finish(nil)
			}
		}
	}
}

// Complete finishes the intro now, unlocking scroll.
func (in *Intro) Complete() {
	in.finish(nil)
}

// Cancel stops the intro's timers and frame callback without touching the
// lock. Used on unmount, where the owner unlocks unconditionally.
func (in *Intro) Cancel() {
	if in.phase == introDone {
		return
	}
	in.phase = introDone
	in.release()
}

func (in *Intro) release() {
	in.frame.Remove()
	in.deadline.Stop()
	in.holdTimer.Stop()
}

func (in *Intro) finish(err error) {
	if in.phase == introDone || in.phase == introIdle {
		return
	}
	in.phase = introDone
	in.release()
	in.lock.Unlock()
	if in.OnComplete != nil {
		in.OnComplete(err)
	}
}
