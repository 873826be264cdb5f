package glide

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// InputMode is a bitmask of raw input kinds a scroller accepts.
type InputMode uint8

const (
	InputWheel InputMode = 1 << iota // mouse wheel / trackpad
	InputTouch                       // touch drag

	InputAll = InputWheel | InputTouch
)

// ScrollConfig configures a SmoothScroller.
type ScrollConfig struct {
	// Duration is the time, in seconds, the virtual offset takes to reach
	// a new raw offset.
	Duration float64
	// Easing shapes the glide. Defaults to ExpoOut.
	Easing ease.TweenFunc
	// Inputs selects which raw inputs move the page.
	Inputs InputMode
	// WheelMultiplier and TouchMultiplier scale raw deltas per input kind.
	WheelMultiplier float64
	TouchMultiplier float64
}

// DefaultScrollConfig returns the stock smooth-scroll tuning.
func DefaultScrollConfig() ScrollConfig {
	return ScrollConfig{
		Duration:        1.2,
		Easing:          ExpoOut,
		Inputs:          InputWheel,
		WheelMultiplier: 1,
		TouchMultiplier: 2,
	}
}

// ExpoOut is the exponential ease-out used for smooth scrolling:
// min(1, 1.001 - 2^(-10t)). It reaches 1 slightly before t = 1 and never
// exceeds it, so the glide has inertia without overshoot.
func ExpoOut(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	x := float64(t) / float64(d)
	e := math.Min(1, 1.001-math.Pow(2, -10*x))
	return b + c*float32(e)
}

// Scroller turns raw input into a ScrollState once per frame.
type Scroller interface {
	// Advance moves the virtual offset one frame forward and notifies
	// subscribers.
	Advance(dt float64) ScrollState
	State() ScrollState
	// AddDelta feeds raw input. Ignored while paused or when mode is not
	// accepted.
	AddDelta(mode InputMode, dy float64)
	// SetLimit clamps the raw offset to [0, max].
	SetLimit(max float64)
	Limit() float64
	// ScrollTo moves to y over duration seconds. duration <= 0 jumps.
	ScrollTo(y, duration float64, fn ease.TweenFunc)
	Pause()
	Resume()
	Paused() bool
	Subscribe(fn func(ScrollState)) ScrollHandle
	Stop()
}

// ScrollHandle revokes a scroll subscription.
type ScrollHandle struct {
	h    handle
	subs *scrollSubscribers
}

// Remove unsubscribes. Safe to call more than once.
func (h ScrollHandle) Remove() {
	if h.subs == nil {
		return
	}
	h.subs.list.remove(h.h)
}

type scrollSubscribers struct {
	list arena[func(ScrollState)]
}

func (s *scrollSubscribers) subscribe(fn func(ScrollState)) ScrollHandle {
	return ScrollHandle{h: s.list.add(fn), subs: s}
}

func (s *scrollSubscribers) notify(st ScrollState) {
	s.list.each(func(_ handle, fn *func(ScrollState)) {
		(*fn)(st)
	})
}

// activeScroller is the one SmoothScroller allowed to drive the page.
var activeScroller *SmoothScroller

// SmoothScroller converts discrete raw input into an eased virtual scroll
// offset. Only one may be started at a time.
type SmoothScroller struct {
	cfg     ScrollConfig
	state   ScrollState
	limit   float64
	started bool
	paused  bool

	// glide from -> to over cfg.Duration
	from     float64
	to       float64
	elapsed  float64
	gliding  bool
	jumpTo   *gween.Tween
	jumpDest float64

	subs scrollSubscribers
}

// NewSmoothScroller creates a stopped scroller.
func NewSmoothScroller() *SmoothScroller {
	return &SmoothScroller{limit: math.Inf(1)}
}

// Start begins driving the page. It returns ErrAlreadyActive when any
// scroller, including this one, is already started.
func (s *SmoothScroller) Start(cfg ScrollConfig) error {
	if activeScroller != nil {
		return fmt.Errorf("start smooth scroller: %w", ErrAlreadyActive)
	}
	def := DefaultScrollConfig()
	if cfg.Duration <= 0 {
		cfg.Duration = def.Duration
	}
	if cfg.Easing == nil {
		cfg.Easing = def.Easing
	}
	if cfg.Inputs == 0 {
		cfg.Inputs = def.Inputs
	}
	if cfg.WheelMultiplier == 0 {
		cfg.WheelMultiplier = def.WheelMultiplier
	}
	if cfg.TouchMultiplier == 0 {
		cfg.TouchMultiplier = def.TouchMultiplier
	}
	s.cfg = cfg
	s.started = true
	s.paused = false
	activeScroller = s
	return nil
}

// Stop releases the active slot and every subscriber. Idempotent.
func (s *SmoothScroller) Stop() {
	if activeScroller == s {
		activeScroller = nil
	}
	s.started = false
	s.gliding = false
	s.jumpTo = nil
	s.subs.list.clear()
}

// Started reports whether Start succeeded and Stop has not been called.
func (s *SmoothScroller) Started() bool { return s.started }

// Pause freezes the virtual offset and drops incoming input. Accumulated
// state, including an in-flight glide, is kept for Resume.
func (s *SmoothScroller) Pause() { s.paused = true }

// Resume continues from where Pause left off.
func (s *SmoothScroller) Resume() { s.paused = false }

// Paused reports whether the scroller is paused.
func (s *SmoothScroller) Paused() bool { return s.paused }

// State returns the current scroll state.
func (s *SmoothScroller) State() ScrollState { return s.state }

// Subscribe registers fn to receive the state after every Advance.
func (s *SmoothScroller) Subscribe(fn func(ScrollState)) ScrollHandle {
	return s.subs.subscribe(fn)
}

// SetLimit clamps the raw offset to [0, max]. A negative max is treated as 0.
func (s *SmoothScroller) SetLimit(max float64) {
	s.limit = math.Max(0, max)
	s.state.Raw = clamp(s.state.Raw, 0, s.limit)
}

// Limit returns the maximum raw offset.
func (s *SmoothScroller) Limit() float64 { return s.limit }

// AddDelta applies raw input scaled by the configured multiplier.
// Input cancels a programmatic ScrollTo.
func (s *SmoothScroller) AddDelta(mode InputMode, dy float64) {
	if !s.started || s.paused || s.cfg.Inputs&mode == 0 {
		return
	}
	switch mode {
	case InputWheel:
		dy *= s.cfg.WheelMultiplier
	case InputTouch:
		dy *= s.cfg.TouchMultiplier
	}
	if s.jumpTo != nil {
		s.jumpTo = nil
		s.state.Raw = s.state.Virtual
	}
	s.state.Raw = clamp(s.state.Raw+dy, 0, s.limit)
}

// ScrollTo animates to y over duration seconds with fn (ExpoOut when nil).
// duration <= 0 moves both offsets immediately.
func (s *SmoothScroller) ScrollTo(y, duration float64, fn ease.TweenFunc) {
	y = clamp(y, 0, s.limit)
	if duration <= 0 {
		s.jumpTo = nil
		s.gliding = false
		s.state.Raw = y
		s.state.Virtual = y
		return
	}
	if fn == nil {
		fn = ExpoOut
	}
	s.gliding = false
	s.jumpDest = y
	s.jumpTo = gween.New(float32(s.state.Virtual), float32(y), float32(duration), fn)
}

// Advance moves the virtual offset one frame toward the raw offset.
//
// Each time the raw offset changes, a new glide starts from the current
// virtual offset and runs for cfg.Duration along cfg.Easing. Per frame
// this is equivalent to virtual += (raw - virtual) * factor, with the
// factor derived from the easing curve at the glide's elapsed time.
func (s *SmoothScroller) Advance(dt float64) ScrollState {
	if !s.started || s.paused {
		s.state.Velocity = 0
		return s.state
	}
	prev := s.state.Virtual

	if s.jumpTo != nil {
		v, done := s.jumpTo.Update(float32(dt))
		s.state.Virtual = float64(v)
		if done {
			s.state.Virtual = s.jumpDest
			s.jumpTo = nil
		}
		s.state.Raw = s.state.Virtual
	} else {
		s.glide(dt)
	}

	s.state.Velocity = s.state.Virtual - prev
	s.subs.notify(s.state)
	return s.state
}

func (s *SmoothScroller) glide(dt float64) {
	if s.state.Raw != s.to || (!s.gliding && s.state.Virtual != s.state.Raw) {
		s.from = s.state.Virtual
		s.to = s.state.Raw
		s.elapsed = 0
		s.gliding = true
	}
	if !s.gliding {
		return
	}
	s.elapsed += dt
	t := clamp(s.elapsed/s.cfg.Duration, 0, 1)
	e := clamp(float64(s.cfg.Easing(float32(t), 0, 1, 1)), 0, 1)
	s.state.Virtual = lerp(s.from, s.to, e)
	if t >= 1 {
		s.state.Virtual = s.to
		s.gliding = false
	}
}

// NativeScroller is the reduced-motion fallback: the virtual offset equals
// the raw offset every frame and no easing runs.
type NativeScroller struct {
	state  ScrollState
	limit  float64
	paused bool
	subs   scrollSubscribers
}

// NewNativeScroller creates a NativeScroller.
func NewNativeScroller() *NativeScroller {
	return &NativeScroller{limit: math.Inf(1)}
}

// Advance snaps the virtual offset to the raw offset and notifies subscribers.
func (n *NativeScroller) Advance(float64) ScrollState {
	prev := n.state.Virtual
	n.state.Virtual = n.state.Raw
	n.state.Velocity = n.state.Virtual - prev
	n.subs.notify(n.state)
	return n.state
}

// State returns the current scroll state.
func (n *NativeScroller) State() ScrollState { return n.state }

// AddDelta applies raw input unscaled. Ignored while paused.
func (n *NativeScroller) AddDelta(_ InputMode, dy float64) {
	if n.paused {
		return
	}
	n.state.Raw = clamp(n.state.Raw+dy, 0, n.limit)
}

// SetLimit clamps the raw offset to [0, max].
func (n *NativeScroller) SetLimit(max float64) {
	n.limit = math.Max(0, max)
	n.state.Raw = clamp(n.state.Raw, 0, n.limit)
}

// Limit returns the maximum raw offset.
func (n *NativeScroller) Limit() float64 { return n.limit }

// ScrollTo jumps to y; reduced motion never animates.
func (n *NativeScroller) ScrollTo(y, _ float64, _ ease.TweenFunc) {
	n.state.Raw = clamp(y, 0, n.limit)
}

// Pause drops incoming input.
func (n *NativeScroller) Pause() { n.paused = true }

// Resume accepts input again.
func (n *NativeScroller) Resume() { n.paused = false }

// Paused reports whether input is being dropped.
func (n *NativeScroller) Paused() bool { return n.paused }

// Subscribe registers fn to receive the state after every Advance.
func (n *NativeScroller) Subscribe(fn func(ScrollState)) ScrollHandle {
	return n.subs.subscribe(fn)
}

// Stop releases every subscriber.
func (n *NativeScroller) Stop() {
	n.subs.list.clear()
}
