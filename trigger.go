package glide

import (
	"fmt"
	"log/slog"
	"math"
)

// TriggerMode selects how a trigger reacts to its progress.
type TriggerMode uint8

const (
	// ModeScrub reports continuous progress every time it changes.
	ModeScrub TriggerMode = iota
	// ModeToggle exposes two states and fires on edges only.
	ModeToggle
)

// DefaultHysteresis is the progress band a toggle trigger must move past a
// threshold before it switches back, so jitter at the boundary does not
// flap the state.
const DefaultHysteresis = 0.01

// TriggerSpec describes a binding between a scroll range and callbacks.
type TriggerSpec struct {
	ID      string
	Element Element
	Mode    TriggerMode

	// Start and End default to TopBottom and BottomTop.
	Start *Position
	End   *Position

	// Pin holds the element in the viewport while progress is in (0, 1).
	// The element must implement Pinnable.
	Pin bool

	// OnUpdate receives progress in [0, 1] whenever it changes.
	OnUpdate func(progress float64)

	// OnEnter and OnLeave fire on toggle-mode edges.
	OnEnter func(dir Direction)
	OnLeave func(dir Direction)

	// EnterAt and LeaveAt bound the active band on unclamped progress.
	// Both zero means [0, 1].
	EnterAt, LeaveAt float64
	// Hysteresis widens the band when leaving. Zero selects DefaultHysteresis.
	Hysteresis float64

	// Timeline is driven by the trigger: scrubbed timelines follow progress,
	// wall-clock timelines play on enter and reverse on leaving backward.
	Timeline *Timeline
}

type trigger struct {
	spec       TriggerSpec
	start, end float64
	resolved   bool
	enabled    bool

	seen     bool
	progress float64
	raw      float64
	active   bool
	pinned   bool
}

func (t *trigger) rawProgress(v float64) float64 {
	span := t.end - t.start
	if span <= 0 {
		if v >= t.start {
			return 1
		}
		return 0
	}
	return (v - t.start) / span
}

// TriggerRegistry owns every registered trigger and re-evaluates them
// against the scroll state once per frame.
type TriggerRegistry struct {
	triggers  arena[*trigger]
	viewportH float64
	enabled   bool
	state     ScrollState

	sink     EventSink
	log      *slog.Logger
	relayout func()
}

// TriggerHandle identifies a registered trigger.
type TriggerHandle struct {
	h   handle
	reg *TriggerRegistry
}

// NewTriggerRegistry creates an enabled registry for a viewport of the
// given height.
func NewTriggerRegistry(viewportH float64) *TriggerRegistry {
	return &TriggerRegistry{viewportH: viewportH, enabled: true, log: discardLogger}
}

// SetLogger sets the logger used for registration diagnostics.
func (r *TriggerRegistry) SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	r.log = l
}

// SetEventSink forwards enter/leave and pin events to sink.
func (r *TriggerRegistry) SetEventSink(sink EventSink) {
	r.sink = sink
}

// SetRelayout installs the layout pass that restacks elements after pin
// spacing changes. Without one, spacing is recorded on the elements but
// nothing below them moves.
func (r *TriggerRegistry) SetRelayout(fn func()) {
	r.relayout = fn
}

// SetViewportHeight changes the viewport height used to resolve positions.
// Call Refresh afterwards to re-measure.
func (r *TriggerRegistry) SetViewportHeight(h float64) {
	r.viewportH = h
}

// Len returns the number of registered triggers, pending ones included.
func (r *TriggerRegistry) Len() int {
	return r.triggers.len()
}

// Register adds a trigger. It fails with ErrUnresolvedTarget when the
// element is nil or not laid out yet.
func (r *TriggerRegistry) Register(spec TriggerSpec) (TriggerHandle, error) {
	t := newTrigger(spec)
	if !r.measure(t) {
		return TriggerHandle{}, fmt.Errorf("register trigger %q: %w", spec.ID, ErrUnresolvedTarget)
	}
	h := TriggerHandle{h: r.triggers.add(t), reg: r}
	if t.spec.Pin {
		r.settle(false)
	}
	r.log.Debug("trigger registered", "id", spec.ID, "start", t.start, "end", t.end)
	if r.enabled {
		r.evaluate(t, r.state.Virtual)
	}
	return h, nil
}

// Defer adds a trigger whose element may not be laid out yet. It stays
// pending, and is skipped by Reevaluate, until a later pass finds its
// element laid out.
func (r *TriggerRegistry) Defer(spec TriggerSpec) TriggerHandle {
	t := newTrigger(spec)
	r.measure(t)
	h := TriggerHandle{h: r.triggers.add(t), reg: r}
	if t.resolved && t.spec.Pin {
		r.settle(false)
	}
	if !t.resolved {
		r.log.Debug("trigger deferred", "id", spec.ID)
	} else if r.enabled {
		r.evaluate(t, r.state.Virtual)
	}
	return h
}

func newTrigger(spec TriggerSpec) *trigger {
	if spec.EnterAt == 0 && spec.LeaveAt == 0 {
		spec.LeaveAt = 1
	}
	if spec.Hysteresis == 0 {
		spec.Hysteresis = DefaultHysteresis
	}
	return &trigger{spec: spec, enabled: true}
}

// measure resolves the trigger's offsets from its element's current layout.
func (r *TriggerRegistry) measure(t *trigger) bool {
	if t.spec.Element == nil {
		t.resolved = false
		return false
	}
	bounds, ok := t.spec.Element.Bounds()
	if !ok {
		t.resolved = false
		return false
	}
	startPos, endPos := TopBottom, BottomTop
	if t.spec.Start != nil {
		startPos = *t.spec.Start
	}
	if t.spec.End != nil {
		endPos = *t.spec.End
	}
	t.start = startPos.Resolve(bounds, r.viewportH, 0)
	t.end = endPos.Resolve(bounds, r.viewportH, t.start)
	t.resolved = true
	return true
}

// measureAll re-measures every trigger and sets each pinned element's
// spacing to the longest resolved range pinning it. It reports whether any
// spacing changed.
func (r *TriggerRegistry) measureAll() bool {
	var spans map[Pinnable]float64
	r.triggers.each(func(_ handle, p **trigger) {
		t := *p
		if !r.measure(t) || !t.spec.Pin {
			return
		}
		el, ok := t.spec.Element.(Pinnable)
		if !ok {
			return
		}
		if spans == nil {
			spans = make(map[Pinnable]float64)
		}
		spans[el] = math.Max(spans[el], t.end-t.start)
	})
	changed := false
	for el, d := range spans {
		if el.PinSpacing() != d {
			el.SetPinSpacing(d)
			changed = true
		}
	}
	return changed
}

// settle measures every trigger and, when pin spacing moved, restacks the
// layout and measures again. Ranges do not depend on an element's own
// offset, so one restack is enough.
func (r *TriggerRegistry) settle(dirty bool) {
	if r.measureAll() {
		dirty = true
	}
	if dirty && r.relayout != nil {
		r.relayout()
		r.measureAll()
	}
}

// releasePin drops t's hold on its element and the spacing reserved for
// it. It reports whether the spacing changed.
func releasePin(t *trigger) bool {
	if !t.spec.Pin {
		return false
	}
	el, ok := t.spec.Element.(Pinnable)
	if !ok {
		return false
	}
	el.SetPin(0, false)
	t.pinned = false
	if el.PinSpacing() == 0 {
		return false
	}
	el.SetPinSpacing(0)
	return true
}

// Unregister removes the trigger. Its callbacks never fire again, and a
// held pin is released. It reports whether the trigger was registered.
func (r *TriggerRegistry) Unregister(h TriggerHandle) bool {
	p, ok := r.triggers.get(h.h)
	if !ok {
		return false
	}
	t := *p
	r.triggers.remove(h.h)
	if releasePin(t) {
		// Another trigger may still pin the same element.
		r.settle(true)
	}
	return true
}

// Clear unregisters every trigger.
func (r *TriggerRegistry) Clear() {
	for _, t := range r.triggers.clear() {
		releasePin(t)
	}
}

// Enabled reports whether the registry is evaluating triggers.
func (r *TriggerRegistry) Enabled() bool {
	return r.enabled
}

// SetAllEnabled disables or re-enables every trigger at once. While
// disabled, triggers keep their last progress and receive no callbacks.
// Re-enabling re-measures, since layout may have changed while frozen,
// then runs a single pass against the latest scroll state.
func (r *TriggerRegistry) SetAllEnabled(enabled bool) {
	if r.enabled == enabled {
		return
	}
	r.enabled = enabled
	if enabled {
		r.Refresh()
	}
}

// Refresh re-measures every trigger against current layout and viewport,
// resolving pending ones and updating pin spacing, then runs a pass if
// enabled.
func (r *TriggerRegistry) Refresh() {
	r.settle(false)
	if r.enabled {
		r.Reevaluate(r.state)
	}
}

// Reevaluate records st and, when enabled, updates every enabled trigger.
// Pending triggers whose element has since been laid out are resolved.
func (r *TriggerRegistry) Reevaluate(st ScrollState) {
	r.state = st
	if !r.enabled {
		return
	}
	resolvedPin := false
	r.triggers.each(func(_ handle, p **trigger) {
		t := *p
		if !t.resolved && r.measure(t) && t.spec.Pin {
			resolvedPin = true
		}
	})
	if resolvedPin {
		r.settle(false)
	}
	r.triggers.each(func(_ handle, p **trigger) {
		t := *p
		if !t.resolved || !t.enabled {
			return
		}
		r.evaluate(t, st.Virtual)
	})
}

func (r *TriggerRegistry) evaluate(t *trigger, v float64) {
	raw := t.rawProgress(v)
	progress := clamp(raw, 0, 1)
	first := !t.seen
	prevRaw := t.raw
	t.seen = true
	t.raw = raw

	if first || progress != t.progress {
		t.progress = progress
		r.updatePin(t, v)
		if t.spec.Timeline != nil && t.spec.Timeline.Scrubbed() {
			t.spec.Timeline.SetProgress(progress)
		}
		if t.spec.OnUpdate != nil {
			t.spec.OnUpdate(progress)
		}
	}

	if t.spec.Mode == ModeToggle {
		dir := DirectionForward
		if !first && raw < prevRaw {
			dir = DirectionBackward
		}
		r.toggle(t, prevRaw, raw, first, dir)
	}
}

// toggle applies edge transitions for a move from prevRaw to raw. A single
// pass that jumps over the whole band still enters and then leaves, so
// every crossing produces exactly one pair of edges.
func (r *TriggerRegistry) toggle(t *trigger, prevRaw, raw float64, first bool, dir Direction) {
	enter, leave, h := t.spec.EnterAt, t.spec.LeaveAt, t.spec.Hysteresis
	if t.active {
		if raw < enter-h || raw > leave+h {
			r.deactivate(t, dir)
		}
		return
	}
	switch {
	case raw > enter && raw < leave:
		r.activate(t, dir)
	case first:
	case prevRaw <= enter && raw >= leave:
		r.activate(t, dir)
		if raw > leave+h {
			r.deactivate(t, dir)
		}
	case prevRaw >= leave && raw <= enter:
		r.activate(t, dir)
		if raw < enter-h {
			r.deactivate(t, dir)
		}
	}
}

func (r *TriggerRegistry) activate(t *trigger, dir Direction) {
	t.active = true
	if tl := t.spec.Timeline; tl != nil && !tl.Scrubbed() {
		tl.Play()
	}
	if t.spec.OnEnter != nil {
		t.spec.OnEnter(dir)
	}
	r.emit(Event{Type: EventTriggerEnter, TriggerID: t.spec.ID, Direction: dir, Progress: t.progress})
}

func (r *TriggerRegistry) deactivate(t *trigger, dir Direction) {
	t.active = false
	if tl := t.spec.Timeline; tl != nil && !tl.Scrubbed() && dir == DirectionBackward {
		tl.Reverse()
	}
	if t.spec.OnLeave != nil {
		t.spec.OnLeave(dir)
	}
	r.emit(Event{Type: EventTriggerLeave, TriggerID: t.spec.ID, Direction: dir, Progress: t.progress})
}

func (r *TriggerRegistry) updatePin(t *trigger, v float64) {
	if !t.spec.Pin {
		return
	}
	el, ok := t.spec.Element.(Pinnable)
	if !ok {
		return
	}
	active := t.progress > 0 && t.progress < 1
	el.SetPin(clamp(v-t.start, 0, math.Max(0, t.end-t.start)), active)
	if active != t.pinned {
		t.pinned = active
		typ := EventPinEnd
		if active {
			typ = EventPinStart
		}
		r.emit(Event{Type: typ, TriggerID: t.spec.ID, Progress: t.progress})
	}
}

func (r *TriggerRegistry) emit(e Event) {
	if r.sink != nil {
		r.sink.EmitEvent(e)
	}
}

func (h TriggerHandle) trigger() (*trigger, bool) {
	if h.reg == nil {
		return nil, false
	}
	p, ok := h.reg.triggers.get(h.h)
	if !ok {
		return nil, false
	}
	return *p, true
}

// Remove unregisters the trigger. Safe to call more than once.
func (h TriggerHandle) Remove() {
	if h.reg != nil {
		h.reg.Unregister(h)
	}
}

// Registered reports whether the trigger is still in its registry.
func (h TriggerHandle) Registered() bool {
	_, ok := h.trigger()
	return ok
}

// Pending reports whether the trigger is waiting for its element's layout.
func (h TriggerHandle) Pending() bool {
	t, ok := h.trigger()
	return ok && !t.resolved
}

// Progress returns the last evaluated progress.
func (h TriggerHandle) Progress() float64 {
	t, ok := h.trigger()
	if !ok {
		return 0
	}
	return t.progress
}

// Active reports whether a toggle trigger is in its active state.
func (h TriggerHandle) Active() bool {
	t, ok := h.trigger()
	return ok && t.active
}

// Range returns the resolved start and end scroll offsets.
func (h TriggerHandle) Range() (start, end float64) {
	t, ok := h.trigger()
	if !ok {
		return 0, 0
	}
	return t.start, t.end
}

// SetEnabled enables or disables this trigger alone.
func (h TriggerHandle) SetEnabled(enabled bool) {
	t, ok := h.trigger()
	if !ok || t.enabled == enabled {
		return
	}
	t.enabled = enabled
	if enabled && h.reg.enabled && t.resolved {
		h.reg.evaluate(t, h.reg.state.Virtual)
	}
}
