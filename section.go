package glide

import (
	"errors"
	"fmt"
	"slices"
)

// SectionSpec describes an animated section to mount.
type SectionSpec struct {
	ID       string
	Height   float64
	Color    Color
	Triggers []SectionTrigger
}

// SectionTrigger is a trigger plus the timeline it drives.
type SectionTrigger struct {
	// Trigger is registered as given, with Element defaulting to the
	// section's box.
	Trigger TriggerSpec
	// Segments, when present, build a timeline against the section's style
	// (TargetStyle) or the render loop's uniforms (TargetScene). Scrub
	// triggers get a scrubbed timeline, toggle triggers a wall-clock one.
	Segments []Segment
	Target   string
}

// Section is a mounted SectionSpec. Unmount revokes every subscription
// the section made before returning.
type Section struct {
	ID  string
	Box *Box

	engine   *Engine
	handle   handle
	teardown Teardown
	triggers []TriggerHandle
}

// Triggers returns the section's trigger handles.
func (s *Section) Triggers() []TriggerHandle { return s.triggers }

// Mounted reports whether the section is still mounted.
func (s *Section) Mounted() bool { return !s.teardown.Done() }

// Unmount removes the section's triggers, timelines and layout box.
// Idempotent.
func (s *Section) Unmount() {
	if s.teardown.Done() {
		return
	}
	s.engine.sections.remove(s.handle)
	s.teardown.Run()
}

// MountSection lays out a new box at the bottom of the page and registers
// the section's triggers. A trigger whose element is not laid out is
// deferred rather than failing the section. A scene trigger without a
// render loop is skipped.
func (e *Engine) MountSection(spec SectionSpec) (*Section, error) {
	if !e.mounted {
		return nil, fmt.Errorf("mount section %q: %w", spec.ID, ErrNotMounted)
	}
	box := NewBox(spec.ID)
	box.Style.Color = spec.Color
	box.Layout(Rect{Height: spec.Height})

	s := &Section{ID: spec.ID, Box: box, engine: e}
	e.layout = append(e.layout, box)
	e.relayout()
	s.teardown.Defer(func() {
		box.Invalidate()
		e.layout = slices.DeleteFunc(e.layout, func(b *Box) bool { return b == box })
		if e.mounted {
			e.relayout()
			e.registry.Refresh()
		}
	})

	for i, st := range spec.Triggers {
		h, err := e.mountTrigger(s, st)
		if err != nil {
			e.log.Warn("trigger skipped", "section", spec.ID, "index", i, "err", err)
			continue
		}
		s.triggers = append(s.triggers, h)
	}
	// Earlier sections' offsets do not move, but the scroll limit did.
	e.registry.Refresh()

	s.handle = e.sections.add(s)
	e.log.Debug("section mounted", "id", spec.ID, "triggers", len(s.triggers))
	return s, nil
}

var errNoRenderLoop = errors.New("scene target without a render loop")

func (e *Engine) mountTrigger(s *Section, st SectionTrigger) (TriggerHandle, error) {
	spec := st.Trigger
	if spec.Element == nil {
		spec.Element = s.Box
	}
	if spec.ID == "" {
		spec.ID = s.ID
	}

	var target Target = &s.Box.Style
	if st.Target == TargetScene {
		rl := e.renderLoop
		if rl == nil {
			return TriggerHandle{}, errNoRenderLoop
		}
		target = rl.Params()
		user := spec.OnUpdate
		spec.OnUpdate = func(p float64) {
			rl.SetScroll(p)
			if user != nil {
				user(p)
			}
		}
	}

	if len(st.Segments) > 0 && spec.Timeline == nil {
		var driver Driver = Scrub{}
		if spec.Mode == ModeToggle {
			driver = WallClock{}
		}
		spec.Timeline = NewTimeline(target, driver, st.Segments...)
	}
	if tl := spec.Timeline; tl != nil && !tl.Scrubbed() {
		fh := e.ticker.Add(tl.Update)
		s.teardown.Defer(fh.Remove)
	}

	h, err := e.registry.Register(spec)
	if errors.Is(err, ErrUnresolvedTarget) {
		h = e.registry.Defer(spec)
	} else if err != nil {
		return TriggerHandle{}, err
	}
	s.teardown.Defer(h.Remove)
	return h, nil
}

// SectionFromConfig converts a validated SectionConfig.
func SectionFromConfig(sc SectionConfig) SectionSpec {
	spec := SectionSpec{
		ID:     sc.ID,
		Height: sc.Height,
		Color:  Color{R: sc.Color[0], G: sc.Color[1], B: sc.Color[2], A: sc.Color[3]},
	}
	if spec.Color == (Color{}) {
		spec.Color = ColorWhite
	}
	for _, tc := range sc.Triggers {
		mode, _ := parseMode(tc.Mode)
		start, _ := ParsePosition(tc.Start, TopBottom)
		end, _ := ParsePosition(tc.End, BottomTop)
		st := SectionTrigger{
			Trigger: TriggerSpec{
				ID:         tc.ID,
				Mode:       mode,
				Start:      &start,
				End:        &end,
				Pin:        tc.Pin,
				EnterAt:    tc.EnterAt,
				LeaveAt:    tc.LeaveAt,
				Hysteresis: tc.Hysteresis,
			},
			Target: tc.Target,
		}
		for _, seg := range tc.Timeline {
			st.Segments = append(st.Segments, segmentFromConfig(seg))
		}
		spec.Triggers = append(spec.Triggers, st)
	}
	return spec
}

func segmentFromConfig(sc SegmentConfig) Segment {
	seg := Segment{
		To:       sc.To,
		From:     sc.From,
		Start:    sc.Start,
		Duration: sc.Duration,
	}
	if sc.Ease != "" {
		seg.Ease, _ = EaseByName(sc.Ease)
	}
	return seg
}
