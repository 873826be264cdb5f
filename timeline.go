package glide

import (
	"math"
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Segment is one interpolation inside a Timeline. Start and Duration are in
// seconds for wall-clock timelines; for scrubbed timelines they are only
// weights, since progress is mapped onto the timeline's total length.
type Segment struct {
	// To maps parameter names to end values.
	To map[string]float64
	// From optionally fixes start values. Parameters without an entry start
	// from whatever the timeline would show at Start.
	From map[string]float64
	// Colors and FromColors are flattened into name.r/.g/.b/.a parameters.
	Colors     map[string]Color
	FromColors map[string]Color

	Start    float64
	Duration float64
	// Ease shapes the segment; nil is linear.
	Ease ease.TweenFunc
}

// Driver selects what advances a Timeline.
type Driver interface {
	driver()
}

// WallClock timelines advance with Update(dt). Autoplay starts them
// playing forward on creation.
type WallClock struct {
	Autoplay bool
}

// Scrub timelines have no clock: SetProgress is their only driver, so the
// output is a pure function of progress.
type Scrub struct{}

func (WallClock) driver() {}
func (Scrub) driver()     {}

type compiledSegment struct {
	start, end float64
	from, to   float64
	// tween is nil for linear segments, which interpolate in float64.
	tween *gween.Tween
}

func (c *compiledSegment) at(t float64) float64 {
	span := c.end - c.start
	if span <= 0 {
		return c.to
	}
	if c.tween != nil {
		v, _ := c.tween.Set(float32(t - c.start))
		return float64(v)
	}
	return c.from + (c.to-c.from)*clamp((t-c.start)/span, 0, 1)
}

// track holds every segment that animates one parameter, in declaration
// order.
type track struct {
	name    string
	initial float64
	segs    []compiledSegment
}

// sample resolves the parameter at time t. Segments that have finished
// leave their end value (the latest-ending one wins); any segment active at
// t overrides that, and among overlapping active segments the one declared
// last wins outright. No blending.
func (tr *track) sample(t float64) float64 {
	v := tr.initial
	bestEnd := math.Inf(-1)
	for i := range tr.segs {
		c := &tr.segs[i]
		if c.end <= t && c.end >= bestEnd {
			bestEnd = c.end
			v = c.to
		}
	}
	for i := range tr.segs {
		c := &tr.segs[i]
		if c.start <= t && t < c.end {
			v = c.at(t)
		}
	}
	return v
}

// Timeline sequences parameter interpolations against one Target.
type Timeline struct {
	target   Target
	tracks   []*track
	total    float64
	scrubbed bool

	time    float64
	dir     float64
	playing bool

	// Done is true once a wall-clock timeline has reached the end it was
	// playing toward.
	Done bool
	// OnComplete fires when a wall-clock timeline reaches either end.
	OnComplete func(dir Direction)
}

// NewTimeline compiles segments against target. Start values for
// parameters without an explicit From are read from target when the
// timeline is created, then chained segment to segment.
func NewTimeline(target Target, driver Driver, segments ...Segment) *Timeline {
	tl := &Timeline{target: target, dir: 1}
	byName := map[string]*track{}

	for _, seg := range segments {
		to, from := flattenSegment(seg)
		end := seg.Start + math.Max(0, seg.Duration)
		if end > tl.total {
			tl.total = end
		}

		names := make([]string, 0, len(to))
		for name := range to {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			tr, ok := byName[name]
			if !ok {
				initial, _ := target.Param(name)
				tr = &track{name: name, initial: initial}
				byName[name] = tr
				tl.tracks = append(tl.tracks, tr)
			}
			start, ok := from[name]
			if !ok {
				start = tr.sample(seg.Start)
			}
			cs := compiledSegment{
				start: seg.Start,
				end:   end,
				from:  start,
				to:    to[name],
			}
			if seg.Ease != nil {
				cs.tween = gween.New(float32(cs.from), float32(cs.to), float32(end-seg.Start), seg.Ease)
			}
			tr.segs = append(tr.segs, cs)
		}
	}

	switch d := driver.(type) {
	case Scrub:
		tl.scrubbed = true
	case WallClock:
		tl.playing = d.Autoplay
	}
	return tl
}

func flattenSegment(seg Segment) (to, from map[string]float64) {
	to = make(map[string]float64, len(seg.To)+4*len(seg.Colors))
	from = make(map[string]float64, len(seg.From)+4*len(seg.FromColors))
	for k, v := range seg.To {
		to[k] = v
	}
	for k, v := range seg.From {
		from[k] = v
	}
	for k, c := range seg.Colors {
		SetColor(Params(to), k, c)
	}
	for k, c := range seg.FromColors {
		SetColor(Params(from), k, c)
	}
	return to, from
}

// Duration returns the end of the last segment.
func (tl *Timeline) Duration() float64 { return tl.total }

// Scrubbed reports whether the timeline is progress-driven.
func (tl *Timeline) Scrubbed() bool { return tl.scrubbed }

// Progress returns the playhead as a fraction of Duration.
func (tl *Timeline) Progress() float64 {
	if tl.total <= 0 {
		return 1
	}
	return tl.time / tl.total
}

// SetProgress moves the playhead to p (clamped to [0, 1]) and writes every
// parameter. This is the only driver of a scrubbed timeline.
func (tl *Timeline) SetProgress(p float64) {
	tl.Seek(clamp(p, 0, 1) * tl.total)
}

// Seek moves the playhead to t seconds and writes every parameter.
func (tl *Timeline) Seek(t float64) {
	tl.time = clamp(t, 0, tl.total)
	tl.apply()
}

// Value returns what the timeline writes for name at the current playhead.
func (tl *Timeline) Value(name string) (float64, bool) {
	for _, tr := range tl.tracks {
		if tr.name == name {
			return tr.sample(tl.time), true
		}
	}
	return 0, false
}

func (tl *Timeline) apply() {
	for _, tr := range tl.tracks {
		tl.target.SetParam(tr.name, tr.sample(tl.time))
	}
}

// Play runs a wall-clock timeline forward from its current playhead.
func (tl *Timeline) Play() {
	if tl.scrubbed {
		return
	}
	tl.dir = 1
	tl.playing = true
	tl.Done = false
}

// Reverse runs a wall-clock timeline backward toward 0.
func (tl *Timeline) Reverse() {
	if tl.scrubbed {
		return
	}
	tl.dir = -1
	tl.playing = true
	tl.Done = false
}

// Pause stops a wall-clock timeline where it is.
func (tl *Timeline) Pause() { tl.playing = false }

// Playing reports whether Update will advance the playhead.
func (tl *Timeline) Playing() bool { return tl.playing }

// Update advances a playing wall-clock timeline by dt seconds. Scrubbed
// timelines ignore it.
func (tl *Timeline) Update(dt float64) {
	if tl.scrubbed || !tl.playing {
		return
	}
	tl.time = clamp(tl.time+tl.dir*dt, 0, tl.total)
	tl.apply()

	reached := (tl.dir > 0 && tl.time >= tl.total) || (tl.dir < 0 && tl.time <= 0)
	if !reached {
		return
	}
	tl.playing = false
	tl.Done = true
	if tl.OnComplete != nil {
		d := DirectionForward
		if tl.dir < 0 {
			d = DirectionBackward
		}
		tl.OnComplete(d)
	}
}
