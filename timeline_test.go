package glide

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTimelineLastDeclaredWinsOnOverlap(t *testing.T) {
	p := Params{ParamOpacity: 0}
	tl := NewTimeline(p, Scrub{},
		Segment{From: map[string]float64{ParamOpacity: 0}, To: map[string]float64{ParamOpacity: 1}, Start: 0, Duration: 1},
		Segment{From: map[string]float64{ParamOpacity: 10}, To: map[string]float64{ParamOpacity: 20}, Start: 0.5, Duration: 1},
	)
	if tl.Duration() != 1.5 {
		t.Fatalf("Duration = %v, want 1.5", tl.Duration())
	}
	tl.SetProgress(0.5)
	if got := p[ParamOpacity]; got != 12.5 {
		t.Errorf("opacity = %v, want 12.5 (second segment wins, no blending)", got)
	}
	tl.SetProgress(0.2) // t = 0.3, only the first segment is active
	if got := p[ParamOpacity]; !approxEqual(got, 0.3, epsilon) {
		t.Errorf("opacity = %v, want 0.3", got)
	}
	tl.SetProgress(1)
	if got := p[ParamOpacity]; got != 20 {
		t.Errorf("opacity = %v, want 20", got)
	}
}

func TestTimelineScrubIsPureFunctionOfProgress(t *testing.T) {
	st := DefaultStyle()
	tl := NewTimeline(&st, Scrub{},
		Segment{To: map[string]float64{ParamOpacity: 0, ParamTranslateY: 100}, Duration: 1},
		Segment{To: map[string]float64{ParamScale: 2}, Start: 1, Duration: 1, Ease: ease.OutQuad},
	)
	sample := func(p float64) Style {
		tl.SetProgress(p)
		return st
	}
	a := sample(0.3)
	sample(0.9)
	sample(0.1)
	if b := sample(0.3); b != a {
		t.Errorf("progress 0.3 gave %+v then %+v", a, b)
	}
	if start := sample(0); start != DefaultStyle() {
		t.Errorf("progress 0 = %+v, want the initial style", start)
	}
	end := sample(1)
	if end.Opacity != 0 || end.TranslateY != 100 || end.Scale != 2 {
		t.Errorf("progress 1 = %+v", end)
	}
}

func TestTimelineChainsFromPreviousSegment(t *testing.T) {
	p := Params{"x": 5}
	tl := NewTimeline(p, Scrub{},
		Segment{To: map[string]float64{"x": 10}, Duration: 1},
		Segment{To: map[string]float64{"x": 30}, Start: 1, Duration: 1},
	)
	tl.Seek(0.5)
	if p["x"] != 7.5 {
		t.Errorf("x = %v, want 7.5", p["x"])
	}
	tl.Seek(1.5)
	if p["x"] != 20 {
		t.Errorf("x = %v, want 20", p["x"])
	}
	if v, ok := tl.Value("x"); !ok || v != 20 {
		t.Errorf("Value = %v, %v", v, ok)
	}
	if _, ok := tl.Value("missing"); ok {
		t.Error("Value for unknown param")
	}
}

func TestTimelineGapHoldsFinishedValue(t *testing.T) {
	p := Params{"x": 0}
	tl := NewTimeline(p, Scrub{},
		Segment{To: map[string]float64{"x": 1}, Duration: 1},
		Segment{To: map[string]float64{"x": 2}, Start: 2, Duration: 1},
	)
	tl.Seek(1.5)
	if p["x"] != 1 {
		t.Errorf("x in gap = %v, want 1", p["x"])
	}
}

func TestTimelineColors(t *testing.T) {
	st := DefaultStyle()
	tl := NewTimeline(&st, Scrub{}, Segment{
		FromColors: map[string]Color{ParamColor: {R: 0, G: 0, B: 0, A: 1}},
		Colors:     map[string]Color{ParamColor: {R: 1, G: 0.5, B: 0, A: 1}},
		Duration:   1,
	})
	tl.SetProgress(0.5)
	want := Color{R: 0.5, G: 0.25, B: 0, A: 1}
	if st.Color != want {
		t.Errorf("color = %+v, want %+v", st.Color, want)
	}
	if got := GetColor(&st, ParamColor); got != want {
		t.Errorf("GetColor = %+v", got)
	}
}

func TestTimelineScrubIgnoresUpdate(t *testing.T) {
	p := Params{"x": 0}
	tl := NewTimeline(p, Scrub{}, Segment{To: map[string]float64{"x": 1}, Duration: 1})
	tl.Play()
	tl.Update(0.5)
	if tl.Playing() || p["x"] != 0 {
		t.Error("scrubbed timeline advanced by Update")
	}
}

func TestTimelineWallClockPlayReverse(t *testing.T) {
	p := Params{"x": 0}
	tl := NewTimeline(p, WallClock{}, Segment{To: map[string]float64{"x": 10}, Duration: 1})
	var completed []Direction
	tl.OnComplete = func(d Direction) { completed = append(completed, d) }

	tl.Update(0.5)
	if p["x"] != 0 {
		t.Fatal("advanced before Play")
	}
	tl.Play()
	tl.Update(0.5)
	if p["x"] != 5 {
		t.Errorf("x = %v, want 5", p["x"])
	}
	tl.Update(0.75)
	if p["x"] != 10 || !tl.Done || tl.Playing() {
		t.Errorf("x = %v done=%v playing=%v", p["x"], tl.Done, tl.Playing())
	}
	tl.Reverse()
	if tl.Done {
		t.Error("Done still set after Reverse")
	}
	tl.Update(0.25)
	if p["x"] != 7.5 {
		t.Errorf("x = %v, want 7.5", p["x"])
	}
	tl.Update(2)
	if p["x"] != 0 || tl.Progress() != 0 {
		t.Errorf("x = %v progress %v", p["x"], tl.Progress())
	}
	if len(completed) != 2 || completed[0] != DirectionForward || completed[1] != DirectionBackward {
		t.Errorf("completed = %v", completed)
	}
}

func TestTimelineAutoplayAndPause(t *testing.T) {
	p := Params{"x": 0}
	tl := NewTimeline(p, WallClock{Autoplay: true}, Segment{To: map[string]float64{"x": 4}, Duration: 2})
	tl.Update(1)
	if p["x"] != 2 {
		t.Errorf("x = %v, want 2", p["x"])
	}
	tl.Pause()
	tl.Update(1)
	if p["x"] != 2 {
		t.Errorf("x moved while paused: %v", p["x"])
	}
}

func TestTimelineEmpty(t *testing.T) {
	tl := NewTimeline(Params{}, Scrub{})
	tl.SetProgress(0.5)
	if tl.Progress() != 1 {
		t.Errorf("Progress = %v, want 1 for an empty timeline", tl.Progress())
	}
}

func TestTimelineEasedSegment(t *testing.T) {
	p := Params{"x": 0}
	tl := NewTimeline(p, Scrub{}, Segment{To: map[string]float64{"x": 10}, Duration: 2, Ease: ease.OutQuad})
	tl.Seek(0.5)
	want := float64(ease.OutQuad(0.5, 0, 10, 2))
	if !approxEqual(p["x"], want, 1e-5) {
		t.Errorf("x = %v, want %v", p["x"], want)
	}
	if p["x"] <= 2.5 {
		t.Errorf("x = %v, want ahead of linear 2.5", p["x"])
	}
	tl.Seek(2)
	if p["x"] != 10 {
		t.Errorf("x = %v at the end, want 10", p["x"])
	}
}
