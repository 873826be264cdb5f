package glide

import "testing"

func TestBoxLayoutAndBounds(t *testing.T) {
	b := NewBox("hero")
	if _, ok := b.Bounds(); ok {
		t.Error("new box reports laid out")
	}
	b.Layout(Rect{Y: 100, Width: 800, Height: 400})
	if r, ok := b.Bounds(); !ok || r.Y != 100 {
		t.Errorf("Bounds = %+v, %v", r, ok)
	}
	b.SetPinSpacing(250)
	if b.FlowHeight() != 650 {
		t.Errorf("FlowHeight = %v, want 650", b.FlowHeight())
	}
	b.Invalidate()
	if _, ok := b.Bounds(); ok {
		t.Error("invalidated box reports laid out")
	}
}

func TestBoxDrawRect(t *testing.T) {
	b := NewBox("hero")
	b.Layout(Rect{X: 0, Y: 100, Width: 200, Height: 100})
	b.SetPin(50, true)
	b.Style.TranslateX = 10
	b.Style.Scale = 2
	r := b.DrawRect()
	want := Rect{X: -90, Y: 100, Width: 400, Height: 200}
	if r != want {
		t.Errorf("DrawRect = %+v, want %+v", r, want)
	}
	if !b.Pinned() {
		t.Error("Pinned = false")
	}
}

func TestStyleParams(t *testing.T) {
	s := DefaultStyle()
	s.SetParam(ParamRotation, 1.5)
	s.SetParam("color.g", 0.25)
	s.SetParam("unknown", 3)
	if s.Rotation != 1.5 || s.Color.G != 0.25 {
		t.Errorf("style = %+v", s)
	}
	if _, ok := s.Param("unknown"); ok {
		t.Error("unknown param resolved")
	}
	if v, ok := s.Param(ParamOpacity); !ok || v != 1 {
		t.Errorf("opacity = %v, %v", v, ok)
	}
}

func TestParamsColor(t *testing.T) {
	p := Params{}
	if got := GetColor(p, "tint"); got != ColorWhite {
		t.Errorf("missing color = %+v, want white", got)
	}
	c := Color{R: 0.1, G: 0.2, B: 0.3, A: 0.4}
	SetColor(p, "tint", c)
	if got := GetColor(p, "tint"); got != c {
		t.Errorf("GetColor = %+v, want %+v", got, c)
	}
	if len(p) != 4 {
		t.Errorf("len = %d, want 4 flattened channels", len(p))
	}
}
