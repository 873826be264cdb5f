package glide

import "strings"

// Target receives interpolated parameter values from a Timeline.
type Target interface {
	// Param returns the current value of name, or false if unknown.
	Param(name string) (float64, bool)
	// SetParam writes name. Unknown names may be ignored.
	SetParam(name string, v float64)
}

// Params is a free-form Target backed by a map. It is the shape of a 3D
// scene's uniform table before conversion to shader types.
type Params map[string]float64

// Param returns p[name].
func (p Params) Param(name string) (float64, bool) {
	v, ok := p[name]
	return v, ok
}

// SetParam stores v under name.
func (p Params) SetParam(name string, v float64) {
	p[name] = v
}

// Color channel suffixes used to flatten a Color into four parameters.
var colorChannels = [4]string{".r", ".g", ".b", ".a"}

// SetColor writes c as name.r, name.g, name.b and name.a.
func SetColor(t Target, name string, c Color) {
	t.SetParam(name+colorChannels[0], c.R)
	t.SetParam(name+colorChannels[1], c.G)
	t.SetParam(name+colorChannels[2], c.B)
	t.SetParam(name+colorChannels[3], c.A)
}

// GetColor reads a color written by SetColor. Missing channels default to
// the matching ColorWhite component.
func GetColor(t Target, name string) Color {
	get := func(i int, def float64) float64 {
		if v, ok := t.Param(name + colorChannels[i]); ok {
			return v
		}
		return def
	}
	return Color{
		R: get(0, ColorWhite.R),
		G: get(1, ColorWhite.G),
		B: get(2, ColorWhite.B),
		A: get(3, ColorWhite.A),
	}
}

// Style parameter names.
const (
	ParamOpacity    = "opacity"
	ParamTranslateX = "translateX"
	ParamTranslateY = "translateY"
	ParamScale      = "scale"
	ParamRotation   = "rotation"
	ParamColor      = "color"
)

// Style is the visual state of a Box that timelines animate.
type Style struct {
	Opacity    float64
	TranslateX float64
	TranslateY float64
	Scale      float64
	Rotation   float64
	Color      Color
}

// DefaultStyle is fully opaque, untransformed and white.
func DefaultStyle() Style {
	return Style{Opacity: 1, Scale: 1, Color: ColorWhite}
}

// Param implements Target.
func (s *Style) Param(name string) (float64, bool) {
	if p := s.field(name); p != nil {
		return *p, true
	}
	return 0, false
}

// SetParam implements Target. Unknown names are ignored.
func (s *Style) SetParam(name string, v float64) {
	if p := s.field(name); p != nil {
		*p = v
	}
}

func (s *Style) field(name string) *float64 {
	switch name {
	case ParamOpacity:
		return &s.Opacity
	case ParamTranslateX:
		return &s.TranslateX
	case ParamTranslateY:
		return &s.TranslateY
	case ParamScale:
		return &s.Scale
	case ParamRotation:
		return &s.Rotation
	}
	if ch, ok := strings.CutPrefix(name, ParamColor); ok {
		switch ch {
		case colorChannels[0]:
			return &s.Color.R
		case colorChannels[1]:
			return &s.Color.G
		case colorChannels[2]:
			return &s.Color.B
		case colorChannels[3]:
			return &s.Color.A
		}
	}
	return nil
}
