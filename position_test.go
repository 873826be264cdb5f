package glide

import (
	"errors"
	"testing"
)

func TestPositionResolve(t *testing.T) {
	el := Rect{Y: 1000, Height: 400}
	const vh = 800
	tests := []struct {
		name string
		pos  Position
		want float64
	}{
		{"top bottom", TopBottom, 200},
		{"top top", TopTop, 1000},
		{"bottom top", BottomTop, 1400},
		{"bottom bottom", BottomBottom, 600},
		{"center center", Position{Element: Anchor{Frac: 0.5}, Viewport: Anchor{Frac: 0.5}}, 800},
		{"top top+=64", Position{Viewport: Anchor{Px: 64}}, 936},
		{"relative", Position{Relative: true, Offset: 500}, 1500},
	}
	for _, tt := range tests {
		if got := tt.pos.Resolve(el, vh, 1000); got != tt.want {
			t.Errorf("%s: Resolve = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in   string
		want Position
	}{
		{"top bottom", TopBottom},
		{"bottom top", BottomTop},
		{"  top   top ", TopTop},
		{"center 80%", Position{Element: Anchor{Frac: 0.5}, Viewport: Anchor{Frac: 0.8}}},
		{"top top+=64", Position{Viewport: Anchor{Px: 64}}},
		{"bottom-=20 top", Position{Element: Anchor{Frac: 1, Px: -20}}},
		{"100px 50%", Position{Element: Anchor{Px: 100}, Viewport: Anchor{Frac: 0.5}}},
		{"+=300", Position{Relative: true, Offset: 300}},
		{"-=50", Position{Relative: true, Offset: -50}},
	}
	for _, tt := range tests {
		got, err := ParsePosition(tt.in, BottomBottom)
		if err != nil {
			t.Errorf("ParsePosition(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePosition(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParsePositionDefault(t *testing.T) {
	got, err := ParsePosition("", TopTop)
	if err != nil || got != TopTop {
		t.Errorf("ParsePosition(\"\") = %+v, %v", got, err)
	}
}

func TestParsePositionInvalid(t *testing.T) {
	for _, in := range []string{"top", "top middle", "a b c", "+=abc", "top top+=x"} {
		if _, err := ParsePosition(in, TopTop); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("ParsePosition(%q) = %v, want ErrInvalidPosition", in, err)
		}
	}
}

func TestPositionStringRoundTrip(t *testing.T) {
	for _, in := range []string{"top bottom", "center 80%", "top top+=64", "bottom-=20 top", "+=300"} {
		p, err := ParsePosition(in, TopTop)
		if err != nil {
			t.Fatalf("ParsePosition(%q): %v", in, err)
		}
		if got := p.String(); got != in {
			t.Errorf("String() = %q, want %q", got, in)
		}
	}
}
