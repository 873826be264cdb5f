package glide

import (
	"fmt"
	"strconv"
	"strings"
)

// Anchor is a point along an element or the viewport: a fraction of its
// height plus a pixel offset.
type Anchor struct {
	Frac float64
	Px   float64
}

// Position says when a trigger boundary is reached: the scroll offset at
// which the element's anchor meets the viewport's anchor. A Relative
// position ("+=N") is measured from the trigger's start instead.
type Position struct {
	Element  Anchor
	Viewport Anchor
	Relative bool
	Offset   float64
}

// Common positions.
var (
	// TopBottom: the element's top edge enters the bottom of the viewport.
	TopBottom = Position{Element: Anchor{Frac: 0}, Viewport: Anchor{Frac: 1}}
	// TopTop: the element's top edge reaches the top of the viewport.
	TopTop = Position{Element: Anchor{Frac: 0}, Viewport: Anchor{Frac: 0}}
	// BottomTop: the element's bottom edge leaves through the top.
	BottomTop = Position{Element: Anchor{Frac: 1}, Viewport: Anchor{Frac: 0}}
	// BottomBottom: the element's bottom edge reaches the bottom of the viewport.
	BottomBottom = Position{Element: Anchor{Frac: 1}, Viewport: Anchor{Frac: 1}}
)

// Resolve converts the position to a document scroll offset for an element
// laid out at el in a viewport of height viewportH. start is only used by
// relative positions.
func (p Position) Resolve(el Rect, viewportH, start float64) float64 {
	if p.Relative {
		return start + p.Offset
	}
	elementY := el.Y + p.Element.Frac*el.Height + p.Element.Px
	viewportY := p.Viewport.Frac*viewportH + p.Viewport.Px
	return elementY - viewportY
}

// String formats the position in the syntax ParsePosition accepts.
func (p Position) String() string {
	if p.Relative {
		return formatOffset(p.Offset)
	}
	return formatAnchor(p.Element) + " " + formatAnchor(p.Viewport)
}

// ParsePosition parses "<element> <viewport>" where each side is top,
// center, bottom, a percentage or a pixel value, optionally followed by
// "+=N" or "-=N" pixels; e.g. "top bottom", "center 80%", "top top+=64".
// A lone "+=N" is relative to the trigger's start. An empty string
// returns def.
func ParsePosition(s string, def Position) (Position, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	if strings.HasPrefix(s, "+=") || strings.HasPrefix(s, "-=") {
		off, err := parseOffset(s)
		if err != nil {
			return Position{}, fmt.Errorf("parse position %q: %w", s, err)
		}
		return Position{Relative: true, Offset: off}, nil
	}
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Position{}, fmt.Errorf("parse position %q: want two anchors: %w", s, ErrInvalidPosition)
	}
	el, err := parseAnchor(fields[0])
	if err != nil {
		return Position{}, fmt.Errorf("parse position %q: %w", s, err)
	}
	vp, err := parseAnchor(fields[1])
	if err != nil {
		return Position{}, fmt.Errorf("parse position %q: %w", s, err)
	}
	return Position{Element: el, Viewport: vp}, nil
}

func parseAnchor(tok string) (Anchor, error) {
	var a Anchor
	base := tok
	if i := strings.Index(tok, "+="); i > 0 {
		base = tok[:i]
		off, err := parseOffset(tok[i:])
		if err != nil {
			return a, err
		}
		a.Px = off
	} else if i := strings.Index(tok, "-="); i > 0 {
		base = tok[:i]
		off, err := parseOffset(tok[i:])
		if err != nil {
			return a, err
		}
		a.Px = off
	}

	switch base {
	case "top":
		a.Frac = 0
	case "center":
		a.Frac = 0.5
	case "bottom":
		a.Frac = 1
	default:
		switch {
		case strings.HasSuffix(base, "%"):
			v, err := strconv.ParseFloat(strings.TrimSuffix(base, "%"), 64)
			if err != nil {
				return a, ErrInvalidPosition
			}
			a.Frac = v / 100
		default:
			v, err := strconv.ParseFloat(strings.TrimSuffix(base, "px"), 64)
			if err != nil {
				return a, ErrInvalidPosition
			}
			a.Px += v
		}
	}
	return a, nil
}

func parseOffset(s string) (float64, error) {
	sign := 1.0
	switch {
	case strings.HasPrefix(s, "+="):
	case strings.HasPrefix(s, "-="):
		sign = -1
	default:
		return 0, ErrInvalidPosition
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[2:], "px"), 64)
	if err != nil {
		return 0, ErrInvalidPosition
	}
	return sign * v, nil
}

func formatAnchor(a Anchor) string {
	var base string
	switch a.Frac {
	case 0:
		base = "top"
	case 0.5:
		base = "center"
	case 1:
		base = "bottom"
	default:
		base = strconv.FormatFloat(a.Frac*100, 'f', -1, 64) + "%"
	}
	if a.Px != 0 {
		base += formatOffset(a.Px)
	}
	return base
}

func formatOffset(v float64) string {
	if v < 0 {
		return "-=" + strconv.FormatFloat(-v, 'f', -1, 64)
	}
	return "+=" + strconv.FormatFloat(v, 'f', -1, 64)
}
