package glide

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputKind identifies a raw input event.
type InputKind uint8

const (
	InputKindWheel   InputKind = iota // wheel or trackpad scroll, DY in pixels
	InputKindTouch                    // touch drag, DY in pixels
	InputKindPointer                  // pointer moved to (X, Y) in screen pixels
)

// InputEvent is one raw input sample. Positive DY scrolls down the page.
type InputEvent struct {
	Kind InputKind
	DY   float64
	X, Y float64
}

// InputSource produces the raw input for one frame.
type InputSource interface {
	Poll(dst []InputEvent) []InputEvent
}

// WheelPixelsPerUnit converts ebiten wheel units to page pixels.
const WheelPixelsPerUnit = 40

// EbitenInput polls ebiten's wheel, touch and cursor state.
type EbitenInput struct {
	touchIDs  []ebiten.TouchID
	primary   ebiten.TouchID
	touching  bool
	lastTouch float64

	lastX, lastY int
	seenCursor   bool
}

// NewEbitenInput creates an EbitenInput.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// Poll appends this frame's events to dst.
func (in *EbitenInput) Poll(dst []InputEvent) []InputEvent {
	if _, dy := ebiten.Wheel(); dy != 0 {
		// ebiten reports positive dy for wheel-up, which scrolls toward the top.
		dst = append(dst, InputEvent{Kind: InputKindWheel, DY: -dy * WheelPixelsPerUnit})
	}

	dst = in.pollTouch(dst)

	x, y := ebiten.CursorPosition()
	if !in.seenCursor || x != in.lastX || y != in.lastY {
		in.seenCursor = true
		in.lastX, in.lastY = x, y
		dst = append(dst, InputEvent{Kind: InputKindPointer, X: float64(x), Y: float64(y)})
	}
	return dst
}

func (in *EbitenInput) pollTouch(dst []InputEvent) []InputEvent {
	if in.touching && inpututil.IsTouchJustReleased(in.primary) {
		in.touching = false
	}
	if !in.touching {
		in.touchIDs = inpututil.AppendJustPressedTouchIDs(in.touchIDs[:0])
		if len(in.touchIDs) > 0 {
			in.primary = in.touchIDs[0]
			in.touching = true
			_, y := ebiten.TouchPosition(in.primary)
			in.lastTouch = float64(y)
		}
		return dst
	}
	_, y := ebiten.TouchPosition(in.primary)
	fy := float64(y)
	if dy := in.lastTouch - fy; dy != 0 {
		dst = append(dst, InputEvent{Kind: InputKindTouch, DY: dy})
	}
	in.lastTouch = fy
	return dst
}
