package glide

// Element is a layout node a trigger is anchored to. Bounds reports the
// element's normal-flow rectangle in document coordinates; ok is false
// until the element has been laid out.
type Element interface {
	Bounds() (r Rect, ok bool)
}

// Pinnable is implemented by elements that can be held in place while a
// pinned trigger is active. offset is how far, in document pixels, the
// element is pushed down from its flow position; while active is true the
// offset tracks the scroll so the element stays fixed in the viewport.
// After the pin releases past its end the offset stays at the full pin
// distance.
//
// The registry sets the pin spacing to that same distance, the resolved
// length of the pinning trigger's range, and the layout reserves it below
// the element so nothing jumps when the pin engages or releases.
// Implementations are compared by identity.
type Pinnable interface {
	Element
	SetPin(offset float64, active bool)
	PinSpacing() float64
	SetPinSpacing(d float64)
}

// Box is the stock Element: a rectangle owned by the layout collaborator,
// with a Style the timelines write into.
type Box struct {
	Name  string
	Style Style

	flow      Rect
	laidOut   bool
	pinOffset  float64
	pinned     bool
	pinSpacing float64
}

// NewBox returns an un-laid-out box with the default style.
func NewBox(name string) *Box {
	return &Box{Name: name, Style: DefaultStyle()}
}

// Layout places the box in normal flow.
func (b *Box) Layout(r Rect) {
	b.flow = r
	b.laidOut = true
}

// Invalidate marks the box as not laid out, e.g. when it is removed from
// the document.
func (b *Box) Invalidate() {
	b.laidOut = false
}

// Bounds returns the normal-flow rectangle.
func (b *Box) Bounds() (Rect, bool) {
	return b.flow, b.laidOut
}

// SetPin records the pin displacement.
func (b *Box) SetPin(offset float64, active bool) {
	b.pinOffset = offset
	b.pinned = active
}

// PinSpacing returns the space reserved below the box for its pin.
func (b *Box) PinSpacing() float64 { return b.pinSpacing }

// SetPinSpacing is called by the trigger registry.
func (b *Box) SetPinSpacing(d float64) { b.pinSpacing = d }

// Pinned reports whether a pin currently holds the box in the viewport.
func (b *Box) Pinned() bool { return b.pinned }

// DrawRect returns where the box is drawn in document coordinates: the
// flow rectangle shifted by the pin displacement and the style's
// translation.
func (b *Box) DrawRect() Rect {
	r := b.flow
	r.Y += b.pinOffset + b.Style.TranslateY
	r.X += b.Style.TranslateX
	if b.Style.Scale != 1 {
		cx, cy := r.X+r.Width/2, r.Y+r.Height/2
		r.Width *= b.Style.Scale
		r.Height *= b.Style.Scale
		r.X = cx - r.Width/2
		r.Y = cy - r.Height/2
	}
	return r
}

// FlowHeight is the vertical space the box occupies in normal flow,
// including reserved pin spacing.
func (b *Box) FlowHeight() float64 {
	return b.flow.Height + b.pinSpacing
}
