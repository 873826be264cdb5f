package glide

// InjectedInput is an InputSource fed by code instead of devices. Each
// queued frame is delivered by one Poll call, so a sequence of injections
// plays back one frame at a time. Tests and ScrollScript use it; it can
// also wrap a live source so scripted events mix with real ones.
type InjectedInput struct {
	frames [][]InputEvent
	next   InputSource
}

// NewInjectedInput creates a queue. next, if non-nil, is polled whenever
// no injected frame is pending.
func NewInjectedInput(next InputSource) *InjectedInput {
	return &InjectedInput{next: next}
}

// Pending returns the number of queued frames.
func (in *InjectedInput) Pending() int {
	return len(in.frames)
}

// InjectWheel queues a wheel scroll of dy pixels for the next frame.
func (in *InjectedInput) InjectWheel(dy float64) {
	in.frames = append(in.frames, []InputEvent{{Kind: InputKindWheel, DY: dy}})
}

// InjectPointer queues a pointer move to (x, y) for the next frame.
func (in *InjectedInput) InjectPointer(x, y float64) {
	in.frames = append(in.frames, []InputEvent{{Kind: InputKindPointer, X: x, Y: y}})
}

// InjectIdle queues n frames with no input.
func (in *InjectedInput) InjectIdle(n int) {
	for i := 0; i < n; i++ {
		in.frames = append(in.frames, nil)
	}
}

// InjectTouchDrag queues a touch drag of dy pixels spread evenly over
// frames frames. Minimum frames is 1.
func (in *InjectedInput) InjectTouchDrag(dy float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	step := dy / float64(frames)
	for i := 0; i < frames; i++ {
		in.frames = append(in.frames, []InputEvent{{Kind: InputKindTouch, DY: step}})
	}
}

// Poll pops one queued frame, or defers to the wrapped source.
func (in *InjectedInput) Poll(dst []InputEvent) []InputEvent {
	if len(in.frames) == 0 {
		if in.next != nil {
			return in.next.Poll(dst)
		}
		return dst
	}
	f := in.frames[0]
	copy(in.frames, in.frames[1:])
	in.frames[len(in.frames)-1] = nil
	in.frames = in.frames[:len(in.frames)-1]
	return append(dst, f...)
}
