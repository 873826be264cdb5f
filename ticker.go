package glide

// FrameFunc is called once per frame with the frame's delta in seconds.
type FrameFunc func(dt float64)

// Ticker is the per-frame callback list. The Engine runs it after the
// trigger pass, so callbacks observe this frame's scroll state.
type Ticker struct {
	callbacks arena[FrameFunc]
}

// FrameHandle revokes a callback added with Ticker.Add.
type FrameHandle struct {
	h      handle
	ticker *Ticker
}

// Add registers fn to run every frame until the returned handle is removed.
func (t *Ticker) Add(fn FrameFunc) FrameHandle {
	return FrameHandle{h: t.callbacks.add(fn), ticker: t}
}

// Remove unregisters the callback. Safe to call more than once and from
// inside the callback itself.
func (h FrameHandle) Remove() {
	if h.ticker == nil {
		return
	}
	h.ticker.callbacks.remove(h.h)
}

// Active reports whether the callback is still registered.
func (h FrameHandle) Active() bool {
	if h.ticker == nil {
		return false
	}
	_, ok := h.ticker.callbacks.get(h.h)
	return ok
}

// Len returns the number of registered callbacks.
func (t *Ticker) Len() int {
	return t.callbacks.len()
}

// Tick runs every registered callback in registration order.
func (t *Ticker) Tick(dt float64) {
	t.callbacks.each(func(_ handle, fn *FrameFunc) {
		(*fn)(dt)
	})
}

// Clear removes every callback.
func (t *Ticker) Clear() {
	t.callbacks.clear()
}
