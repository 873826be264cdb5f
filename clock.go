package glide

import "time"

type timer struct {
	deadline time.Duration
	fn       func()
}

// Clock is a frame-advanced timer queue. Timers fire on the frame thread
// during Advance, never from another goroutine, so callbacks may touch
// engine state freely.
type Clock struct {
	now    time.Duration
	timers arena[*timer]
}

// TimerHandle cancels a pending timer.
type TimerHandle struct {
	h     handle
	clock *Clock
}

// Now returns the elapsed time accumulated through Advance.
func (c *Clock) Now() time.Duration {
	return c.now
}

// After schedules fn to run once d has elapsed on this clock.
func (c *Clock) After(d time.Duration, fn func()) TimerHandle {
	t := &timer{deadline: c.now + d, fn: fn}
	return TimerHandle{h: c.timers.add(t), clock: c}
}

// Stop cancels the timer. It reports whether the timer was still pending.
func (h TimerHandle) Stop() bool {
	if h.clock == nil {
		return false
	}
	return h.clock.timers.remove(h.h)
}

// Pending returns the number of timers that have not fired.
func (c *Clock) Pending() int {
	return c.timers.len()
}

// Advance moves the clock forward by dt seconds and fires every timer
// whose deadline has passed, in scheduling order.
func (c *Clock) Advance(dt float64) {
	c.now += time.Duration(dt * float64(time.Second))
	c.timers.each(func(h handle, t **timer) {
		if (*t).deadline > c.now {
			return
		}
		fn := (*t).fn
		c.timers.remove(h)
		fn()
	})
}

// Reset cancels every pending timer.
func (c *Clock) Reset() {
	c.timers.clear()
}
