package glide

import (
	"errors"
	"testing"
	"time"
)

type introHarness struct {
	ticker Ticker
	clock  Clock
	lock   *ScrollLock
	scroll *NativeScroller
}

func newIntroHarness() *introHarness {
	h := &introHarness{scroll: NewNativeScroller()}
	h.lock = NewScrollLock(Unlocked, h.scroll, NewTriggerRegistry(testViewportH))
	return h
}

func (h *introHarness) frame(dt float64) {
	h.ticker.Tick(dt)
	h.clock.Advance(dt)
}

func TestIntroWaitsForReady(t *testing.T) {
	h := newIntroHarness()
	ready := NewReady()
	unlocks := 0
	h.lock.OnChange = func(s LockState) {
		if s == Unlocked {
			unlocks++
		}
	}
	in := NewIntro(h.lock, &h.clock, IntroOptions{Ready: ready, Timeout: 3 * time.Second, Hold: 500 * time.Millisecond})
	var result []error
	in.OnComplete = func(err error) { result = append(result, err) }
	in.Start(&h.ticker)
	in.Start(&h.ticker)

	if !h.lock.Locked() || !in.Waiting() {
		t.Fatal("intro did not lock")
	}
	for i := 0; i < 10; i++ {
		h.frame(0.1)
	}
	if !in.Waiting() || !h.lock.Locked() {
		t.Fatal("intro proceeded without ready")
	}
	ready.Signal()
	h.frame(0.1) // observes ready, arms hold
	for i := 0; i < 3; i++ {
		h.frame(0.1)
	}
	if in.Done() {
		t.Fatal("finished before hold elapsed")
	}
	h.frame(0.125)
	if !in.Done() || h.lock.Locked() {
		t.Fatalf("done=%v locked=%v after hold", in.Done(), h.lock.Locked())
	}
	if len(result) != 1 || result[0] != nil {
		t.Errorf("OnComplete = %v", result)
	}

	// Nothing left behind: the deadline and frame callback are gone.
	for i := 0; i < 40; i++ {
		h.frame(0.1)
	}
	if unlocks != 1 || len(result) != 1 {
		t.Errorf("unlocks=%d completions=%d, want 1/1", unlocks, len(result))
	}
	if h.ticker.Len() != 0 || h.clock.Pending() != 0 {
		t.Errorf("leaked ticker=%d timers=%d", h.ticker.Len(), h.clock.Pending())
	}
}

func TestIntroTimeoutUnlocksOnce(t *testing.T) {
	h := newIntroHarness()
	unlocks := 0
	h.lock.OnChange = func(s LockState) {
		if s == Unlocked {
			unlocks++
		}
	}
	in := NewIntro(h.lock, &h.clock, IntroOptions{Ready: NewReady(), Timeout: time.Second})
	var got error
	in.OnComplete = func(err error) { got = err }
	in.Start(&h.ticker)

	for i := 0; i < 9; i++ {
		h.frame(0.1)
	}
	if !h.lock.Locked() {
		t.Fatal("unlocked before timeout")
	}
	for i := 0; i < 30; i++ {
		h.frame(0.1)
	}
	if h.lock.Locked() || unlocks != 1 {
		t.Errorf("locked=%v unlocks=%d, want false/1", h.lock.Locked(), unlocks)
	}
	if !errors.Is(got, ErrReadinessTimeout) {
		t.Errorf("OnComplete err = %v, want ErrReadinessTimeout", got)
	}
	in.Complete()
	if unlocks != 1 {
		t.Error("Complete after timeout unlocked again")
	}
}

func TestIntroTimeline(t *testing.T) {
	h := newIntroHarness()
	p := Params{"x": 0}
	tl := NewTimeline(p, WallClock{}, Segment{To: map[string]float64{"x": 1}, Duration: 0.5})
	in := NewIntro(h.lock, &h.clock, IntroOptions{Timeout: 5 * time.Second, Timeline: tl})
	in.Start(&h.ticker)

	h.frame(0.25) // nil Ready: starts playing on the first tick
	if !tl.Playing() {
		t.Fatal("timeline not playing")
	}
	h.frame(0.25)
	if in.Done() {
		t.Fatal("done before timeline finished")
	}
	h.frame(0.25)
	if !in.Done() || h.lock.Locked() || p["x"] != 1 {
		t.Errorf("done=%v locked=%v x=%v", in.Done(), h.lock.Locked(), p["x"])
	}
}

func TestIntroCancelKeepsLock(t *testing.T) {
	h := newIntroHarness()
	in := NewIntro(h.lock, &h.clock, IntroOptions{Timeout: time.Second})
	called := false
	in.OnComplete = func(error) { called = true }
	in.Start(&h.ticker)
	in.Cancel()
	for i := 0; i < 20; i++ {
		h.frame(0.1)
	}
	if called || !h.lock.Locked() {
		t.Errorf("called=%v locked=%v after Cancel", called, h.lock.Locked())
	}
	if h.ticker.Len() != 0 || h.clock.Pending() != 0 {
		t.Error("Cancel leaked callbacks")
	}
}

func TestIntroCompleteBeforeStartIsNoop(t *testing.T) {
	h := newIntroHarness()
	in := NewIntro(h.lock, &h.clock, IntroOptions{Timeout: time.Second})
	in.Complete()
	if in.Done() {
		t.Error("idle intro completed")
	}
}
