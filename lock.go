package glide

// LockState is the state of a ScrollLock.
type LockState uint8

const (
	Unlocked LockState = iota
	Locked
)

// String returns "locked" or "unlocked".
func (s LockState) String() string {
	if s == Locked {
		return "locked"
	}
	return "unlocked"
}

// ScrollLock is the single owner of page scrollability. Locking blocks raw
// input, pauses the scroller and freezes every trigger; unlocking reverses
// that and re-measures, since layout may have changed while locked. Both
// transitions are no-ops when already in the target state.
type ScrollLock struct {
	state    LockState
	scroller Scroller
	registry *TriggerRegistry

	// OnChange is called after every real transition.
	OnChange func(LockState)
}

// NewScrollLock creates a lock in the given initial state and applies that
// state to scroller and registry. Either may be nil.
func NewScrollLock(initial LockState, scroller Scroller, registry *TriggerRegistry) *ScrollLock {
	l := &ScrollLock{state: initial, scroller: scroller, registry: registry}
	if initial == Locked {
		l.block()
	}
	return l
}

// State returns the current state.
func (l *ScrollLock) State() LockState { return l.state }

// Locked reports whether scrolling is blocked.
func (l *ScrollLock) Locked() bool { return l.state == Locked }

// Lock blocks scrolling and freezes triggers.
func (l *ScrollLock) Lock() {
	if l.state == Locked {
		return
	}
	l.state = Locked
	l.block()
	if l.OnChange != nil {
		l.OnChange(Locked)
	}
}

// Unlock restores scrolling, re-enables triggers and re-measures them.
func (l *ScrollLock) Unlock() {
	if l.state == Unlocked {
		return
	}
	l.state = Unlocked
	if l.scroller != nil {
		l.scroller.Resume()
	}
	if l.registry != nil {
		// Re-measures before its single pass.
		l.registry.SetAllEnabled(true)
	}
	if l.OnChange != nil {
		l.OnChange(Unlocked)
	}
}

// Rebind points the lock at a new scroller (e.g. after falling back to
// native scrolling) and applies the current state to it.
func (l *ScrollLock) Rebind(scroller Scroller) {
	l.scroller = scroller
	if scroller == nil {
		return
	}
	if l.state == Locked {
		scroller.Pause()
	} else {
		scroller.Resume()
	}
}

func (l *ScrollLock) block() {
	if l.scroller != nil {
		l.scroller.Pause()
	}
	if l.registry != nil {
		l.registry.SetAllEnabled(false)
	}
}
