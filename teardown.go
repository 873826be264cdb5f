package glide

// Teardown collects revocation functions for everything a mounted unit
// subscribed to, and runs them in reverse order exactly once.
type Teardown struct {
	fns  []func()
	done bool
}

// Defer adds fn to the teardown list. If the teardown has already run,
// fn runs immediately so late subscriptions cannot leak.
func (t *Teardown) Defer(fn func()) {
	if t.done {
		fn()
		return
	}
	t.fns = append(t.fns, fn)
}

// Run executes the collected functions last-in first-out. Subsequent calls
// are no-ops.
func (t *Teardown) Run() {
	if t.done {
		return
	}
	t.done = true
	for i := len(t.fns) - 1; i >= 0; i-- {
		t.fns[i]()
	}
	t.fns = nil
}

// Done reports whether Run has been called.
func (t *Teardown) Done() bool {
	return t.done
}
