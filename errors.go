package glide

import "errors"

var (
	// ErrAlreadyActive is returned by SmoothScroller.Start when another
	// scroller is already driving the page.
	ErrAlreadyActive = errors.New("glide: smooth scroller already active")

	// ErrUnresolvedTarget is returned by TriggerRegistry.Register when the
	// trigger's element has not been laid out yet. Use Defer to register
	// it once layout is ready.
	ErrUnresolvedTarget = errors.New("glide: trigger target is not laid out")

	// ErrReadinessTimeout reports that a dependency never signalled
	// readiness within its bound.
	ErrReadinessTimeout = errors.New("glide: readiness timeout")

	// ErrInvalidPosition is returned by ParsePosition for malformed
	// start/end strings.
	ErrInvalidPosition = errors.New("glide: invalid trigger position")

	// ErrSceneReleased is returned by Engine.Mount when the scene given
	// to WithScene was released by an earlier Unmount.
	ErrSceneReleased = errors.New("glide: scene already released")

	// ErrNotMounted is returned by Engine operations that need Mount first.
	ErrNotMounted = errors.New("glide: engine not mounted")
)
