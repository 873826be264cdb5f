package glide

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Ready is a one-shot readiness signal. The producer calls Signal once its
// resource exists; consumers select on Done or check IsReady each frame.
type Ready struct {
	ch   chan struct{}
	once sync.Once
}

// NewReady returns an unsignalled Ready.
func NewReady() *Ready {
	return &Ready{ch: make(chan struct{})}
}

// Signal marks the resource ready. Later calls are no-ops. Safe to call
// from any goroutine.
func (r *Ready) Signal() {
	r.once.Do(func() { close(r.ch) })
}

// Done returns a channel closed by Signal.
func (r *Ready) Done() <-chan struct{} {
	return r.ch
}

// IsReady reports whether Signal has been called, without blocking.
func (r *Ready) IsReady() bool {
	select {
	case <-r.ch:
		return true
	default:
		return false
	}
}

// Wait blocks until the signal fires, ctx ends or timeout elapses. On
// timeout it returns an error wrapping ErrReadinessTimeout. Wait is for
// goroutines outside the frame loop; the frame loop uses IsReady.
func (r *Ready) Wait(ctx context.Context, timeout time.Duration) error {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-r.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return fmt.Errorf("wait %v: %w", timeout, ErrReadinessTimeout)
	}
}
