package glide

import (
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultBreakpoint is the viewport width, in pixels, at or below which the
// viewport counts as narrow.
const DefaultBreakpoint = 767

// CapabilityFlags selects between the full-motion and reduced-motion code
// paths. Flags are computed once per mount and never change afterwards;
// resizing across the breakpoint mid-session does not re-detect.
type CapabilityFlags struct {
	ReducedMotion  bool
	NarrowViewport bool
}

// FullMotion reports whether smooth scrolling and per-frame effects
// should run.
func (f CapabilityFlags) FullMotion() bool {
	return !f.ReducedMotion && !f.NarrowViewport
}

// Environment exposes the predicates capability detection reads.
type Environment interface {
	PrefersReducedMotion() bool
	ViewportWidth() float64
}

// Detect evaluates the environment once. breakpoint <= 0 selects
// DefaultBreakpoint.
func Detect(env Environment, breakpoint float64) CapabilityFlags {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return CapabilityFlags{
		ReducedMotion:  env.PrefersReducedMotion(),
		NarrowViewport: env.ViewportWidth() <= breakpoint,
	}
}

// StaticEnvironment is an Environment with fixed answers.
type StaticEnvironment struct {
	ReducedMotion bool
	Width         float64
}

// PrefersReducedMotion returns e.ReducedMotion.
func (e StaticEnvironment) PrefersReducedMotion() bool { return e.ReducedMotion }

// ViewportWidth returns e.Width.
func (e StaticEnvironment) ViewportWidth() float64 { return e.Width }

// ReducedMotionEnv is the environment variable EbitenEnvironment consults
// for the reduced-motion preference, since desktop windows have no
// equivalent of the prefers-reduced-motion media query.
const ReducedMotionEnv = "GLIDE_REDUCED_MOTION"

// EbitenEnvironment reads the live window size from ebiten.
type EbitenEnvironment struct {
	// ForceReducedMotion overrides the environment variable when true.
	ForceReducedMotion bool
	// FallbackWidth is used before the window exists (ebiten reports 0).
	FallbackWidth float64
}

// PrefersReducedMotion reports the forced flag or a truthy ReducedMotionEnv.
func (e EbitenEnvironment) PrefersReducedMotion() bool {
	if e.ForceReducedMotion {
		return true
	}
	v, err := strconv.ParseBool(os.Getenv(ReducedMotionEnv))
	return err == nil && v
}

// ViewportWidth returns the window width in device-independent pixels.
func (e EbitenEnvironment) ViewportWidth() float64 {
	w, _ := ebiten.WindowSize()
	if w <= 0 {
		return e.FallbackWidth
	}
	return float64(w)
}
