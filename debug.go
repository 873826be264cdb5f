package glide

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var discardLogger = slog.New(slog.DiscardHandler)

// frameStats holds per-frame engine metrics. Only populated in debug mode.
type frameStats struct {
	state     ScrollState
	triggers  int
	callbacks int
	timers    int
	locked    bool
}

// SetDebugMode enables or disables per-frame stats logging and the
// on-screen overlay.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// debugLog writes the frame's stats at debug level.
func (e *Engine) debugLog() {
	if !e.debug {
		return
	}
	s := e.stats
	e.log.Debug("frame",
		"raw", s.state.Raw,
		"virtual", s.state.Virtual,
		"velocity", s.state.Velocity,
		"triggers", s.triggers,
		"callbacks", s.callbacks,
		"timers", s.timers,
		"locked", s.locked)
}

// DebugOverlay draws the engine's scroll state in the top-left corner.
// It redraws its text at most every half second.
type DebugOverlay struct {
	img     *ebiten.Image
	elapsed float64
	text    string
}

// NewDebugOverlay creates an overlay.
func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{elapsed: 1}
}

// Update refreshes the overlay text from e.
func (o *DebugOverlay) Update(e *Engine, dt float64) {
	o.elapsed += dt
	if o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0
	st := e.ScrollState()
	mode := "full"
	if !e.Capabilities().FullMotion() {
		mode = "reduced"
	}
	o.text = fmt.Sprintf("FPS: %.1f  motion: %s\nraw: %.0f  virtual: %.0f\nvel: %.2f  locked: %v\ntriggers: %d  callbacks: %d",
		ebiten.ActualFPS(), mode, st.Raw, st.Virtual, st.Velocity,
		e.ScrollLocked(), e.registryLen(), e.ticker.Len())
}

// Draw paints the overlay onto screen.
func (o *DebugOverlay) Draw(screen *ebiten.Image) {
	if o.img == nil {
		o.img = ebiten.NewImage(260, 64)
	}
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
	screen.DrawImage(o.img, nil)
}

func (e *Engine) registryLen() int {
	if e.registry == nil {
		return 0
	}
	return e.registry.Len()
}
