package glide

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Background fills the screen before the scene and sections draw.
	Background Color
	// ShowDebug draws the DebugOverlay in the top-left corner.
	ShowDebug bool
	// Script, if set, is stepped before every engine update. Its input
	// source must be the engine's.
	Script *ScrollScript
}

// Run mounts e, opens a window and runs the frame loop until the window
// closes. The engine is unmounted before Run returns.
func Run(e *Engine, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = int(e.viewport.X), int(e.viewport.Y)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	e.Resize(float64(cfg.Width), float64(cfg.Height))
	if err := e.Mount(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer e.Unmount()

	g := &game{engine: e, cfg: cfg, bg: colorToRGBA(cfg.Background)}
	if cfg.ShowDebug {
		g.overlay = NewDebugOverlay()
	}
	return ebiten.RunGame(g)
}

// game adapts an Engine to ebiten.Game.
type game struct {
	engine  *Engine
	cfg     RunConfig
	bg      color.NRGBA
	overlay *DebugOverlay
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if g.cfg.Script != nil {
		g.cfg.Script.Step(g.engine)
	}
	g.engine.Update(dt)
	if g.overlay != nil {
		g.overlay.Update(g.engine, dt)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.engine.Draw(screen)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.engine.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
