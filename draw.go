package glide

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is scaled and tinted to draw solid section boxes.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(colorToRGBA(ColorWhite))
	}
	return whitePixel
}

// Draw renders the scene behind the page, then every section box offset by
// the virtual scroll position. Boxes outside the viewport are skipped.
func (e *Engine) Draw(screen *ebiten.Image) {
	if !e.mounted {
		return
	}
	if ss, ok := e.scene.(*ShaderScene); ok && e.renderLoop != nil {
		ss.Draw(screen)
	}

	scroll := e.scroller.State().Virtual
	view := Rect{Y: scroll, Width: e.viewport.X, Height: e.viewport.Y}
	px := ensureWhitePixel()
	var op ebiten.DrawImageOptions
	for _, b := range e.layout {
		if b.Style.Opacity <= 0 {
			continue
		}
		r := b.DrawRect()
		if !r.Intersects(view) {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Scale(r.Width, r.Height)
		op.GeoM.Translate(-r.Width/2, -r.Height/2)
		op.GeoM.Rotate(b.Style.Rotation)
		op.GeoM.Translate(r.X+r.Width/2, r.Y-scroll+r.Height/2)

		c := b.Style.Color
		a := c.A * b.Style.Opacity
		op.ColorScale.Reset()
		op.ColorScale.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
		screen.DrawImage(px, &op)
	}
	e.flushScreenshots(screen)
}
