package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/gizmo"
)

const overlayRefresh = 0.5 // seconds

// Overlay is a small status panel showing FPS, TPS, the active manipulator
// and the dispatch counters of a layer. The text is refreshed every half
// second.
type Overlay struct {
	layer   *gizmo.DispatchLayer
	img     *ebiten.Image
	elapsed float64
	text    string
}

// NewOverlay creates an overlay reporting on layer.
func NewOverlay(layer *gizmo.DispatchLayer) *Overlay {
	return &Overlay{layer: layer, elapsed: overlayRefresh}
}

// Update advances the refresh timer by dt seconds and redraws the panel when
// it expires.
func (o *Overlay) Update(dt float64) {
	o.elapsed += dt
	if o.elapsed < overlayRefresh {
		return
	}
	o.elapsed = 0

	if o.img == nil {
		// 200x64 fits four DebugPrint lines.
		o.img = ebiten.NewImage(200, 64)
	}
	o.text = overlayText(o.layer.Context().ActiveManipulatorName(), ebiten.ActualFPS(), ebiten.ActualTPS(), o.layer.Stats())
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
}

// Draw composites the panel at (x, y) on screen. It draws nothing before the
// first Update.
func (o *Overlay) Draw(screen *ebiten.Image, x, y float64) {
	if o.img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	screen.DrawImage(o.img, &op)
}

func overlayText(active string, fps, tps float64, st gizmo.DispatchStats) string {
	if active == "" {
		active = "none"
	}
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f\ntool: %s\ndispatched: %d  handled: %d\ndropped: %d",
		fps, tps, active, st.Dispatched, st.Handled, st.Dropped)
}
