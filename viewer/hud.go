package viewer

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/fractal"
)

// hudText builds the overlay text for the current state.
func (g *Game) hudText(fps float64, cursor fractal.Vec2) string {
	var b strings.Builder
	fmt.Fprintf(&b, "kind:  %s  [Tab/S/M]\n", g.form.Kind)
	fmt.Fprintf(&b, "depth: %s_  (0-%d) [Enter]\n", g.form.Depth, g.form.Max)
	fmt.Fprintf(&b, "zoom:  %.3fx  [+/-/R, wheel]\n", g.view.Scale())
	if st, ok := g.renderer.Stats(); ok {
		fmt.Fprintf(&b, "drawn: %s depth %d, %d leaves in %v\n", st.Kind, st.Depth, st.Leaves, st.Elapsed.Round(time.Microsecond))
	}
	w := g.view.ScreenToWorld(cursor)
	fmt.Fprintf(&b, "at:    %.1f, %.1f\n", w.X, w.Y)
	fmt.Fprintf(&b, "FPS:   %.1f", fps)
	return b.String()
}

// drawHUD prints the overlay in the top-left corner on a translucent panel.
func (g *Game) drawHUD(screen *ebiten.Image) {
	cx, cy := ebiten.CursorPosition()
	text := g.hudText(ebiten.ActualFPS(), fractal.Vec2{X: float64(cx), Y: float64(cy)})
	lines := strings.Count(text, "\n") + 1
	fillRect(screen, 0, 0, 300, float64(lines*16+8), color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrintAt(screen, text, 4, 4)
}
