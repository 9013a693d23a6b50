package viewer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// notice is the modal message shown when a draw is rejected. While it is
// visible the game ignores every action except dismissing it.
type notice struct {
	message string
	visible bool
}

func (n *notice) show(msg string) {
	n.message = msg
	n.visible = true
}

func (n *notice) dismiss() {
	n.visible = false
}

// blocks reports whether a is swallowed by the open notice.
func (n *notice) blocks(a Action) bool {
	if !n.visible {
		return false
	}
	return a.Type != ActionDismiss && a.Type != ActionSubmit && a.Type != ActionQuit
}

// draw dims the screen and prints the message in a centered box.
func (n *notice) draw(screen *ebiten.Image) {
	if !n.visible {
		return
	}
	b := screen.Bounds()
	fillRect(screen, 0, 0, float64(b.Dx()), float64(b.Dy()), color.RGBA{0, 0, 0, 140})

	const boxW, boxH = 300, 56
	x := float64(b.Dx()-boxW) / 2
	y := float64(b.Dy()-boxH) / 2
	fillRect(screen, x, y, boxW, boxH, color.RGBA{40, 40, 48, 240})
	ebitenutil.DebugPrintAt(screen, n.message, int(x)+12, int(y)+12)
	ebitenutil.DebugPrintAt(screen, "[Esc/Enter] OK", int(x)+12, int(y)+32)
}

// fillRect draws a solid rectangle by stretching the white pixel.
func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(ensureWhitePixel(), &op)
}
