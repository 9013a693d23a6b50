package viewer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/fractal"
)

// maxBatchVerts bounds the vertex buffer before it is submitted early.
const maxBatchVerts = 1 << 18

// whitePixelImage is the shared 1x1 source image for untextured fills.
// No sync.Once: ebiten game code is single-threaded.
var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Surface is a fractal.Surface that draws onto an *ebiten.Image. Fills are
// transformed on the CPU and accumulated into a single vertex buffer, which
// is submitted with one DrawTriangles32 call on Flush.
type Surface struct {
	target *ebiten.Image
	stack  *fractal.MatrixStack
	fill   fractal.Color

	verts []ebiten.Vertex
	inds  []uint32

	drawCalls int
}

// NewSurface creates a Surface drawing onto target.
func NewSurface(target *ebiten.Image) *Surface {
	return &Surface{
		target: target,
		stack:  fractal.NewMatrixStack(),
		fill:   fractal.ColorWhite,
	}
}

// Target returns the image the surface draws onto.
func (s *Surface) Target() *ebiten.Image {
	return s.target
}

// DrawCalls returns the number of DrawTriangles32 calls issued so far.
func (s *Surface) DrawCalls() int {
	return s.drawCalls
}

// Pending returns the number of vertices waiting for Flush.
func (s *Surface) Pending() int {
	return len(s.verts)
}

// Clear drops pending fills, clears the target and resets the transform.
func (s *Surface) Clear() {
	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
	s.target.Clear()
	s.stack.Reset()
}

// SetFillColor sets the color of subsequent fills. Colors are carried per
// vertex, so switching does not break the batch.
func (s *Surface) SetFillColor(c fractal.Color) {
	s.fill = c
}

// FillTriangle queues t.
func (s *Surface) FillTriangle(t fractal.Triangle) {
	s.verts, s.inds = appendPolygon(s.verts, s.inds, s.stack.Matrix(), s.fill, t.A, t.B, t.C)
	s.maybeFlush()
}

// FillRect queues sq as two triangles.
func (s *Surface) FillRect(sq fractal.Square) {
	o := sq.Origin
	s.verts, s.inds = appendPolygon(s.verts, s.inds, s.stack.Matrix(), s.fill,
		o,
		fractal.Vec2{X: o.X + sq.Size, Y: o.Y},
		fractal.Vec2{X: o.X + sq.Size, Y: o.Y + sq.Size},
		fractal.Vec2{X: o.X, Y: o.Y + sq.Size},
	)
	s.maybeFlush()
}

func (s *Surface) Push()                  { s.stack.Push() }
func (s *Surface) Pop()                   { s.stack.Pop() }
func (s *Surface) Translate(x, y float64) { s.stack.Translate(x, y) }
func (s *Surface) Scale(sx, sy float64)   { s.stack.Scale(sx, sy) }

func (s *Surface) maybeFlush() {
	if len(s.verts) >= maxBatchVerts {
		_ = s.Flush()
	}
}

// Flush submits the pending vertices to the target.
func (s *Surface) Flush() error {
	if len(s.verts) == 0 {
		return nil
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	s.target.DrawTriangles32(s.verts, s.inds, ensureWhitePixel(), &op)
	s.drawCalls++
	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
	return nil
}

// appendPolygon transforms pts by m and appends them as a triangle fan with a
// premultiplied vertex color. Source coordinates sample the center of the
// white pixel.
func appendPolygon(verts []ebiten.Vertex, inds []uint32, m [6]float64, c fractal.Color, pts ...fractal.Vec2) ([]ebiten.Vertex, []uint32) {
	base := uint32(len(verts))
	a := float32(c.A)
	for _, p := range pts {
		q := fractal.TransformPoint(m, p)
		verts = append(verts, ebiten.Vertex{
			DstX:   float32(q.X),
			DstY:   float32(q.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(c.R) * a,
			ColorG: float32(c.G) * a,
			ColorB: float32(c.B) * a,
			ColorA: a,
		})
	}
	for i := 1; i+1 < len(pts); i++ {
		inds = append(inds, base, base+uint32(i), base+uint32(i+1))
	}
	return verts, inds
}
