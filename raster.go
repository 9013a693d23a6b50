package fractal

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"
)

// RasterSurface is a software Surface backed by an *image.RGBA. Fills of the
// same color accumulate in one vector.Rasterizer and are composited together
// when the color changes, on Flush, or before encoding.
type RasterSurface struct {
	// Background is painted by Clear. The zero value is transparent.
	Background Color

	img   *image.RGBA
	stack *MatrixStack
	fill  Color
	z     *vector.Rasterizer

	pending int
}

// NewRasterSurface creates a transparent width x height surface.
func NewRasterSurface(width, height int) *RasterSurface {
	return &RasterSurface{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		stack: NewMatrixStack(),
		fill:  ColorWhite,
		z:     vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image. Call Flush first to include pending fills.
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

// Clear drops pending fills, paints the background and resets the transform.
func (s *RasterSurface) Clear() {
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	s.pending = 0
	draw.Draw(s.img, b, image.NewUniform(s.Background.RGBA()), image.Point{}, draw.Src)
	s.stack.Reset()
}

// SetFillColor composites pending fills and switches the fill color.
func (s *RasterSurface) SetFillColor(c Color) {
	if c == s.fill {
		return
	}
	s.flush()
	s.fill = c
}

// FillTriangle queues t for filling.
func (s *RasterSurface) FillTriangle(t Triangle) {
	s.polygon(t.A, t.B, t.C)
}

// FillRect queues sq for filling.
func (s *RasterSurface) FillRect(sq Square) {
	o := sq.Origin
	s.polygon(o, Vec2{o.X + sq.Size, o.Y}, Vec2{o.X + sq.Size, o.Y + sq.Size}, Vec2{o.X, o.Y + sq.Size})
}

func (s *RasterSurface) polygon(pts ...Vec2) {
	p := s.stack.Apply(pts[0])
	s.z.MoveTo(float32(p.X), float32(p.Y))
	for _, q := range pts[1:] {
		p = s.stack.Apply(q)
		s.z.LineTo(float32(p.X), float32(p.Y))
	}
	s.z.ClosePath()
	s.pending++
}

func (s *RasterSurface) Push()                  { s.stack.Push() }
func (s *RasterSurface) Pop()                   { s.stack.Pop() }
func (s *RasterSurface) Translate(x, y float64) { s.stack.Translate(x, y) }
func (s *RasterSurface) Scale(sx, sy float64)   { s.stack.Scale(sx, sy) }

// Flush composites pending fills onto the image.
func (s *RasterSurface) Flush() error {
	s.flush()
	return nil
}

func (s *RasterSurface) flush() {
	if s.pending == 0 {
		return
	}
	b := s.img.Bounds()
	s.z.Draw(s.img, b, image.NewUniform(s.fill.RGBA()), image.Point{})
	s.z.Reset(b.Dx(), b.Dy())
	s.pending = 0
}

// WritePNG flushes pending fills and encodes the image as PNG.
func (s *RasterSurface) WritePNG(w io.Writer) error {
	s.flush()
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
