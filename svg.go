package fractal

import (
	"bytes"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// svgPrecision is the fixed-point factor for SVG coordinates. svgo writes
// integer coordinates, so points are scaled up by this factor and the body is
// wrapped in a group that scales them back down.
const svgPrecision = 100

// SVGSurface is a Surface that produces an SVG document. Fills are written to
// an in-memory body so Clear can discard them; Close writes the document.
type SVGSurface struct {
	// Title is emitted as the document title when non-empty.
	Title string

	out    io.Writer
	width  int
	height int

	body      bytes.Buffer
	canvas    *svg.SVG
	stack     *MatrixStack
	fill      Color
	groupOpen bool
	shapes    int
	closed    bool

	xs, ys []int
}

// NewSVGSurface creates a width x height SVG surface writing to w on Close.
func NewSVGSurface(w io.Writer, width, height int) *SVGSurface {
	s := &SVGSurface{
		out:    w,
		width:  width,
		height: height,
		stack:  NewMatrixStack(),
		fill:   ColorWhite,
	}
	s.canvas = svg.New(&s.body)
	return s
}

// Shapes returns the number of shapes in the current body.
func (s *SVGSurface) Shapes() int {
	return s.shapes
}

// Clear discards everything drawn so far and resets the transform.
func (s *SVGSurface) Clear() {
	s.body.Reset()
	s.groupOpen = false
	s.shapes = 0
	s.stack.Reset()
}

// SetFillColor starts a new fill group when the color changes.
func (s *SVGSurface) SetFillColor(c Color) {
	if c == s.fill && s.groupOpen {
		return
	}
	s.fill = c
	s.closeGroup()
	style := "fill:" + c.Hex()
	if c.A < 1 {
		style += fmt.Sprintf(";fill-opacity:%.3f", clamp01(c.A))
	}
	s.canvas.Gstyle(style)
	s.groupOpen = true
}

func (s *SVGSurface) closeGroup() {
	if s.groupOpen {
		s.canvas.Gend()
		s.groupOpen = false
	}
}

// FillTriangle writes t as a polygon.
func (s *SVGSurface) FillTriangle(t Triangle) {
	s.polygon(t.A, t.B, t.C)
}

// FillRect writes sq as a polygon, so non-axis transforms stay exact.
func (s *SVGSurface) FillRect(sq Square) {
	o := sq.Origin
	s.polygon(o, Vec2{o.X + sq.Size, o.Y}, Vec2{o.X + sq.Size, o.Y + sq.Size}, Vec2{o.X, o.Y + sq.Size})
}

func (s *SVGSurface) polygon(pts ...Vec2) {
	if !s.groupOpen {
		s.SetFillColor(s.fill)
	}
	s.xs = s.xs[:0]
	s.ys = s.ys[:0]
	for _, p := range pts {
		q := s.stack.Apply(p)
		s.xs = append(s.xs, int(math.Round(q.X*svgPrecision)))
		s.ys = append(s.ys, int(math.Round(q.Y*svgPrecision)))
	}
	s.canvas.Polygon(s.xs, s.ys)
	s.shapes++
}

func (s *SVGSurface) Push()                  { s.stack.Push() }
func (s *SVGSurface) Pop()                   { s.stack.Pop() }
func (s *SVGSurface) Translate(x, y float64) { s.stack.Translate(x, y) }
func (s *SVGSurface) Scale(sx, sy float64)   { s.stack.Scale(sx, sy) }

// Close writes the complete SVG document. Further calls are no-ops.
func (s *SVGSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.closeGroup()

	ew := &errWriter{w: s.out}
	doc := svg.New(ew)
	doc.Start(s.width, s.height)
	if s.Title != "" {
		doc.Title(s.Title)
	}
	doc.Gtransform(fmt.Sprintf("scale(%g)", 1.0/svgPrecision))
	_, _ = ew.Write(s.body.Bytes())
	doc.Gend()
	doc.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
