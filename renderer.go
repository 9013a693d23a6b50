package fractal

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownKind is returned by Renderer.Draw for a Kind outside Kinds.
var ErrUnknownKind = errors.New("unknown fractal kind")

// Margin is the inset of the initial Sierpinski triangle from the canvas edges.
const Margin = 50

// MengerFraction is the share of the canvas width covered by the initial
// Menger square.
const MengerFraction = 0.8

// DrawStats describes the most recent successful draw.
type DrawStats struct {
	Kind    Kind
	Depth   int
	Leaves  int
	Scale   float64
	Elapsed time.Duration
}

// Renderer validates draw requests and runs the matching subdivider against a
// Surface under the View's transform. Every accepted draw clears and repaints
// the whole surface; a rejected one leaves the surface and the view untouched.
type Renderer struct {
	surface Surface
	view    *View

	stats DrawStats
	drawn bool
}

// NewRenderer creates a Renderer drawing onto s. The canvas size is taken
// from view.
func NewRenderer(s Surface, view *View) *Renderer {
	return &Renderer{surface: s, view: view}
}

// Surface returns the surface the renderer draws onto.
func (r *Renderer) Surface() Surface {
	return r.surface
}

// View returns the renderer's view.
func (r *Renderer) View() *View {
	return r.view
}

// SetSurface swaps the target surface, e.g. after a window resize.
func (r *Renderer) SetSurface(s Surface) {
	r.surface = s
}

// Stats returns the stats of the last successful draw. ok is false before
// the first one.
func (r *Renderer) Stats() (stats DrawStats, ok bool) {
	return r.stats, r.drawn
}

// InitialTriangle returns the triangle the Sierpinski fractal starts from:
// apex centered at the top, base along the bottom, inset by Margin.
func (r *Renderer) InitialTriangle() Triangle {
	w, h := r.view.Width, r.view.Height
	return Triangle{
		A: Vec2{w / 2, Margin},
		B: Vec2{Margin, h - Margin},
		C: Vec2{w - Margin, h - Margin},
	}
}

// InitialSquare returns the square the Menger fractal starts from: centered,
// MengerFraction of the canvas width on a side.
func (r *Renderer) InitialSquare() Square {
	w, h := r.view.Width, r.view.Height
	size := w * MengerFraction
	return Square{Origin: Vec2{(w - size) / 2, (h - size) / 2}, Size: size}
}

// DrawInput parses text as a depth and draws kind at that depth.
func (r *Renderer) DrawInput(kind Kind, text string) error {
	depth, ok := ParseDepth(text)
	if !ok {
		err := &DepthError{Kind: kind, Input: text, NotANumber: true}
		Logger().Warn("depth rejected", "kind", kind, "input", text, "err", err)
		return err
	}
	return r.draw(kind, depth, text)
}

// Draw clears the surface and draws kind at depth. It returns a *DepthError
// wrapping ErrInvalidDepth if depth is negative or above kind.MaxDepth(), in
// which case nothing is drawn.
func (r *Renderer) Draw(kind Kind, depth int) error {
	return r.draw(kind, depth, "")
}

func (r *Renderer) draw(kind Kind, depth int, input string) error {
	if kind != KindSierpinski && kind != KindMenger {
		return fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if err := ValidateDepth(kind, depth); err != nil {
		var de *DepthError
		if errors.As(err, &de) && input != "" {
			de.Input = input
		}
		Logger().Warn("depth rejected", "kind", kind, "depth", depth, "err", err)
		return err
	}

	start := time.Now()
	s := r.surface
	s.Clear()
	s.Push()
	r.view.Apply(s)
	s.SetFillColor(kind.FillColor())

	var leaves int
	switch kind {
	case KindSierpinski:
		leaves = FillSierpinski(s, r.InitialTriangle(), depth)
	case KindMenger:
		leaves = FillMenger(s, r.InitialSquare(), depth)
	}
	s.Pop()

	if f, ok := s.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush surface: %w", err)
		}
	}

	r.stats = DrawStats{
		Kind:    kind,
		Depth:   depth,
		Leaves:  leaves,
		Scale:   r.view.DisplayScale(),
		Elapsed: time.Since(start),
	}
	r.drawn = true
	Logger().Debug("draw",
		"kind", kind,
		"depth", depth,
		"leaves", leaves,
		"scale", r.stats.Scale,
		"elapsed", r.stats.Elapsed)
	return nil
}
