package fractal

// Surface is the drawing capability the subdividers and the Renderer draw
// against. It mirrors the subset of a canvas 2D context the fractals need.
//
// Transforms compose in call order: after Translate(tx, ty) then Scale(s, s),
// a point p is drawn at (p*s + t). Clear wipes the surface and resets the
// transform to identity, dropping any saved transforms.
type Surface interface {
	Clear()
	SetFillColor(c Color)
	FillTriangle(t Triangle)
	FillRect(sq Square)
	Push()
	Pop()
	Translate(x, y float64)
	Scale(sx, sy float64)
}

// Flusher is implemented by surfaces that batch geometry. Renderer calls Flush
// after every successful draw so the batch lands on the target.
type Flusher interface {
	Flush() error
}
