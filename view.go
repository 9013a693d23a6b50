package fractal

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ZoomStep is the factor applied by one ZoomIn or ZoomOut.
const ZoomStep = 1.2

// View owns the zoom of the drawing and composes the transform that applies
// it. Zoom grows around the point (Width/2, Height/4) whatever is drawn.
// The scale is not clamped.
type View struct {
	// Width and Height are the canvas size the zoom center is derived from.
	Width, Height float64

	scale   float64
	display float64

	tween    *gween.Tween
	duration float32
	easeFn   ease.TweenFunc

	onChange func()
}

// NewView creates a View at scale 1 for a canvas of the given size.
func NewView(width, height float64) *View {
	return &View{
		Width:   width,
		Height:  height,
		scale:   1,
		display: 1,
	}
}

// OnChange sets the redraw callback fired after every zoom operation.
func (v *View) OnChange(fn func()) {
	v.onChange = fn
}

// SetAnimation makes the displayed scale ease toward the logical scale over
// duration seconds instead of jumping. A duration of 0 disables animation.
// fn defaults to ease.OutQuad.
func (v *View) SetAnimation(duration float32, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.OutQuad
	}
	v.duration = duration
	v.easeFn = fn
	if duration <= 0 {
		v.tween = nil
		v.display = v.scale
	}
}

// Resize updates the canvas size.
func (v *View) Resize(width, height float64) {
	v.Width = width
	v.Height = height
}

// Scale returns the logical zoom factor.
func (v *View) Scale() float64 {
	return v.scale
}

// DisplayScale returns the zoom factor currently drawn. It equals Scale
// unless a zoom animation is in flight.
func (v *View) DisplayScale() float64 {
	return v.display
}

// Animating reports whether a zoom animation is in flight.
func (v *View) Animating() bool {
	return v.tween != nil
}

// ZoomIn multiplies the scale by ZoomStep and redraws.
func (v *View) ZoomIn() {
	v.setScale(v.scale * ZoomStep)
}

// ZoomOut divides the scale by ZoomStep and redraws.
func (v *View) ZoomOut() {
	v.setScale(v.scale / ZoomStep)
}

// Reset sets the scale back to exactly 1 and redraws.
func (v *View) Reset() {
	v.setScale(1)
}

func (v *View) setScale(s float64) {
	v.scale = s
	if v.duration > 0 {
		v.tween = gween.New(float32(v.display), float32(s), v.duration, v.easeFn)
	} else {
		v.display = s
	}
	if v.onChange != nil {
		v.onChange()
	}
}

// Update advances the zoom animation by dt seconds. It reports whether the
// displayed scale changed, in which case the caller should redraw.
func (v *View) Update(dt float32) bool {
	if v.tween == nil {
		return false
	}
	val, done := v.tween.Update(dt)
	v.display = float64(val)
	if done {
		v.display = v.scale
		v.tween = nil
	}
	return true
}

// Center returns the fixed point of the zoom.
func (v *View) Center() Vec2 {
	return Vec2{v.Width / 2, v.Height / 4}
}

// Matrix returns the view transform for the displayed scale:
//
//	Translate(cx, cy) * Scale(z) * Translate(-cx, -cy)
func (v *View) Matrix() [6]float64 {
	c := v.Center()
	z := v.display
	return [6]float64{z, 0, 0, z, c.X - z*c.X, c.Y - z*c.Y}
}

// Apply composes the view transform onto s.
func (v *View) Apply(s Surface) {
	c := v.Center()
	s.Translate(c.X, c.Y)
	s.Scale(v.display, v.display)
	s.Translate(-c.X, -c.Y)
}

// ScreenToWorld maps a canvas point back into drawing coordinates.
func (v *View) ScreenToWorld(p Vec2) Vec2 {
	return TransformPoint(invertAffine(v.Matrix()), p)
}
