package fractal

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestViewDefaults(t *testing.T) {
	v := NewView(800, 600)
	if v.Scale() != 1 {
		t.Errorf("Scale = %f, want 1", v.Scale())
	}
	if v.DisplayScale() != 1 {
		t.Errorf("DisplayScale = %f, want 1", v.DisplayScale())
	}
	assertVec(t, "center", v.Center(), Vec2{400, 150})
	assertMatrix(t, "identity view", v.Matrix(), identityTransform)
}

func TestViewZoomInOut(t *testing.T) {
	v := NewView(800, 600)
	v.ZoomIn()
	assertNear(t, "after ZoomIn", v.Scale(), 1.2)
	v.ZoomIn()
	assertNear(t, "after 2x ZoomIn", v.Scale(), 1.44)
	v.ZoomOut()
	assertNear(t, "after ZoomOut", v.Scale(), 1.2)
}

func TestViewZoomRoundtrip(t *testing.T) {
	v := NewView(800, 600)
	for _, start := range []int{0, 3, -4} {
		v.Reset()
		for i := 0; i < start; i++ {
			v.ZoomIn()
		}
		for i := 0; i > start; i-- {
			v.ZoomOut()
		}
		before := v.Scale()
		v.ZoomIn()
		v.ZoomOut()
		if !approxEqual(v.Scale(), before, 1e-12) {
			t.Errorf("start %d: scale %v after in/out, want %v", start, v.Scale(), before)
		}
	}
}

func TestViewResetIsExact(t *testing.T) {
	v := NewView(800, 600)
	for i := 0; i < 17; i++ {
		v.ZoomIn()
	}
	for i := 0; i < 5; i++ {
		v.ZoomOut()
	}
	v.Reset()
	if v.Scale() != 1 {
		t.Errorf("Scale after Reset = %v, want exactly 1", v.Scale())
	}
	v.Reset()
	if v.Scale() != 1 {
		t.Errorf("Scale after second Reset = %v, want exactly 1", v.Scale())
	}
}

func TestViewUnbounded(t *testing.T) {
	v := NewView(800, 600)
	for i := 0; i < 200; i++ {
		v.ZoomOut()
	}
	if v.Scale() <= 0 || v.Scale() >= 1e-10 {
		t.Errorf("Scale after 200 ZoomOut = %v, want tiny positive value", v.Scale())
	}
}

func TestViewOnChangeFiresPerOperation(t *testing.T) {
	v := NewView(800, 600)
	calls := 0
	v.OnChange(func() { calls++ })
	v.ZoomIn()
	v.ZoomOut()
	v.Reset()
	if calls != 3 {
		t.Errorf("OnChange fired %d times, want 3", calls)
	}
}

func TestViewMatrixKeepsCenterFixed(t *testing.T) {
	v := NewView(800, 600)
	v.ZoomIn()
	v.ZoomIn()
	c := v.Center()
	assertVec(t, "center", TransformPoint(v.Matrix(), c), c)

	// A point 10 units right of the center moves to 10*scale.
	p := TransformPoint(v.Matrix(), Vec2{c.X + 10, c.Y})
	assertNear(t, "offset", p.X-c.X, 10*v.Scale())
}

func TestViewApplyMatchesMatrix(t *testing.T) {
	v := NewView(640, 480)
	v.ZoomIn()
	rec := NewRecorder()
	v.Apply(rec)
	rec.FillRect(Square{})
	got := rec.Commands[len(rec.Commands)-1].Transform
	assertMatrix(t, "applied", got, v.Matrix())

	if rec.Count(CommandTranslate) != 2 || rec.Count(CommandScale) != 1 {
		t.Errorf("Apply recorded %d translates, %d scales; want 2, 1",
			rec.Count(CommandTranslate), rec.Count(CommandScale))
	}
}

func TestViewScreenToWorldRoundtrip(t *testing.T) {
	v := NewView(800, 600)
	v.ZoomIn()
	w := Vec2{123, 456}
	s := TransformPoint(v.Matrix(), w)
	assertVec(t, "roundtrip", v.ScreenToWorld(s), w)
}

func TestViewResize(t *testing.T) {
	v := NewView(800, 600)
	v.Resize(1000, 400)
	assertVec(t, "center", v.Center(), Vec2{500, 100})
}

func TestViewAnimatedZoom(t *testing.T) {
	v := NewView(800, 600)
	v.SetAnimation(0.5, ease.Linear)
	v.ZoomIn()

	if v.Scale() != 1.2 {
		t.Errorf("logical Scale = %v, want 1.2 immediately", v.Scale())
	}
	if v.DisplayScale() != 1 {
		t.Errorf("DisplayScale before Update = %v, want 1", v.DisplayScale())
	}
	if !v.Animating() {
		t.Fatal("Animating = false, want true")
	}

	if !v.Update(0.25) {
		t.Error("Update mid-animation returned false")
	}
	if !approxEqual(v.DisplayScale(), 1.1, 1e-3) {
		t.Errorf("DisplayScale halfway = %v, want ~1.1", v.DisplayScale())
	}

	v.Update(1)
	if v.DisplayScale() != v.Scale() {
		t.Errorf("DisplayScale after finish = %v, want %v", v.DisplayScale(), v.Scale())
	}
	if v.Animating() {
		t.Error("Animating = true after finish")
	}
	if v.Update(0.1) {
		t.Error("Update with no animation returned true")
	}
}

func TestViewDisableAnimationSnaps(t *testing.T) {
	v := NewView(800, 600)
	v.SetAnimation(1, nil)
	v.ZoomIn()
	v.SetAnimation(0, nil)
	if v.DisplayScale() != v.Scale() {
		t.Errorf("DisplayScale = %v, want %v after disabling animation", v.DisplayScale(), v.Scale())
	}
}
