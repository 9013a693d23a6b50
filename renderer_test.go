package fractal

import (
	"errors"
	"testing"
)

func newTestRenderer() (*Renderer, *Recorder) {
	rec := NewRecorder()
	return NewRenderer(rec, NewView(800, 600)), rec
}

func TestRendererLeafCounts(t *testing.T) {
	r, rec := newTestRenderer()
	for d := 0; d <= 10; d++ {
		rec.Reset()
		if err := r.Draw(KindSierpinski, d); err != nil {
			t.Fatalf("Draw(sierpinski, %d): %v", d, err)
		}
		if got, want := rec.Triangles(), SierpinskiLeaves(d); got != want {
			t.Errorf("sierpinski depth %d: %d triangles, want %d", d, got, want)
		}
	}
	want := 1
	for d := 0; d <= 5; d++ {
		rec.Reset()
		if err := r.Draw(KindMenger, d); err != nil {
			t.Fatalf("Draw(menger, %d): %v", d, err)
		}
		if got := rec.Rects(); got != want {
			t.Errorf("menger depth %d: %d rects, want %d", d, got, want)
		}
		want *= 8
	}
}

func TestRendererCommandSequence(t *testing.T) {
	r, rec := newTestRenderer()
	if err := r.Draw(KindMenger, 1); err != nil {
		t.Fatal(err)
	}
	want := []CommandType{
		CommandClear, CommandPush,
		CommandTranslate, CommandScale, CommandTranslate,
		CommandSetColor,
	}
	for i, ct := range want {
		if rec.Commands[i].Type != ct {
			t.Errorf("command %d = %v, want %v", i, rec.Commands[i].Type, ct)
		}
	}
	if last := rec.Commands[len(rec.Commands)-1]; last.Type != CommandPop {
		t.Errorf("last command = %v, want pop", last.Type)
	}
	if c := rec.Commands[5].Color; c != ColorMenger {
		t.Errorf("fill color = %v, want %v", c, ColorMenger)
	}
}

func TestRendererDepthZeroCoversRegion(t *testing.T) {
	r, rec := newTestRenderer()
	if err := r.Draw(KindSierpinski, 0); err != nil {
		t.Fatal(err)
	}
	want := Triangle{A: Vec2{400, 50}, B: Vec2{50, 550}, C: Vec2{750, 550}}
	var fills []Command
	for _, c := range rec.Commands {
		if c.Type == CommandFillTriangle {
			fills = append(fills, c)
		}
	}
	if len(fills) != 1 || fills[0].Triangle != want {
		t.Errorf("fills = %v, want one %v", fills, want)
	}

	rec.Reset()
	if err := r.Draw(KindMenger, 0); err != nil {
		t.Fatal(err)
	}
	wantSq := Square{Origin: Vec2{80, -20}, Size: 640}
	if rec.Rects() != 1 {
		t.Fatalf("rects = %d, want 1", rec.Rects())
	}
	for _, c := range rec.Commands {
		if c.Type == CommandFillRect && c.Square != wantSq {
			t.Errorf("square = %v, want %v", c.Square, wantSq)
		}
	}
}

func TestRendererRejectsTooDeep(t *testing.T) {
	tests := []struct {
		kind  Kind
		depth int
		max   int
	}{
		{KindSierpinski, 11, 10},
		{KindMenger, 6, 5},
		{KindSierpinski, -1, 10},
		{KindMenger, -1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			r, rec := newTestRenderer()
			err := r.Draw(tt.kind, tt.depth)
			if !errors.Is(err, ErrInvalidDepth) {
				t.Fatalf("Draw(%v, %d) = %v, want ErrInvalidDepth", tt.kind, tt.depth, err)
			}
			var de *DepthError
			if !errors.As(err, &de) || de.Max() != tt.max {
				t.Errorf("DepthError.Max = %v, want %d", de, tt.max)
			}
			if len(rec.Commands) != 0 {
				t.Errorf("%d commands issued on rejected draw, want 0", len(rec.Commands))
			}
			if _, ok := r.Stats(); ok {
				t.Error("Stats reported a draw after a rejection")
			}
		})
	}
}

func TestRendererRejectionLeavesStateUntouched(t *testing.T) {
	r, rec := newTestRenderer()
	r.View().ZoomIn()
	if err := r.Draw(KindSierpinski, 3); err != nil {
		t.Fatal(err)
	}
	before := len(rec.Commands)
	stats, _ := r.Stats()
	scale := r.View().Scale()

	if err := r.DrawInput(KindSierpinski, "11"); err == nil {
		t.Fatal("DrawInput(11) = nil, want error")
	}
	if err := r.DrawInput(KindSierpinski, "x"); err == nil {
		t.Fatal("DrawInput(x) = nil, want error")
	}
	if len(rec.Commands) != before {
		t.Errorf("commands grew from %d to %d", before, len(rec.Commands))
	}
	if r.View().Scale() != scale {
		t.Errorf("scale changed to %v", r.View().Scale())
	}
	if got, _ := r.Stats(); got != stats {
		t.Errorf("stats changed to %+v", got)
	}
}

func TestRendererDrawInput(t *testing.T) {
	r, rec := newTestRenderer()
	if err := r.DrawInput(KindSierpinski, " 3"); err != nil {
		t.Fatal(err)
	}
	if rec.Triangles() != 27 {
		t.Errorf("triangles = %d, want 27", rec.Triangles())
	}

	err := r.DrawInput(KindMenger, "abc")
	var de *DepthError
	if !errors.As(err, &de) {
		t.Fatalf("DrawInput(abc) = %v, want *DepthError", err)
	}
	if !de.NotANumber || de.Input != "abc" {
		t.Errorf("DepthError = %+v, want NotANumber with input abc", de)
	}

	err = r.DrawInput(KindMenger, "9")
	if !errors.As(err, &de) || de.Input != "9" || de.Depth != 9 {
		t.Errorf("DrawInput(9) = %+v", err)
	}
}

func TestRendererAppliesViewTransform(t *testing.T) {
	r, rec := newTestRenderer()
	r.View().ZoomIn()
	if err := r.Draw(KindSierpinski, 1); err != nil {
		t.Fatal(err)
	}
	for _, c := range rec.Commands {
		if c.Type == CommandFillTriangle {
			assertMatrix(t, "fill transform", c.Transform, r.View().Matrix())
		}
	}
}

func TestRendererStats(t *testing.T) {
	r, _ := newTestRenderer()
	if err := r.Draw(KindMenger, 2); err != nil {
		t.Fatal(err)
	}
	stats, ok := r.Stats()
	if !ok {
		t.Fatal("Stats ok = false")
	}
	if stats.Kind != KindMenger || stats.Depth != 2 || stats.Leaves != 64 || stats.Scale != 1 {
		t.Errorf("Stats = %+v", stats)
	}
}

func TestRendererUnknownKind(t *testing.T) {
	r, rec := newTestRenderer()
	if err := r.Draw(Kind(9), 1); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Draw(Kind(9)) = %v, want ErrUnknownKind", err)
	}
	if len(rec.Commands) != 0 {
		t.Error("unknown kind drew something")
	}
}

type flushCounter struct {
	*Recorder
	flushes int
}

func (f *flushCounter) Flush() error {
	f.flushes++
	return nil
}

func TestRendererFlushesBatchingSurfaces(t *testing.T) {
	fc := &flushCounter{Recorder: NewRecorder()}
	r := NewRenderer(fc, NewView(800, 600))
	if err := r.Draw(KindSierpinski, 2); err != nil {
		t.Fatal(err)
	}
	if fc.flushes != 1 {
		t.Errorf("flushes = %d, want 1", fc.flushes)
	}
	_ = r.Draw(KindSierpinski, 20)
	if fc.flushes != 1 {
		t.Errorf("flushes after rejected draw = %d, want 1", fc.flushes)
	}
}

func TestRendererRedrawOnZoom(t *testing.T) {
	r, rec := newTestRenderer()
	f := NewForm(KindSierpinski, 1)
	r.View().OnChange(func() { _ = f.Submit(r) })

	r.View().ZoomIn()
	r.View().ZoomOut()
	r.View().Reset()
	if got := rec.Count(CommandClear); got != 3 {
		t.Errorf("clears = %d, want 3 (one per zoom operation)", got)
	}
}
