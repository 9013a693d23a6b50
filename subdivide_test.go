package fractal

import (
	"math"
	"testing"
)

var unitTriangle = Triangle{A: Vec2{400, 50}, B: Vec2{50, 550}, C: Vec2{750, 550}}

func triangleArea(t Triangle) float64 {
	return math.Abs((t.B.X-t.A.X)*(t.C.Y-t.A.Y)-(t.C.X-t.A.X)*(t.B.Y-t.A.Y)) / 2
}

func TestSierpinskiLeafCount(t *testing.T) {
	for d := 0; d <= 10; d++ {
		n := 0
		for range SierpinskiTriangles(unitTriangle, d) {
			n++
		}
		if want := SierpinskiLeaves(d); n != want {
			t.Errorf("depth %d: %d leaves, want %d", d, n, want)
		}
	}
	if SierpinskiLeaves(10) != 59049 {
		t.Errorf("SierpinskiLeaves(10) = %d, want 59049", SierpinskiLeaves(10))
	}
}

func TestSierpinskiDepthZero(t *testing.T) {
	var got []Triangle
	for tri := range SierpinskiTriangles(unitTriangle, 0) {
		got = append(got, tri)
	}
	if len(got) != 1 || got[0] != unitTriangle {
		t.Errorf("depth 0 = %v, want [%v]", got, unitTriangle)
	}
}

func TestSierpinskiDepthOneCorners(t *testing.T) {
	a, b, c := unitTriangle.A, unitTriangle.B, unitTriangle.C
	m1, m2, m3 := a.Mid(b), b.Mid(c), a.Mid(c)
	want := []Triangle{{a, m1, m3}, {m1, b, m2}, {m3, m2, c}}

	var got []Triangle
	for tri := range SierpinskiTriangles(unitTriangle, 1) {
		got = append(got, tri)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d triangles, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("triangle %d = %v, want %v", i, got[i], want[i])
		}
	}
	// The inverted middle triangle is never produced.
	middle := Triangle{m1, m2, m3}
	for _, tri := range got {
		if tri == middle {
			t.Error("middle triangle was produced")
		}
	}
}

func TestSierpinskiArea(t *testing.T) {
	full := triangleArea(unitTriangle)
	for d := 0; d <= 6; d++ {
		sum := 0.0
		for tri := range SierpinskiTriangles(unitTriangle, d) {
			sum += triangleArea(tri)
		}
		want := full * math.Pow(0.75, float64(d))
		if !approxEqual(sum, want, 1e-6) {
			t.Errorf("depth %d: area %v, want %v", d, sum, want)
		}
	}
}

func TestSierpinskiNegativeDepth(t *testing.T) {
	n := 0
	for range SierpinskiTriangles(unitTriangle, -3) {
		n++
	}
	if n != 1 {
		t.Errorf("negative depth produced %d leaves, want 1", n)
	}
}

func TestSierpinskiEarlyBreak(t *testing.T) {
	n := 0
	for range SierpinskiTriangles(unitTriangle, 8) {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Errorf("n = %d, want 5", n)
	}
}

func TestMengerLeafCount(t *testing.T) {
	sq := Square{Origin: Vec2{80, 20}, Size: 640}
	for d := 0; d <= 5; d++ {
		n := 0
		for range MengerSquares(sq, d) {
			n++
		}
		want := 1
		for range d {
			want *= 8
		}
		if n != want {
			t.Errorf("depth %d: %d leaves, want %d", d, n, want)
		}
		if got := MengerLeaves(sq.Size, d); got != want {
			t.Errorf("MengerLeaves(%v, %d) = %d, want %d", sq.Size, d, got, want)
		}
	}
}

func TestMengerDepthZero(t *testing.T) {
	sq := Square{Origin: Vec2{1, 2}, Size: 30}
	var got []Square
	for s := range MengerSquares(sq, 0) {
		got = append(got, s)
	}
	if len(got) != 1 || got[0] != sq {
		t.Errorf("depth 0 = %v, want [%v]", got, sq)
	}
}

func TestMengerDepthOneSkipsCenter(t *testing.T) {
	sq := Square{Origin: Vec2{0, 0}, Size: 90}
	var got []Square
	for s := range MengerSquares(sq, 1) {
		got = append(got, s)
	}
	want := []Square{
		{Vec2{0, 0}, 30}, {Vec2{0, 30}, 30}, {Vec2{0, 60}, 30},
		{Vec2{30, 0}, 30}, {Vec2{30, 60}, 30},
		{Vec2{60, 0}, 30}, {Vec2{60, 30}, 30}, {Vec2{60, 60}, 30},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d squares, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("square %d = %v, want %v", i, got[i], want[i])
		}
	}
	for _, s := range got {
		if s.Origin == (Vec2{30, 30}) {
			t.Error("center cell was produced")
		}
	}
}

func TestMengerResolutionGuard(t *testing.T) {
	tests := []struct {
		name  string
		size  float64
		depth int
		want  int
	}{
		{"cells exactly one unit", 9, 2, 64},
		{"guard trips at third level", 9, 3, 0},
		{"guard trips at first level", 2, 1, 0},
		{"guard ignored at depth zero", 0.5, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := 0
			for range MengerSquares(Square{Size: tt.size}, tt.depth) {
				n++
			}
			if n != tt.want {
				t.Errorf("leaves = %d, want %d", n, tt.want)
			}
			if got := MengerLeaves(tt.size, tt.depth); got != tt.want {
				t.Errorf("MengerLeaves = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMengerEarlyBreak(t *testing.T) {
	n := 0
	for range MengerSquares(Square{Size: 729}, 4) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}
}

func TestFillHelpersIssueOneFillPerLeaf(t *testing.T) {
	rec := NewRecorder()
	if n := FillSierpinski(rec, unitTriangle, 4); n != 81 {
		t.Errorf("FillSierpinski = %d, want 81", n)
	}
	if rec.Triangles() != 81 || rec.Rects() != 0 {
		t.Errorf("recorded %d triangles, %d rects", rec.Triangles(), rec.Rects())
	}

	rec.Reset()
	if n := FillMenger(rec, Square{Size: 243}, 3); n != 512 {
		t.Errorf("FillMenger = %d, want 512", n)
	}
	if rec.Rects() != 512 || rec.Triangles() != 0 {
		t.Errorf("recorded %d rects, %d triangles", rec.Rects(), rec.Triangles())
	}
}
