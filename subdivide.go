package fractal

import "iter"

// SierpinskiTriangles yields the leaf triangles of a Sierpinski subdivision of
// t at the given depth. Each level splits a triangle at its edge midpoints and
// recurses into the three corner triangles; the inverted middle triangle is
// never visited. The sequence has exactly 3^depth elements. Depths below zero
// are treated as zero.
func SierpinskiTriangles(t Triangle, depth int) iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		sierpinski(t, depth, yield)
	}
}

func sierpinski(t Triangle, depth int, yield func(Triangle) bool) bool {
	if depth <= 0 {
		return yield(t)
	}
	m1 := t.A.Mid(t.B)
	m2 := t.B.Mid(t.C)
	m3 := t.A.Mid(t.C)
	return sierpinski(Triangle{t.A, m1, m3}, depth-1, yield) &&
		sierpinski(Triangle{m1, t.B, m2}, depth-1, yield) &&
		sierpinski(Triangle{m3, m2, t.C}, depth-1, yield)
}

// MengerSquares yields the leaf squares of a carpet subdivision of sq at the
// given depth: each level cuts a square into a 3x3 grid and recurses into the
// eight cells around the center. Cells are visited column by column (x offset
// outer, y offset inner).
//
// A branch whose cells would be smaller than one unit yields nothing, even if
// depth has not run out. With that guard never triggering the sequence has
// 8^depth elements.
func MengerSquares(sq Square, depth int) iter.Seq[Square] {
	return func(yield func(Square) bool) {
		menger(sq, depth, yield)
	}
}

// minCellSize is the smallest sub-square edge the carpet recursion descends into.
const minCellSize = 1

func menger(sq Square, depth int, yield func(Square) bool) bool {
	if depth <= 0 {
		return yield(sq)
	}
	n := sq.Size / 3
	if n < minCellSize {
		return true
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == 1 && j == 1 {
				continue
			}
			cell := Square{
				Origin: Vec2{sq.Origin.X + float64(i)*n, sq.Origin.Y + float64(j)*n},
				Size:   n,
			}
			if !menger(cell, depth-1, yield) {
				return false
			}
		}
	}
	return true
}

// FillSierpinski fills every leaf triangle of the subdivision of t on s and
// returns the number of triangles filled.
func FillSierpinski(s Surface, t Triangle, depth int) int {
	n := 0
	for leaf := range SierpinskiTriangles(t, depth) {
		s.FillTriangle(leaf)
		n++
	}
	return n
}

// FillMenger fills every leaf square of the subdivision of sq on s and returns
// the number of squares filled.
func FillMenger(s Surface, sq Square, depth int) int {
	n := 0
	for leaf := range MengerSquares(sq, depth) {
		s.FillRect(leaf)
		n++
	}
	return n
}

// SierpinskiLeaves returns 3^depth, the leaf count of a Sierpinski subdivision.
func SierpinskiLeaves(depth int) int {
	n := 1
	for range max(depth, 0) {
		n *= 3
	}
	return n
}

// MengerLeaves returns the leaf count of a carpet subdivision of a square with
// the given edge length, honoring the minimum cell size guard.
func MengerLeaves(size float64, depth int) int {
	if depth <= 0 {
		return 1
	}
	n := size / 3
	if n < minCellSize {
		return 0
	}
	return 8 * MengerLeaves(n, depth-1)
}
