package fractal

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// translateTransform returns the affine matrix for a translation by (x, y).
func translateTransform(x, y float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, x, y}
}

// scaleTransform returns the affine matrix for a scale by (sx, sy) about the origin.
func scaleTransform(sx, sy float64) [6]float64 {
	return [6]float64{sx, 0, 0, sy, 0, 0}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// TransformPoint applies an affine matrix to a point.
func TransformPoint(m [6]float64, p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// InvertTransform returns the inverse of m, or the identity if m is singular.
func InvertTransform(m [6]float64) [6]float64 {
	return invertAffine(m)
}

// MatrixStack tracks the current transform and the saved transforms of a
// surface. The zero value is not ready; use NewMatrixStack or Reset.
//
// Translate and Scale post-multiply, so the last call applies first to
// geometry, the same order as a canvas 2D context.
type MatrixStack struct {
	current [6]float64
	saved   [][6]float64
}

// NewMatrixStack returns a stack holding the identity transform.
func NewMatrixStack() *MatrixStack {
	return &MatrixStack{current: identityTransform}
}

// Reset restores the identity transform and drops all saved transforms.
func (m *MatrixStack) Reset() {
	m.current = identityTransform
	m.saved = m.saved[:0]
}

// Push saves the current transform.
func (m *MatrixStack) Push() {
	m.saved = append(m.saved, m.current)
}

// Pop restores the most recently saved transform. No-op on an empty stack.
func (m *MatrixStack) Pop() {
	if len(m.saved) == 0 {
		return
	}
	m.current = m.saved[len(m.saved)-1]
	m.saved = m.saved[:len(m.saved)-1]
}

// Depth returns the number of saved transforms.
func (m *MatrixStack) Depth() int {
	return len(m.saved)
}

// Translate composes a translation onto the current transform.
func (m *MatrixStack) Translate(x, y float64) {
	m.current = multiplyAffine(m.current, translateTransform(x, y))
}

// Scale composes a scale onto the current transform.
func (m *MatrixStack) Scale(sx, sy float64) {
	m.current = multiplyAffine(m.current, scaleTransform(sx, sy))
}

// Matrix returns the current transform.
func (m *MatrixStack) Matrix() [6]float64 {
	return m.current
}

// Apply maps a point through the current transform.
func (m *MatrixStack) Apply(p Vec2) Vec2 {
	return TransformPoint(m.current, p)
}
