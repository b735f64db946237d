package mint

import "math"

// Transform is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// It maps a local point p to p' = M·p + t. Every mutating method applies the
// new operation in the current local frame (post-multiplication).
type Transform [6]float64

// IdentityTransform is the identity affine matrix.
var IdentityTransform = Transform{1, 0, 0, 1, 0, 0}

// Identity resets m to the identity.
func (m *Transform) Identity() {
	*m = IdentityTransform
}

// Translate moves the origin by offset, expressed in the current frame.
func (m *Transform) Translate(offset Point) {
	p := m.Apply(offset)
	m[4], m[5] = p.X, p.Y
}

// Scale scales the first local axis by size.Width and the second by
// size.Height.
func (m *Transform) Scale(size Size) {
	m[0] *= size.Width
	m[1] *= size.Width
	m[2] *= size.Height
	m[3] *= size.Height
}

// Rotate rotates the current frame counter-clockwise by angle.
func (m *Transform) Rotate(angle Angle) {
	sin, cos := math.Sincos(angle.Radians())
	a, b, c, d := m[0], m[1], m[2], m[3]
	m[0] = a*cos + c*sin
	m[1] = b*cos + d*sin
	m[2] = c*cos - a*sin
	m[3] = d*cos - b*sin
}

// Apply maps a local point through m.
func (m Transform) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Mul returns m * o, the transform that applies o first and then m.
func (m Transform) Mul(o Transform) Transform {
	return Transform{
		m[0]*o[0] + m[2]*o[1],
		m[1]*o[0] + m[3]*o[1],
		m[0]*o[2] + m[2]*o[3],
		m[1]*o[2] + m[3]*o[3],
		m[0]*o[4] + m[2]*o[5] + m[4],
		m[1]*o[4] + m[3]*o[5] + m[5],
	}
}

// Invert returns the inverse of m. A singular matrix (determinant ≈ 0)
// inverts to the identity.
func (m Transform) Invert() Transform {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Transform{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}
