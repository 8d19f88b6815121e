package svgdraw

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Matrix2D represents the affine transformation
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the transform doing nothing.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Transform multiplies the input vector by matrix m and outputs the results vector
// components.
func (m Matrix2D) Transform(x1, y1 float64) (x2, y2 float64) {
	x2 = x1*m.A + y1*m.C + m.E
	y2 = x1*m.B + y1*m.D + m.F
	return
}

// TFixed transforms a fixed.Point26_6 by the matrix
func (m Matrix2D) TFixed(a fixed.Point26_6) (b fixed.Point26_6) {
	x, y := m.Transform(float64(a.X)/64, float64(a.Y)/64)
	return fToFixed(x, y)
}

// Mult returns m * b
func (m Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: m.A*b.A + m.C*b.B,
		B: m.B*b.A + m.D*b.B,
		C: m.A*b.C + m.C*b.D,
		D: m.B*b.C + m.D*b.D,
		E: m.A*b.E + m.C*b.F + m.E,
		F: m.B*b.E + m.D*b.F + m.F,
	}
}

// Scale matrix in x and y dimensions
func (m Matrix2D) Scale(x, y float64) Matrix2D {
	return m.Mult(Matrix2D{A: x, D: y})
}

// Translate translates the matrix by x and y
func (m Matrix2D) Translate(x, y float64) Matrix2D {
	return m.Mult(Matrix2D{A: 1, D: 1, E: x, F: y})
}

// Rotate rotates the matrix by theta, in radians
func (m Matrix2D) Rotate(theta float64) Matrix2D {
	s, c := math.Sincos(theta)
	return m.Mult(Matrix2D{A: c, B: s, C: -s, D: c})
}

// SkewX skews the matrix along the x axis by theta, in radians
func (m Matrix2D) SkewX(theta float64) Matrix2D {
	return m.Mult(Matrix2D{A: 1, C: math.Tan(theta), D: 1})
}

// SkewY skews the matrix along the y axis by theta, in radians
func (m Matrix2D) SkewY(theta float64) Matrix2D {
	return m.Mult(Matrix2D{A: 1, B: math.Tan(theta), D: 1})
}

func (m Matrix2D) trMove(op MoveTo) fixed.Point26_6 { return m.TFixed(fixed.Point26_6(op)) }

func (m Matrix2D) trLine(op LineTo) fixed.Point26_6 { return m.TFixed(fixed.Point26_6(op)) }

func (m Matrix2D) trCubic(op CubicTo) (b, c, d fixed.Point26_6) {
	return m.TFixed(op[0]), m.TFixed(op[1]), m.TFixed(op[2])
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}
