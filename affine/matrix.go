// Package affine builds 3x3 homogeneous matrices for 2D affine transforms.
//
// A Matrix3 is stored column-major, element (row, col) at index col*3+row,
// which is the layout GPU uniforms expect:
//
//	| m[0] m[3] m[6] |
//	| m[1] m[4] m[7] |
//	| m[2] m[5] m[8] |
//
// Points are column vectors (x, y, 1), so a product a·b applies b first.
// A typical "scale, then rotate, then translate" pipeline is
//
//	m := affine.Multiply(affine.Translation(tx, ty),
//		affine.Multiply(affine.Rotation(theta), affine.Scaling(s, s)))
//
// Every transform built here keeps the third row at (0, 0, 1).
package affine

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

// Matrix3 is a 3x3 matrix in column-major order.
// It is an array type, so assignment copies and values never alias.
type Matrix3 [9]float64

// Identity returns the multiplicative identity.
func Identity() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translation returns a matrix that adds (tx, ty) to a point.
func Translation(tx, ty float64) Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		tx, ty, 1,
	}
}

// Rotation returns a counterclockwise rotation by theta radians.
func Rotation(theta float64) Matrix3 {
	c := math.Cos(theta)
	s := math.Sin(theta)
	return Matrix3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Scaling returns a matrix scaling x by sx and y by sy.
// Zero and negative factors are accepted as given.
func Scaling(sx, sy float64) Matrix3 {
	return Matrix3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Multiply returns the product a·b. The product is not commutative.
func Multiply(a, b Matrix3) Matrix3 {
	var out Matrix3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			out[col*3+row] = a[0*3+row]*b[col*3+0] +
				a[1*3+row]*b[col*3+1] +
				a[2*3+row]*b[col*3+2]
		}
	}
	return out
}

// Compose returns Translation(tx, ty)·Rotation(theta)·Scaling(sx, sy),
// which scales first, then rotates, then translates.
func Compose(sx, sy, theta, tx, ty float64) Matrix3 {
	return Multiply(Translation(tx, ty), Multiply(Rotation(theta), Scaling(sx, sy)))
}

// Mul returns m·b.
func (m Matrix3) Mul(b Matrix3) Matrix3 {
	return Multiply(m, b)
}

// At returns the element in the given row and column.
func (m Matrix3) At(row, col int) float64 {
	return m[col*3+row]
}

// Apply transforms the homogeneous point (x, y, 1).
// The result is not divided by w; for the affine matrices built in this
// package w is always 1.
func (m Matrix3) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[3]*y + m[6],
		m[1]*x + m[4]*y + m[7]
}

// IsAffine reports whether the third row is (0, 0, 1).
func (m Matrix3) IsAffine() bool {
	return m[2] == 0 && m[5] == 0 && m[8] == 1
}

// ApproxEqual reports whether every element of m is within eps of b.
func (m Matrix3) ApproxEqual(b Matrix3, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// Float32 returns the matrix narrowed to float32, in the same column-major
// order, ready for a mat3 uniform upload.
func (m Matrix3) Float32() [9]float32 {
	var out [9]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// CTM converts m to the six-element form used by seehuhn.de/go/geom,
// where x' = a*x + c*y + e and y' = b*x + d*y + f.
// The third row is dropped.
func (m Matrix3) CTM() matrix.Matrix {
	return matrix.Matrix{m[0], m[1], m[3], m[4], m[6], m[7]}
}
