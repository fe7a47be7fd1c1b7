package skia

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsFinite returns true if every element is a finite number
// (neither NaN nor an infinity).
func (m Matrix) IsFinite() bool {
	for _, v := range [6]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// determinant returns the determinant of the linear (2x2) part.
func (m Matrix) determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// IsInvertible returns true if the matrix has a well-conditioned inverse.
func (m Matrix) IsInvertible() bool {
	if !m.IsFinite() {
		return false
	}
	return math.Abs(m.determinant()) >= 1e-10
}

// singularValues returns the min and max singular values of the linear
// part. They bound how much the matrix can shrink or stretch any vector.
func (m Matrix) singularValues() (min, max float64) {
	a := m.A*m.A + m.D*m.D
	b := m.A*m.B + m.D*m.E
	c := m.B*m.B + m.E*m.E

	half := (a + c) / 2
	root := math.Sqrt((a-c)*(a-c)/4 + b*b)

	lo := half - root
	if lo < 0 {
		lo = 0
	}
	return math.Sqrt(lo), math.Sqrt(half + root)
}

// MinScale returns the smallest scale factor the matrix applies to any
// direction. Zero for degenerate matrices.
func (m Matrix) MinScale() float64 {
	min, _ := m.singularValues()
	return min
}

// MaxScale returns the largest scale factor the matrix applies to any
// direction.
func (m Matrix) MaxScale() float64 {
	_, max := m.singularValues()
	return max
}
