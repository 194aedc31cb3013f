package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrSingularMatrix is returned when inverting a matrix whose determinant is zero
var ErrSingularMatrix = errors.New("singular matrix")

// Matrix4 is a 4x4 matrix stored in row-major order
type Matrix4 [16]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMatrix4 builds a matrix from four rows
func NewMatrix4(rows [4][4]float64) Matrix4 {
	var m Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = rows[r][c]
		}
	}
	return m
}

// At returns the element at the given row and column
func (m Matrix4) At(row, col int) float64 {
	return m[row*4+col]
}

// Multiply returns m × other
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var result Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[r*4+c] = m[r*4+0]*other[0*4+c] +
				m[r*4+1]*other[1*4+c] +
				m[r*4+2]*other[2*4+c] +
				m[r*4+3]*other[3*4+c]
		}
	}
	return result
}

// MultiplyPoint transforms a point (w=1), so translation applies
func (m Matrix4) MultiplyPoint(p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		Z: m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

// MultiplyVec transforms a vector (w=0), ignoring the translation column
func (m Matrix4) MultiplyVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// Transpose returns the transpose of the matrix
func (m Matrix4) Transpose() Matrix4 {
	var t Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c*4+r] = m[r*4+c]
		}
	}
	return t
}

// submatrix returns the 3x3 matrix left after removing one row and one column
func (m Matrix4) submatrix(skipRow, skipCol int) [9]float64 {
	var sub [9]float64
	i := 0
	for r := 0; r < 4; r++ {
		if r == skipRow {
			continue
		}
		for c := 0; c < 4; c++ {
			if c == skipCol {
				continue
			}
			sub[i] = m[r*4+c]
			i++
		}
	}
	return sub
}

func determinant3(s [9]float64) float64 {
	return s[0]*(s[4]*s[8]-s[5]*s[7]) -
		s[1]*(s[3]*s[8]-s[5]*s[6]) +
		s[2]*(s[3]*s[7]-s[4]*s[6])
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix4) Minor(row, col int) float64 {
	return determinant3(m.submatrix(row, col))
}

// Cofactor returns the signed minor at (row, col)
func (m Matrix4) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along row 0
func (m Matrix4) Determinant() float64 {
	det := 0.0
	for c := 0; c < 4; c++ {
		det += m[c] * m.Cofactor(0, c)
	}
	return det
}

// IsInvertible reports whether the determinant is non-zero
func (m Matrix4) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse computed as adjugate / determinant
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix4{}, ErrSingularMatrix
	}

	var inv Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// Transposed store builds the adjugate in place
			inv[c*4+r] = m.Cofactor(r, c) / det
		}
	}
	return inv, nil
}

// ApproxEqual compares two matrices component-wise within Epsilon
func (m Matrix4) ApproxEqual(other Matrix4) bool {
	for i := range m {
		if !FloatEqual(m[i], other[i]) {
			return false
		}
	}
	return true
}

// String formats the matrix one row per line
func (m Matrix4) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&sb, "| %g %g %g %g |\n", m[r*4], m[r*4+1], m[r*4+2], m[r*4+3])
	}
	return sb.String()
}

// Translation returns a translation matrix
func Translation(x, y, z float64) Matrix4 {
	return Matrix4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Scaling returns a scaling matrix
func Scaling(x, y, z float64) Matrix4 {
	return Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotationX returns a rotation about the x axis by r radians
func RotationX(r float64) Matrix4 {
	cos, sin := math.Cos(r), math.Sin(r)
	return Matrix4{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a rotation about the y axis by r radians
func RotationY(r float64) Matrix4 {
	cos, sin := math.Cos(r), math.Sin(r)
	return Matrix4{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a rotation about the z axis by r radians
func RotationZ(r float64) Matrix4 {
	cos, sin := math.Cos(r), math.Sin(r)
	return Matrix4{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Shearing returns a shear matrix; xy moves x in proportion to y, and so on
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	return Matrix4{
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	}
}

// The builders below left-multiply the elementary transform onto m, so a
// chain like Identity().RotatedX(a).Translated(x, y, z) rotates first and
// translates second when applied to a point.

// Translated returns Translation(x, y, z) × m
func (m Matrix4) Translated(x, y, z float64) Matrix4 {
	return Translation(x, y, z).Multiply(m)
}

// Scaled returns Scaling(x, y, z) × m
func (m Matrix4) Scaled(x, y, z float64) Matrix4 {
	return Scaling(x, y, z).Multiply(m)
}

// RotatedX returns RotationX(r) × m
func (m Matrix4) RotatedX(r float64) Matrix4 {
	return RotationX(r).Multiply(m)
}

// RotatedY returns RotationY(r) × m
func (m Matrix4) RotatedY(r float64) Matrix4 {
	return RotationY(r).Multiply(m)
}

// RotatedZ returns RotationZ(r) × m
func (m Matrix4) RotatedZ(r float64) Matrix4 {
	return RotationZ(r).Multiply(m)
}

// Sheared returns Shearing(...) × m
func (m Matrix4) Sheared(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	return Shearing(xy, xz, yx, yz, zx, zy).Multiply(m)
}
