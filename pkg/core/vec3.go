package core

import (
	"errors"
	"math"
)

// Epsilon is the tolerance used for approximate floating point comparisons
const Epsilon = 1e-5

// ErrZeroVector is returned when normalizing a vector with zero length
var ErrZeroVector = errors.New("cannot normalize zero-length vector")

// FloatEqual reports whether a and b differ by less than Epsilon
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Vec3 represents a 3D direction or displacement (w=0)
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction.
// A zero-length vector has no direction and yields ErrZeroVector.
func (v Vec3) Normalize() (Vec3, error) {
	length := v.Length()
	if length == 0 {
		return Vec3{}, ErrZeroVector
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}, nil
}

// Reflect reflects v around the normal n: v - n*2*(v·n)
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// ApproxEqual compares two vectors component-wise within Epsilon
func (v Vec3) ApproxEqual(other Vec3) bool {
	return FloatEqual(v.X, other.X) && FloatEqual(v.Y, other.Y) && FloatEqual(v.Z, other.Z)
}

// Point represents a location in 3D space (w=1)
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Origin is the point (0,0,0)
var Origin = Point{}

// Add moves the point by a vector
func (p Point) Add(v Vec3) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// SubtractVec moves the point by the negated vector
func (p Point) SubtractVec(v Vec3) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Subtract returns the displacement from other to p
func (p Point) Subtract(other Point) Vec3 {
	return Vec3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// ToVec3 returns the displacement of p from the origin
func (p Point) ToVec3() Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}

// ApproxEqual compares two points component-wise within Epsilon
func (p Point) ApproxEqual(other Point) bool {
	return FloatEqual(p.X, other.X) && FloatEqual(p.Y, other.Y) && FloatEqual(p.Z, other.Z)
}
