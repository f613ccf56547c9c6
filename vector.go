package orrery

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	deg2rad = math.Pi / 180
	twoPi   = 2 * math.Pi
)

// Vector is a three dimensional position. The unit depends on the frame it is
// expressed in: AU in the ecliptic frame, display units once scaled.
type Vector struct {
	X, Y, Z float64
}

// Slice returns the components as a new []float64.
func (v Vector) Slice() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// Add returns v+o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v*s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Dot performs the inner product.
func (v Vector) Dot(o Vector) float64 {
	return floats.Dot(v.Slice(), o.Slice())
}

// Norm returns the Euclidean norm.
func (v Vector) Norm() float64 {
	return floats.Norm(v.Slice(), 2)
}

// Equals returns whether each component of o is within tol of v.
func (v Vector) Equals(o Vector, tol float64) bool {
	return scalar.EqualWithinAbs(v.X, o.X, tol) &&
		scalar.EqualWithinAbs(v.Y, o.Y, tol) &&
		scalar.EqualWithinAbs(v.Z, o.Z, tol)
}

// String implements the Stringer interface.
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Deg2rad converts degrees to radians, and enforced only positive numbers.
func Deg2rad(a float64) float64 {
	return NormalizeAngle(a * deg2rad)
}

// Rad2deg converts radians to degrees, and enforced only positive numbers.
func Rad2deg(a float64) float64 {
	return NormalizeAngle(a) / deg2rad
}

// NormalizeAngle wraps an angle in radians into [0, 2π).
func NormalizeAngle(a float64) float64 {
	wrapped := math.Mod(a, twoPi)
	if wrapped < 0 {
		wrapped += twoPi
	}
	if wrapped >= twoPi {
		// -ε + 2π may round up to 2π.
		wrapped = 0
	}
	return wrapped
}

// normalizeDeg wraps an angle in degrees into [0, 360).
func normalizeDeg(a float64) float64 {
	wrapped := math.Mod(a, 360)
	if wrapped < 0 {
		wrapped += 360
	}
	if wrapped >= 360 {
		wrapped = 0
	}
	return wrapped
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
