package orrery

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PerifocalToEcliptic returns the 3-1-3 rotation R3(-Ω)·R1(-i)·R3(-ω) which
// takes a perifocal vector (P toward periapsis, W along the orbit normal) into
// the ecliptic frame. All angles are in radians.
func PerifocalToEcliptic(i, Ω, ω float64) *mat.Dense {
	si, ci := math.Sincos(i)
	sΩ, cΩ := math.Sincos(Ω)
	sω, cω := math.Sincos(ω)
	return mat.NewDense(3, 3, []float64{cΩ*cω - sΩ*sω*ci, -cΩ*sω - sΩ*cω*ci, sΩ * si,
		sΩ*cω + cΩ*sω*ci, -sΩ*sω + cΩ*cω*ci, -cΩ * si,
		sω * si, cω * si, ci})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m mat.Matrix, v Vector) Vector {
	var rVec mat.VecDense
	rVec.MulVec(m, mat.NewVecDense(3, v.Slice()))
	return Vector{rVec.AtVec(0), rVec.AtVec(1), rVec.AtVec(2)}
}

// EclipticToDisplay remaps ecliptic axes to the display convention: the
// display Y axis is "up" and carries the ecliptic Z (north) component, so the
// ecliptic plane lies in the display X-Z plane. Every body uses this mapping.
func EclipticToDisplay(v Vector) Vector {
	return Vector{v.X, v.Z, v.Y}
}

// DisplayToEcliptic is the inverse of EclipticToDisplay.
func DisplayToEcliptic(v Vector) Vector {
	return Vector{v.X, v.Z, v.Y}
}
