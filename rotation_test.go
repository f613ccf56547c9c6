package orrery

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// r1 and r3 are the elementary rotations about the 1st and 3rd axes.
func r1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

func r3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

func TestPerifocalToEcliptic(t *testing.T) {
	for _, angles := range [][3]float64{
		{0, 0, 0},
		{0.1, 0.2, 0.3},
		{math.Pi / 2, math.Pi, -math.Pi / 4},
		{Deg2rad(7.155), Deg2rad(-5.11260389), Deg2rad(114.20783)},
	} {
		i, Ω, ω := angles[0], angles[1], angles[2]
		var exp mat.Dense
		exp.Mul(r3(-Ω), r1(-i))
		exp.Mul(&exp, r3(-ω))
		R := PerifocalToEcliptic(i, Ω, ω)
		if !mat.EqualApprox(R, &exp, 1e-14) {
			t.Fatalf("closed form differs from R3(-Ω)R1(-i)R3(-ω) for %v:\n%v\n%v", angles, mat.Formatted(R), mat.Formatted(&exp))
		}
		// Orthonormal
		var rrT mat.Dense
		rrT.Mul(R, R.T())
		id := mat.NewDiagDense(3, []float64{1, 1, 1})
		if !mat.EqualApprox(&rrT, id, 1e-14) {
			t.Fatalf("R·Rᵀ != I for %v", angles)
		}
		if !scalar.EqualWithinAbs(mat.Det(R), 1, 1e-14) {
			t.Fatalf("det(R) = %f", mat.Det(R))
		}
		// Third column is the orbit normal.
		h := MxV33(R, Vector{0, 0, 1})
		expH := Vector{math.Sin(Ω) * math.Sin(i), -math.Cos(Ω) * math.Sin(i), math.Cos(i)}
		if !h.Equals(expH, 1e-14) {
			t.Fatalf("normal %s != %s", h, expH)
		}
	}
}

func TestDisplayRemap(t *testing.T) {
	v := Vector{1, 2, 3}
	d := EclipticToDisplay(v)
	if d != (Vector{1, 3, 2}) {
		t.Fatalf("display remap = %s", d)
	}
	if DisplayToEcliptic(d) != v {
		t.Fatal("remap is not invertible")
	}
}
