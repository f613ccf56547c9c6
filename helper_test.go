package orrery

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const eps = 1e-12

// vectorsEqual returns whether two vectors are equal within a relative tolerance.
func vectorsEqual(a, b Vector) bool {
	as, bs := a.Slice(), b.Slice()
	for i := len(as) - 1; i >= 0; i-- {
		if as[i] == bs[i] {
			continue
		}
		if !scalar.EqualWithinAbsOrRel(as[i], bs[i], eps, 1e-9) {
			return false
		}
	}
	return true
}

//anglesEqual returns whether two angles in Radians are equal.
func anglesEqual(a, b float64) (bool, error) {
	diff := math.Abs(a - b)
	if diff < 1e-9 || math.Abs(diff-2*math.Pi) < 1e-9 {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10fπ", diff/math.Pi)
}

func mustElements(a, e, i, Ω, ω, M0, epoch, period float64) OrbitalElements {
	el, err := NewOrbitalElements(a, e, i, Ω, ω, M0, epoch, period)
	if err != nil {
		panic(err)
	}
	return el
}

// circular is the reference 1 AU circular orbit in the ecliptic.
func circular() OrbitalElements {
	return mustElements(1, 0, 0, 0, 0, 0, J2000, 365.25)
}
