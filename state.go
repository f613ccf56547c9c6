package orrery

import (
	"fmt"
	"math"
)

// State is the full orbital state of a body at a Julian date.
type State struct {
	JD               float64
	MeanAnomaly      float64 // M (radians)
	EccentricAnomaly float64 // E (radians)
	TrueAnomaly      float64 // ν (radians)
	Radius           float64 // r (AU)
	Ecliptic         Vector  // AU, ecliptic frame
	Display          Vector  // display units, display axes
	Kepler           KeplerSolution
}

// String implements the Stringer interface.
func (s State) String() string {
	return fmt.Sprintf("JD=%.5f M=%.3f E=%.3f ν=%.3f r=%.6f pos=%s", s.JD, Rad2deg(s.MeanAnomaly), Rad2deg(s.EccentricAnomaly), Rad2deg(s.TrueAnomaly), s.Radius, s.Display)
}

// Evaluator converts orbital elements into display positions with a given
// scale. It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	Scaler Scaler
}

// NewEvaluator returns an Evaluator using the provided scaler.
func NewEvaluator(s Scaler) Evaluator {
	return Evaluator{Scaler: s}
}

// State returns the orbital state of the provided elements at jd.
func (ev Evaluator) State(el OrbitalElements, jd float64) State {
	s := eclipticState(el, jd)
	km := Vector{AUToKm(s.Ecliptic.X), AUToKm(s.Ecliptic.Y), AUToKm(s.Ecliptic.Z)}
	s.Display = EclipticToDisplay(ev.Scaler.ToDisplayVec(km))
	return s
}

// Position returns the position at jd in display units, relative to the
// parent frame of the orbit.
func (ev Evaluator) Position(el OrbitalElements, jd float64) Vector {
	return ev.State(el, jd).Display
}

// EclipticPosition returns the position at jd in AU in the ecliptic frame.
func EclipticPosition(el OrbitalElements, jd float64) Vector {
	return eclipticState(el, jd).Ecliptic
}

func eclipticState(el OrbitalElements, jd float64) State {
	M := el.MeanAnomaly(jd)
	sol := SolveKepler(M, el.e)
	sinE, cosE := math.Sincos(sol.E)
	ν := math.Atan2(math.Sqrt(1-el.e*el.e)*sinE, cosE-el.e)
	r := el.a * (1 - el.e*cosE)

	sinν, cosν := math.Sincos(ν)
	perifocal := Vector{r * cosν, r * sinν, 0}
	R := PerifocalToEcliptic(Deg2rad(el.i), Deg2rad(el.Ω), Deg2rad(el.ω))
	return State{
		JD:               jd,
		MeanAnomaly:      M,
		EccentricAnomaly: sol.E,
		TrueAnomaly:      ν,
		Radius:           r,
		Ecliptic:         MxV33(R, perifocal),
		Kepler:           sol,
	}
}
