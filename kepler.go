package orrery

import (
	"fmt"
	"math"
)

const (
	// KeplerTolerance is the stopping criterion on the Newton step, in radians.
	KeplerTolerance = 1e-6
	// KeplerMaxIterations caps the Newton-Raphson iterations.
	KeplerMaxIterations = 20
)

// KeplerSolution is the outcome of solving Kepler's equation M = E - e sin E.
type KeplerSolution struct {
	E          float64 // Eccentric anomaly (radians)
	Residual   float64 // |E - e sin E - M| at the returned E
	Iterations int
	Converged  bool
}

// String implements the Stringer interface.
func (s KeplerSolution) String() string {
	return fmt.Sprintf("E=%.6f residual=%.3e iter=%d converged=%t", s.E, s.Residual, s.Iterations, s.Converged)
}

// SolveKepler solves Kepler's equation for the eccentric anomaly with
// Newton-Raphson seeded at E0 = M. M is in radians and e must be in [0, 1).
// If the iteration cap is reached the best estimate is returned with Converged
// set to false; this is a loss of precision, never an error.
func SolveKepler(M, e float64) KeplerSolution {
	E := M
	sol := KeplerSolution{}
	for sol.Iterations < KeplerMaxIterations {
		sinE, cosE := math.Sincos(E)
		ΔE := (E - e*sinE - M) / (1 - e*cosE)
		E -= ΔE
		sol.Iterations++
		if math.Abs(ΔE) < KeplerTolerance {
			sol.Converged = true
			break
		}
	}
	sol.E = E
	sol.Residual = math.Abs(E - e*math.Sin(E) - M)
	return sol
}

// SolveEccentricAnomaly returns the eccentric anomaly in radians for the
// provided mean anomaly M (radians) and eccentricity e.
func SolveEccentricAnomaly(M, e float64) float64 {
	return SolveKepler(M, e).E
}
