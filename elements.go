package orrery

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// SiderealYear in days.
	SiderealYear = 365.256363004

	eccentricityε = 5e-5 // 0.00005
	angleε        = 5e-3 // 0.005 degrees
	distanceε     = 1e-9 // AU, about 15 cm
	periodε       = 1e-6 // days
)

var (
	// ErrEccentricity is returned for eccentricities outside [0, 1).
	ErrEccentricity = errors.New("eccentricity must be in [0, 1)")
	// ErrSemiMajorAxis is returned for non positive semi major axes.
	ErrSemiMajorAxis = errors.New("semi major axis must be positive")
	// ErrPeriod is returned for non positive periods.
	ErrPeriod = errors.New("period must be positive")
	// ErrNotFinite is returned when a field is NaN or infinite.
	ErrNotFinite = errors.New("element must be finite")
)

// OrbitalElements describes a closed Keplerian orbit relative to its parent
// frame. It is immutable once built: use NewOrbitalElements.
type OrbitalElements struct {
	a      float64 // semi major axis (AU)
	e      float64 // eccentricity
	i      float64 // inclination (degrees)
	Ω      float64 // longitude of the ascending node (degrees)
	ω      float64 // argument of periapsis (degrees)
	m0     float64 // mean anomaly at epoch (degrees)
	epoch  float64 // Julian date of m0
	period float64 // days
}

// NewOrbitalElements returns validated orbital elements. Angles are in degrees,
// a in AU, epoch as a Julian date and period in days. The period is not
// re-derived from a.
func NewOrbitalElements(a, e, i, Ω, ω, M0, epoch, period float64) (OrbitalElements, error) {
	fields := []struct {
		name string
		v    float64
	}{{"a", a}, {"e", e}, {"i", i}, {"Ω", Ω}, {"ω", ω}, {"M0", M0}, {"epoch", epoch}, {"period", period}}
	for _, f := range fields {
		if !isFinite(f.v) {
			return OrbitalElements{}, fmt.Errorf("%s=%v: %w", f.name, f.v, ErrNotFinite)
		}
	}
	if e < 0 || e >= 1 {
		return OrbitalElements{}, fmt.Errorf("e=%v: %w", e, ErrEccentricity)
	}
	if a <= 0 {
		return OrbitalElements{}, fmt.Errorf("a=%v: %w", a, ErrSemiMajorAxis)
	}
	if period <= 0 {
		return OrbitalElements{}, fmt.Errorf("period=%v: %w", period, ErrPeriod)
	}
	return OrbitalElements{a: a, e: e, i: i, Ω: Ω, ω: ω, m0: M0, epoch: epoch, period: period}, nil
}

// NewOrbitalElementsFromPerihelion is like NewOrbitalElements but derives the
// mean anomaly at epoch from tp, the Julian date of a perihelion passage.
func NewOrbitalElementsFromPerihelion(a, e, i, Ω, ω, tp, epoch, period float64) (OrbitalElements, error) {
	if !isFinite(tp) {
		return OrbitalElements{}, fmt.Errorf("tp=%v: %w", tp, ErrNotFinite)
	}
	if period <= 0 || !isFinite(period) {
		// Checked here since the mean anomaly divides by it.
		return NewOrbitalElements(a, e, i, Ω, ω, 0, epoch, period)
	}
	M0 := normalizeDeg(360 * (epoch - tp) / period)
	return NewOrbitalElements(a, e, i, Ω, ω, M0, epoch, period)
}

// PeriodFromSemiMajorAxis returns the heliocentric period in days of an orbit
// with semi major axis a in AU, from Kepler's third law.
func PeriodFromSemiMajorAxis(a float64) float64 {
	return SiderealYear * math.Pow(a, 1.5)
}

// A returns the semi major axis in AU.
func (o OrbitalElements) A() float64 { return o.a }

// E returns the eccentricity.
func (o OrbitalElements) E() float64 { return o.e }

// I returns the inclination in degrees.
func (o OrbitalElements) I() float64 { return o.i }

// Node returns the longitude of the ascending node Ω in degrees.
func (o OrbitalElements) Node() float64 { return o.Ω }

// Peri returns the argument of periapsis ω in degrees.
func (o OrbitalElements) Peri() float64 { return o.ω }

// M0 returns the mean anomaly at epoch in degrees.
func (o OrbitalElements) M0() float64 { return o.m0 }

// Epoch returns the Julian date at which M0 is valid.
func (o OrbitalElements) Epoch() float64 { return o.epoch }

// Period returns the orbital period in days.
func (o OrbitalElements) Period() float64 { return o.period }

// Elements returns all the elements, angles in degrees.
func (o OrbitalElements) Elements() (a, e, i, Ω, ω, M0, epoch, period float64) {
	return o.a, o.e, o.i, o.Ω, o.ω, o.m0, o.epoch, o.period
}

// MeanMotion returns n in radians per day.
func (o OrbitalElements) MeanMotion() float64 {
	return twoPi / o.period
}

// MeanAnomaly returns the mean anomaly in radians at jd, wrapped into [0, 2π).
func (o OrbitalElements) MeanAnomaly(jd float64) float64 {
	return NormalizeAngle(o.m0*deg2rad + o.MeanMotion()*(jd-o.epoch))
}

// SemiParameter returns the semi parameter p in AU.
func (o OrbitalElements) SemiParameter() float64 {
	return o.a * (1 - o.e*o.e)
}

// Apoapsis returns the apoapsis distance in AU.
func (o OrbitalElements) Apoapsis() float64 {
	return o.a * (1 + o.e)
}

// Periapsis returns the periapsis distance in AU.
func (o OrbitalElements) Periapsis() float64 {
	return o.a * (1 - o.e)
}

// LongitudeOfPeriapsis returns ϖ = Ω + ω in degrees, in [0, 360).
func (o OrbitalElements) LongitudeOfPeriapsis() float64 {
	return normalizeDeg(o.Ω + o.ω)
}

// String implements the stringer interface (hence the value receiver)
func (o OrbitalElements) String() string {
	return fmt.Sprintf("a=%.6f e=%.4f i=%.3f Ω=%.3f ω=%.3f M0=%.3f epoch=%.3f P=%.3f", o.a, o.e, o.i, o.Ω, o.ω, o.m0, o.epoch, o.period)
}

// Equals returns whether two element sets describe the same orbit and phase.
// Angles are compared modulo 360 degrees.
func (o OrbitalElements) Equals(o1 OrbitalElements) (bool, error) {
	if !scalar.EqualWithinAbs(o.a, o1.a, distanceε) {
		return false, errors.New("semi major axis invalid")
	}
	if !scalar.EqualWithinAbs(o.e, o1.e, eccentricityε) {
		return false, errors.New("eccentricity invalid")
	}
	if !anglesEqualDeg(o.i, o1.i) {
		return false, errors.New("inclination invalid")
	}
	if !anglesEqualDeg(o.Ω, o1.Ω) {
		return false, errors.New("ascending node invalid")
	}
	if !anglesEqualDeg(o.ω, o1.ω) {
		return false, errors.New("argument of periapsis invalid")
	}
	if !scalar.EqualWithinAbs(o.period, o1.period, periodε) {
		return false, errors.New("period invalid")
	}
	// Same phase if the mean anomalies agree at a common date.
	if !anglesEqualDeg(o.MeanAnomaly(o.epoch)/deg2rad, o1.MeanAnomaly(o.epoch)/deg2rad) {
		return false, errors.New("mean anomaly invalid")
	}
	return true, nil
}

func anglesEqualDeg(a, b float64) bool {
	d := math.Abs(normalizeDeg(a) - normalizeDeg(b))
	return d < angleε || 360-d < angleε
}
