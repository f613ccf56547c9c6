package orrery

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// referencePosition evaluates the ecliptic position with the argument of
// latitude u = ω + ν, independently of the rotation matrix.
func referencePosition(el OrbitalElements, jd float64) Vector {
	M := el.MeanAnomaly(jd)
	E := SolveEccentricAnomaly(M, el.e)
	ν := math.Atan2(math.Sqrt(1-el.e*el.e)*math.Sin(E), math.Cos(E)-el.e)
	r := el.a * (1 - el.e*math.Cos(E))
	Ω, i := el.Ω*math.Pi/180, el.i*math.Pi/180
	u := el.ω*math.Pi/180 + ν
	return Vector{
		r * (math.Cos(Ω)*math.Cos(u) - math.Sin(Ω)*math.Sin(u)*math.Cos(i)),
		r * (math.Sin(Ω)*math.Cos(u) + math.Cos(Ω)*math.Sin(u)*math.Cos(i)),
		r * (math.Sin(u) * math.Sin(i)),
	}
}

func TestStateCircular(t *testing.T) {
	el := circular()
	ev := NewEvaluator(DefaultScaler)
	pos := ev.Position(el, el.Epoch())
	if exp := (Vector{DefaultScaler.ToDisplay(AU), 0, 0}); pos != exp {
		t.Fatalf("position at epoch %s != %s", pos, exp)
	}
	half := ev.Position(el, el.Epoch()+el.Period()/2)
	if math.Signbit(half.X) == math.Signbit(pos.X) {
		t.Fatalf("half a period later X did not flip: %s", half)
	}
	if !scalar.EqualWithinRel(half.X, -pos.X, 1e-12) {
		t.Fatalf("half a period later %s", half)
	}
	// Quarter period: along ecliptic +Y, which is display Z.
	quarter := ev.Position(el, el.Epoch()+el.Period()/4)
	if !scalar.EqualWithinRel(quarter.Z, DefaultScaler.ToDisplay(AU), 1e-12) || math.Abs(quarter.Y) > eps {
		t.Fatalf("quarter period %s", quarter)
	}
}

func TestStateInclined(t *testing.T) {
	// Orbit tilted by 90° about the node line: the body rises along ecliptic
	// Z, shown as display Y ("up").
	el := mustElements(2, 0, 90, 0, 0, 90, J2000, 1000)
	st := NewEvaluator(DefaultScaler).State(el, J2000)
	exp := DefaultScaler.ToDisplay(AUToKm(2))
	if !scalar.EqualWithinRel(st.Display.Y, exp, 1e-12) || math.Abs(st.Display.X) > 1e-9 || math.Abs(st.Display.Z) > 1e-9 {
		t.Fatalf("display position %s expected (0, %f, 0)", st.Display, exp)
	}
	if !scalar.EqualWithinRel(st.Ecliptic.Z, 2, 1e-12) {
		t.Fatalf("ecliptic position %s", st.Ecliptic)
	}
}

func TestStateReference(t *testing.T) {
	ev := NewEvaluator(DefaultScaler)
	for _, el := range []OrbitalElements{
		// Mars-like
		mustElements(1.52371034, 0.09339410, 1.84969142, 49.55953891, 286.4968315, 19.39019754, J2000, 686.98),
		// Highly eccentric minor body
		mustElements(2.7, 0.85, 23.4, 301.2, 12.7, 250, 2460000.5, 1620.4),
		mustElements(0.39, 0.2056, 7.005, 48.331, 29.124, 174.796, J2000, 87.969),
		circular(),
	} {
		for d := -3000.0; d <= 3000; d += 37.5 {
			jd := el.Epoch() + d
			st := ev.State(el, jd)
			exp := referencePosition(el, jd)
			if !st.Ecliptic.Equals(exp, 1e-12) {
				t.Fatalf("%s at %f: %s != %s", el, jd, st.Ecliptic, exp)
			}
			if !scalar.EqualWithinAbs(st.Ecliptic.Norm(), st.Radius, 1e-12) {
				t.Fatalf("|r| = %f != r = %f", st.Ecliptic.Norm(), st.Radius)
			}
			if st.Radius < el.Periapsis()-1e-12 || st.Radius > el.Apoapsis()+1e-12 {
				t.Fatalf("r = %f outside [%f, %f]", st.Radius, el.Periapsis(), el.Apoapsis())
			}
			if !st.Kepler.Converged {
				t.Fatalf("Kepler did not converge: %s", st.Kepler)
			}
			km := Vector{AUToKm(exp.X), AUToKm(exp.Y), AUToKm(exp.Z)}
			if !vectorsEqual(DisplayToEcliptic(st.Display), ev.Scaler.ToDisplayVec(km)) {
				t.Fatalf("display %s does not match ecliptic %s", st.Display, exp)
			}
			if EclipticPosition(el, jd) != st.Ecliptic {
				t.Fatal("EclipticPosition differs from State")
			}
		}
	}
}

func TestStatePeriodic(t *testing.T) {
	ev := NewEvaluator(DefaultScaler)
	el := mustElements(1.3, 0.3, 10, 20, 30, 40, J2000, 400)
	for k := 0; k < 10; k++ {
		jd := J2000 + float64(k)*13.7
		p0 := ev.Position(el, jd)
		p1 := ev.Position(el, jd+el.Period())
		if !p0.Equals(p1, 1e-6) {
			t.Fatalf("position after one period %s != %s", p1, p0)
		}
	}
}
