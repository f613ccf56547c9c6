package catalog

import (
	"testing"

	"github.com/keplerscope/orrery"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestSecularElements(t *testing.T) {
	el, err := EarthMoonBarycenter.At(orrery.J2000)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := el.Equals(EarthJ2000); !ok {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(el.Node(), -5.11260389, 1e-12) || !scalar.EqualWithinAbs(el.Peri(), 102.93005885+5.11260389, 1e-12) {
		t.Fatalf("Ω or ω invalid: %s", el)
	}
	if !scalar.EqualWithinAbs(el.M0(), 100.46691572-102.93005885, 1e-12) {
		t.Fatalf("M0 invalid: %s", el)
	}
	// One century later
	later, err := EarthMoonBarycenter.At(orrery.J2000 + orrery.DaysPerJulianCentury)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(later.E(), 0.01673163-0.00003661, 1e-12) {
		t.Fatalf("e after a century = %f", later.E())
	}
	// About one AU from the Sun.
	if r := orrery.EclipticPosition(el, orrery.J2000).Norm(); !scalar.EqualWithinAbs(r, 1, 0.02) {
		t.Fatalf("Earth at %f AU", r)
	}
}

func TestMoonJ2000(t *testing.T) {
	if !scalar.EqualWithinRel(orrery.AUToKm(MoonJ2000.A()), MoonDistanceKm, 1e-12) {
		t.Fatalf("moon a = %f km", orrery.AUToKm(MoonJ2000.A()))
	}
	r := orrery.AUToKm(orrery.EclipticPosition(MoonJ2000, orrery.J2000+3).Norm())
	if r < 356000 || r > 407000 {
		t.Fatalf("moon at %f km", r)
	}
}

func TestSolarSystem(t *testing.T) {
	specs, err := SolarSystem(orrery.J2000)
	if err != nil {
		t.Fatal(err)
	}
	sys, err := orrery.NewSystem(specs...)
	if err != nil {
		t.Fatal(err)
	}
	if sys.Len() != 10 {
		t.Fatalf("%d bodies", sys.Len())
	}
	ev := orrery.NewEvaluator(orrery.DefaultScaler)
	pos := sys.Positions(ev, orrery.J2000)
	if pos["Sun"] != (orrery.Vector{}) {
		t.Fatal("the sun is not at the origin")
	}
	d := orrery.DefaultScaler.ToPhysical(pos["Moon"].Sub(pos["Earth"]).Norm())
	if d < 356000 || d > 407000 {
		t.Fatalf("moon %f km from the earth", d)
	}
	if sys.Body("Moon").Segments() != orrery.MinorBodySegments {
		t.Fatal("moon path resolution not set")
	}
	for _, name := range []string{"Mercury", "Neptune"} {
		if sys.Body(name) == nil || sys.Body(name).Parent().Name() != "Sun" {
			t.Fatalf("%s is missing", name)
		}
	}
}
