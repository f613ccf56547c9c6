package catalog

import (
	"github.com/keplerscope/orrery"
)

// SecularElements are J2000 mean elements with linear rates per Julian
// century, as in the approximate planetary positions of Standish.
// Angles are in degrees.
type SecularElements struct {
	A, E, I, L, LongPeri, LongNode                         float64
	ARate, ERate, IRate, LRate, LongPeriRate, LongNodeRate float64
	Period                                                 float64 // days
}

// At returns the osculating elements at jd, with jd as their epoch.
func (s SecularElements) At(jd float64) (orrery.OrbitalElements, error) {
	T := orrery.JulianCenturiesSinceJ2000(jd)
	a := s.A + s.ARate*T
	e := s.E + s.ERate*T
	i := s.I + s.IRate*T
	L := s.L + s.LRate*T
	ϖ := s.LongPeri + s.LongPeriRate*T
	Ω := s.LongNode + s.LongNodeRate*T
	return orrery.NewOrbitalElements(a, e, i, Ω, ϖ-Ω, L-ϖ, jd, s.Period)
}

// EarthMoonBarycenter elements, valid from 1800 to 2050.
var EarthMoonBarycenter = SecularElements{
	A: 1.00000018, E: 0.01673163, I: -0.00054346,
	L: 100.46691572, LongPeri: 102.93005885, LongNode: -5.11260389,
	ARate: -0.00000003, ERate: -0.00003661, IRate: -0.01337178,
	LRate: 35999.37306329, LongPeriRate: 0.31795260, LongNodeRate: -0.24123856,
	Period: orrery.SiderealYear,
}

// MoonDistanceKm is the semi major axis of the lunar orbit.
const MoonDistanceKm = 384399.0

// EarthJ2000 is the Earth-Moon barycenter at J2000.
var EarthJ2000 = mustElements(EarthMoonBarycenter.At(orrery.J2000))

// MoonJ2000 is the geocentric lunar orbit at J2000, referred to the ecliptic.
var MoonJ2000 = mustElements(orrery.NewOrbitalElements(orrery.KmToAU(MoonDistanceKm), 0.0549, 5.145, 125.08, 318.15, 135.27, orrery.J2000, 27.321661))

func mustElements(el orrery.OrbitalElements, err error) orrery.OrbitalElements {
	if err != nil {
		panic(err)
	}
	return el
}

// SolarSystem returns the Sun at the origin, the eight planets with their mean
// elements at jd and the Moon around the Earth.
func SolarSystem(jd float64) ([]orrery.BodySpec, error) {
	specs := []orrery.BodySpec{{Name: "Sun"}}
	for _, p := range Planets {
		el, err := MeanPlanet(p, jd)
		if err != nil {
			return nil, err
		}
		specs = append(specs, orrery.BodySpec{Name: p.String(), Parent: "Sun", Elements: &el})
	}
	moon := MoonJ2000
	specs = append(specs, orrery.BodySpec{Name: "Moon", Parent: "Earth", Elements: &moon, Segments: orrery.MinorBodySegments})
	return specs, nil
}
