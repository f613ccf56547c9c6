package catalog

import (
	"fmt"
	"strings"

	"github.com/keplerscope/orrery"
	"github.com/soniakeys/meeus/v3/planetelements"
)

// Planet identifies a major planet.
type Planet int

// The planets, in the order of planetelements.
const (
	Mercury Planet = planetelements.Mercury
	Venus   Planet = planetelements.Venus
	Earth   Planet = planetelements.Earth
	Mars    Planet = planetelements.Mars
	Jupiter Planet = planetelements.Jupiter
	Saturn  Planet = planetelements.Saturn
	Uranus  Planet = planetelements.Uranus
	Neptune Planet = planetelements.Neptune
)

// Planets lists every planet from the Sun outwards.
var Planets = []Planet{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}

var planetNames = map[Planet]string{
	Mercury: "Mercury",
	Venus:   "Venus",
	Earth:   "Earth",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
}

// Equatorial radii in km.
var planetRadii = map[Planet]float64{
	Mercury: 2439.7,
	Venus:   6051.8,
	Earth:   6378.1363,
	Mars:    3396.19,
	Jupiter: 71492.0,
	Saturn:  60268.0,
	Uranus:  25559.0,
	Neptune: 24764.0,
}

func (p Planet) String() string {
	if name, ok := planetNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Planet(%d)", int(p))
}

// Radius returns the equatorial radius in km.
func (p Planet) Radius() float64 {
	return planetRadii[p]
}

// PlanetFromString returns the planet from its name
func PlanetFromString(name string) (Planet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mercury":
		return Mercury, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "neptune":
		return Neptune, nil
	default:
		return -1, fmt.Errorf("undefined planet '%s'", name)
	}
}

// MeanPlanet returns the heliocentric mean elements of p at jd, referred to
// the mean ecliptic and equinox of date. The epoch of the returned elements
// is jd and their period follows from the semi major axis.
// The Earth has no node on the ecliptic of date: it gets the secular
// EarthMoonBarycenter elements instead.
func MeanPlanet(p Planet, jd float64) (orrery.OrbitalElements, error) {
	if _, ok := planetNames[p]; !ok {
		return orrery.OrbitalElements{}, fmt.Errorf("undefined planet %d", int(p))
	}
	if p == Earth {
		return EarthMoonBarycenter.At(jd)
	}
	var mean planetelements.Elements
	planetelements.Mean(int(p), jd, &mean)
	Ω := mean.Node.Deg()
	ϖ := mean.Peri.Deg()
	return orrery.NewOrbitalElements(mean.Axis, mean.Ecc, mean.Inc.Deg(), Ω, ϖ-Ω, mean.Lon.Deg()-ϖ, jd, orrery.PeriodFromSemiMajorAxis(mean.Axis))
}

