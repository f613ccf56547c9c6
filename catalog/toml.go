package catalog

import (
	"fmt"
	"io"

	"github.com/keplerscope/orrery"
	"github.com/naoina/toml"
)

// sceneFile is the layout of a scene catalog:
//
//	[[body]]
//	name = "Sun"
//
//	[[body]]
//	name = "Earth"
//	parent = "Sun"
//	planet = "earth"
//
//	[[body]]
//	name = "Moon"
//	parent = "Earth"
//	segments = 128
//	[body.elements]
//	a = 0.00256955529
//	e = 0.0549
//	...
type sceneFile struct {
	Body []sceneBody `toml:"body"`
}

type sceneBody struct {
	Name     string        `toml:"name"`
	Parent   string        `toml:"parent"`
	Planet   string        `toml:"planet"`
	Segments int           `toml:"segments"`
	Fixed    []interface{} `toml:"fixed"`
	Elements Record        `toml:"elements"`
}

// LoadTOML reads a scene catalog. Bodies given by planet name get their mean
// elements at jd; bodies without elements are fixed in their parent frame.
func LoadTOML(r io.Reader, jd float64) ([]orrery.BodySpec, error) {
	var scene sceneFile
	if err := toml.NewDecoder(r).Decode(&scene); err != nil {
		return nil, err
	}
	ad := Adapter{DerivePeriod: true}
	specs := make([]orrery.BodySpec, 0, len(scene.Body))
	for k, b := range scene.Body {
		spec := orrery.BodySpec{Name: b.Name, Parent: b.Parent, Segments: b.Segments}
		if b.Name == "" {
			return nil, fmt.Errorf("body #%d has no name", k)
		}
		switch {
		case b.Planet != "" && b.Elements != nil:
			return nil, fmt.Errorf("%s: both planet and elements are set", b.Name)
		case b.Planet != "":
			p, err := PlanetFromString(b.Planet)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name, err)
			}
			el, err := MeanPlanet(p, jd)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name, err)
			}
			spec.Elements = &el
		case b.Elements != nil:
			el, err := ad.Elements(b.Elements)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name, err)
			}
			spec.Elements = &el
		}
		if len(b.Fixed) > 0 {
			if spec.Elements != nil {
				return nil, fmt.Errorf("%s: fixed position of an orbiting body", b.Name)
			}
			if len(b.Fixed) != 3 {
				return nil, fmt.Errorf("%s: fixed position needs 3 components, got %d", b.Name, len(b.Fixed))
			}
			var xyz [3]float64
			for c, v := range b.Fixed {
				f, err := toFloat(v)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", b.Name, &FieldError{Field: "fixed", Value: v, Err: err})
				}
				xyz[c] = f
			}
			spec.Fixed = orrery.Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]}
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
