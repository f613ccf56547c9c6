package orrery

import (
	"errors"
	"fmt"
)

const (
	// DefaultSegments is the path resolution of planets.
	DefaultSegments = 360
	// MinorBodySegments is the path resolution of fast orbiting minor bodies.
	MinorBodySegments = 128
	// MinSegments is the coarsest closed polygon.
	MinSegments = 3
)

// ErrSegments is returned when a path is requested with fewer than MinSegments segments.
var ErrSegments = fmt.Errorf("orbit path needs at least %d segments", MinSegments)

// OrbitPath is a closed polyline of one full revolution, in display units.
type OrbitPath []Vector

// Len returns the number of points.
func (p OrbitPath) Len() int {
	return len(p)
}

// Segments returns the number of segments.
func (p OrbitPath) Segments() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Closed returns whether the first and last points are within tol of each other.
func (p OrbitPath) Closed(tol float64) bool {
	if len(p) < 2 {
		return false
	}
	return p[0].Equals(p[len(p)-1], tol)
}

// SamplePath samples one full period of the orbit starting at its epoch into
// segments+1 points relative to the parent frame. The last point is the first
// one, so the path is closed.
func (ev Evaluator) SamplePath(el OrbitalElements, segments int) (OrbitPath, error) {
	if segments < MinSegments {
		return nil, fmt.Errorf("%d segments: %w", segments, ErrSegments)
	}
	path := make(OrbitPath, segments+1)
	for j := 0; j < segments; j++ {
		jd := el.epoch + float64(j)/float64(segments)*el.period
		path[j] = ev.Position(el, jd)
	}
	path[segments] = path[0]
	return path, nil
}

// MarkersAt returns the positions at the provided offsets in days from the
// epoch of the orbit, such as close approach dates.
func (ev Evaluator) MarkersAt(el OrbitalElements, daysFromEpoch []float64) []Vector {
	markers := make([]Vector, len(daysFromEpoch))
	for k, d := range daysFromEpoch {
		markers[k] = ev.Position(el, el.epoch+d)
	}
	return markers
}

// SegmentsFor returns the path resolution of b: its own if set, minor if the
// body is a moon or deeper, def otherwise.
func SegmentsFor(b *Body, def, minor int) int {
	if b.segments > 0 {
		return b.segments
	}
	if b.depth >= 2 && minor > 0 {
		return minor
	}
	return def
}

// ErrNoOrbit is returned when sampling the path of an orbit-less body.
var ErrNoOrbit = errors.New("body has no orbit")

// BodyPath samples the orbit of b relative to its parent frame.
func (ev Evaluator) BodyPath(b *Body, segments int) (OrbitPath, error) {
	if b.elements == nil {
		return nil, fmt.Errorf("%s: %w", b.name, ErrNoOrbit)
	}
	return ev.SamplePath(*b.elements, segments)
}
