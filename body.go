package orrery

import (
	"errors"
	"fmt"
)

// ErrCyclicParent is returned when a body would be its own ancestor.
var ErrCyclicParent = errors.New("cyclic parentage")

// Body is a named entity which either orbits its parent frame or sits at a
// fixed offset from it. A Body is read-only once built.
type Body struct {
	name     string
	elements *OrbitalElements
	parent   *Body
	fixed    Vector // display units, used when elements is nil
	depth    int
	segments int
	index    int // position in the owning System, -1 otherwise
}

// NewBody returns a body orbiting parent with the provided elements. A nil
// parent means the orbit is about the origin. A nil elements makes the body
// coincide with its parent frame.
func NewBody(name string, elements *OrbitalElements, parent *Body) (*Body, error) {
	if name == "" {
		return nil, errors.New("body name is empty")
	}
	b := &Body{name: name, parent: parent, index: -1}
	if elements != nil {
		el := *elements
		b.elements = &el
	}
	if parent != nil {
		b.depth = parent.depth + 1
	}
	return b, nil
}

// NewFixedBody returns an orbit-less body at a fixed position in display
// units, such as a star at the origin.
func NewFixedBody(name string, at Vector) (*Body, error) {
	b, err := NewBody(name, nil, nil)
	if err != nil {
		return nil, err
	}
	b.fixed = at
	return b, nil
}

// Name returns the name of this body.
func (b *Body) Name() string { return b.name }

// Parent returns the parent body, or nil.
func (b *Body) Parent() *Body { return b.parent }

// Depth returns the number of ancestors of this body.
func (b *Body) Depth() int { return b.depth }

// Fixed returns the fixed offset from the parent frame of an orbit-less body.
func (b *Body) Fixed() Vector { return b.fixed }

// Segments returns the path resolution requested for this body, zero if unset.
func (b *Body) Segments() int { return b.segments }

// Elements returns the orbital elements of this body, and whether it has any.
func (b *Body) Elements() (OrbitalElements, bool) {
	if b.elements == nil {
		return OrbitalElements{}, false
	}
	return *b.elements, true
}

// Orbits returns whether this body has orbital elements.
func (b *Body) Orbits() bool {
	return b.elements != nil
}

// String implements the Stringer interface.
func (b *Body) String() string {
	if b.parent == nil {
		return b.name
	}
	return fmt.Sprintf("%s/%s", b.parent.String(), b.name)
}

// RelativePosition returns the position of b relative to its parent frame at jd.
func (ev Evaluator) RelativePosition(b *Body, jd float64) Vector {
	if b.elements == nil {
		return b.fixed
	}
	return ev.Position(*b.elements, jd)
}

// AbsolutePosition returns the position of b at jd in display units, summing
// the relative positions of the whole parent chain.
func (ev Evaluator) AbsolutePosition(b *Body, jd float64) Vector {
	chain := make([]*Body, 0, b.depth+1)
	for cur := b; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	var pos Vector
	for k := len(chain) - 1; k >= 0; k-- {
		pos = pos.Add(ev.RelativePosition(chain[k], jd))
	}
	return pos
}
