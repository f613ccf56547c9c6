package orrery

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateBody is returned when two bodies share a name.
	ErrDuplicateBody = errors.New("duplicate body")
	// ErrUnknownParent is returned when a parent name matches no body.
	ErrUnknownParent = errors.New("unknown parent")
)

// BodySpec declares a body of a System. Parent is the name of another spec, or
// empty for a body of the root frame. Fixed is only used when Elements is nil.
type BodySpec struct {
	Name     string
	Parent   string
	Elements *OrbitalElements
	Fixed    Vector
	Segments int
}

// System is an arena of bodies in topological order: every parent precedes
// its children.
type System struct {
	bodies []*Body
	byName map[string]int
}

// NewSystem builds a System from the provided specs, in any order.
func NewSystem(specs ...BodySpec) (*System, error) {
	byName := make(map[string]int, len(specs))
	for k, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("body #%d: name is empty", k)
		}
		if _, dup := byName[spec.Name]; dup {
			return nil, fmt.Errorf("%s: %w", spec.Name, ErrDuplicateBody)
		}
		byName[spec.Name] = k
	}
	for _, spec := range specs {
		if spec.Parent == "" {
			continue
		}
		if _, found := byName[spec.Parent]; !found {
			return nil, fmt.Errorf("%s: parent %q: %w", spec.Name, spec.Parent, ErrUnknownParent)
		}
	}

	// Depth first placement with the classic three colour marking.
	const (
		unvisited = iota
		visiting
		placed
	)
	state := make([]int, len(specs))
	sys := &System{bodies: make([]*Body, 0, len(specs)), byName: make(map[string]int, len(specs))}
	var place func(k int, trail []string) error
	place = func(k int, trail []string) error {
		switch state[k] {
		case placed:
			return nil
		case visiting:
			return fmt.Errorf("%s: %w", strings.Join(append(trail, specs[k].Name), " -> "), ErrCyclicParent)
		}
		state[k] = visiting
		spec := specs[k]
		var parent *Body
		if spec.Parent != "" {
			pk := byName[spec.Parent]
			if err := place(pk, append(trail, spec.Name)); err != nil {
				return err
			}
			parent = sys.bodies[sys.byName[spec.Parent]]
		}
		b, err := NewBody(spec.Name, spec.Elements, parent)
		if err != nil {
			return err
		}
		if spec.Elements == nil {
			b.fixed = spec.Fixed
		}
		b.segments = spec.Segments
		b.index = len(sys.bodies)
		sys.byName[spec.Name] = b.index
		sys.bodies = append(sys.bodies, b)
		state[k] = placed
		return nil
	}
	for k := range specs {
		if err := place(k, nil); err != nil {
			return nil, err
		}
	}
	return sys, nil
}

// Body returns the body with this name, or nil.
func (s *System) Body(name string) *Body {
	if k, found := s.byName[name]; found {
		return s.bodies[k]
	}
	return nil
}

// Bodies returns all bodies, parents first.
func (s *System) Bodies() []*Body {
	return append([]*Body(nil), s.bodies...)
}

// Len returns the number of bodies.
func (s *System) Len() int {
	return len(s.bodies)
}

// Children returns the direct children of the named body.
func (s *System) Children(name string) []*Body {
	var children []*Body
	for _, b := range s.bodies {
		if b.parent != nil && b.parent.name == name {
			children = append(children, b)
		}
	}
	return children
}

// Walk calls fn for every body in topological order with its absolute
// position at jd. The state is nil for orbit-less bodies. Each relative
// position is evaluated once.
func (s *System) Walk(ev Evaluator, jd float64, fn func(b *Body, abs Vector, st *State)) {
	abs := make([]Vector, len(s.bodies))
	for k, b := range s.bodies {
		var base Vector
		if b.parent != nil {
			base = abs[b.parent.index]
		}
		if b.elements == nil {
			abs[k] = base.Add(b.fixed)
			fn(b, abs[k], nil)
			continue
		}
		st := ev.State(*b.elements, jd)
		abs[k] = base.Add(st.Display)
		fn(b, abs[k], &st)
	}
}

// Positions returns the absolute position of every body at jd, by name.
func (s *System) Positions(ev Evaluator, jd float64) map[string]Vector {
	positions := make(map[string]Vector, len(s.bodies))
	s.Walk(ev, jd, func(b *Body, abs Vector, _ *State) {
		positions[b.name] = abs
	})
	return positions
}
