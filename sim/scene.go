package sim

import (
	"context"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/keplerscope/orrery"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds the number of paths sampled at once.
const DefaultWorkers = 4

// Frame holds the absolute positions of every body for one tick.
type Frame struct {
	JD        float64
	Positions map[string]orrery.Vector
	// Degraded lists the bodies whose Kepler solve hit the iteration cap.
	Degraded []string
}

// Scene evaluates a System for a renderer. It only holds immutable state and
// may be shared across goroutines.
type Scene struct {
	system  *orrery.System
	ev      orrery.Evaluator
	logger  log.Logger
	metrics *Metrics
	workers int
}

// NewScene returns a scene. A nil logger discards logs and nil metrics are not
// recorded.
func NewScene(system *orrery.System, ev orrery.Evaluator, logger log.Logger, metrics *Metrics) *Scene {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Scene{
		system:  system,
		ev:      ev,
		logger:  log.With(logger, "component", "scene"),
		metrics: metrics,
		workers: DefaultWorkers,
	}
}

// System returns the system of this scene.
func (s *Scene) System() *orrery.System {
	return s.system
}

// Evaluator returns the evaluator of this scene.
func (s *Scene) Evaluator() orrery.Evaluator {
	return s.ev
}

// SetWorkers sets the number of concurrent path samplers, at least one.
func (s *Scene) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	s.workers = n
}

// Tick evaluates every body at the instant of clock.
func (s *Scene) Tick(clock Clock) Frame {
	jd := clock.JulianDate()
	frame := Frame{JD: jd, Positions: make(map[string]orrery.Vector, s.system.Len())}
	s.system.Walk(s.ev, jd, func(b *orrery.Body, abs orrery.Vector, st *orrery.State) {
		frame.Positions[b.Name()] = abs
		if st == nil {
			return
		}
		s.metrics.observeSolve(b.Name(), st.Kepler.Iterations, st.Kepler.Converged)
		if !st.Kepler.Converged {
			frame.Degraded = append(frame.Degraded, b.Name())
			level.Debug(s.logger).Log("body", b.Name(), "jd", jd, "msg", "degraded precision", "residual", st.Kepler.Residual, "iterations", st.Kepler.Iterations)
		}
	})
	return frame
}

// Paths samples the orbit of every orbiting body relative to its parent frame,
// concurrently. segmentsFor picks the resolution of each body; nil uses the
// default and minor body resolutions.
func (s *Scene) Paths(ctx context.Context, segmentsFor func(*orrery.Body) int) (map[string]orrery.OrbitPath, error) {
	if segmentsFor == nil {
		segmentsFor = func(b *orrery.Body) int {
			return orrery.SegmentsFor(b, orrery.DefaultSegments, orrery.MinorBodySegments)
		}
	}
	var (
		mu    sync.Mutex
		paths = make(map[string]orrery.OrbitPath)
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, b := range s.system.Bodies() {
		if !b.Orbits() {
			continue
		}
		b := b
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			segments := segmentsFor(b)
			path, err := s.ev.BodyPath(b, segments)
			if err != nil {
				level.Error(s.logger).Log("body", b.Name(), "segments", segments, "err", err)
				return err
			}
			s.metrics.observePath(b.Name())
			mu.Lock()
			paths[b.Name()] = path
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	level.Info(s.logger).Log("msg", "orbit paths sampled", "bodies", len(paths))
	return paths, nil
}
