package sim

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the Prometheus metrics of a Scene.
type Metrics struct {
	Evaluations       prometheus.Counter
	Degraded          *prometheus.CounterVec
	KeplerIterations  prometheus.Histogram
	PathRegenerations *prometheus.CounterVec
}

// NewMetrics registers the scene metrics against reg, defaulting to the global
// Prometheus registry when nil. Registering twice returns the existing metrics.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	evaluations, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orrery_evaluations_total",
		Help: "Total number of orbital state evaluations.",
	}), "orrery_evaluations_total")
	if err != nil {
		return nil, err
	}
	degraded, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orrery_kepler_degraded_total",
		Help: "Kepler solves which hit the iteration cap, labeled by body.",
	}, []string{"body"}), "orrery_kepler_degraded_total")
	if err != nil {
		return nil, err
	}
	iterations, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orrery_kepler_iterations",
		Help:    "Newton-Raphson iterations per Kepler solve.",
		Buckets: prometheus.LinearBuckets(1, 1, 20),
	}), "orrery_kepler_iterations")
	if err != nil {
		return nil, err
	}
	paths, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orrery_path_regenerations_total",
		Help: "Total number of orbit path regenerations, labeled by body.",
	}, []string{"body"}), "orrery_path_regenerations_total")
	if err != nil {
		return nil, err
	}
	return &Metrics{
		Evaluations:       evaluations,
		Degraded:          degraded,
		KeplerIterations:  iterations,
		PathRegenerations: paths,
	}, nil
}

func (m *Metrics) observeSolve(body string, iterations int, converged bool) {
	if m == nil {
		return
	}
	m.Evaluations.Inc()
	m.KeplerIterations.Observe(float64(iterations))
	if !converged {
		m.Degraded.WithLabelValues(body).Inc()
	}
}

func (m *Metrics) observePath(body string) {
	if m == nil {
		return
	}
	m.PathRegenerations.WithLabelValues(body).Inc()
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return c, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}
