// Package catalog adapts orbital element records from external sources into
// orrery.OrbitalElements.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/keplerscope/orrery"
)

var (
	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = errors.New("missing field")
	// ErrNotNumeric is returned when a field cannot be read as a number.
	ErrNotNumeric = errors.New("not numeric")
)

// FieldError reports a record field which could not be adapted.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("%s: %s", e.Field, e.Err)
	}
	return fmt.Sprintf("%s=%v: %s", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Record is a loosely typed element record, such as a decoded JSON object.
// Values may be numbers or numeric strings.
type Record map[string]any

// Field names, canonical first.
var (
	semiMajorAxisKeys = []string{"semi_major_axis", "a", "semiMajorAxis", "sma"}
	eccentricityKeys  = []string{"eccentricity", "e", "ecc"}
	inclinationKeys   = []string{"inclination", "i", "inc"}
	nodeKeys          = []string{"ascending_node_longitude", "omega", "node", "longNode", "ascendingNodeLongitude", "raan"}
	periKeys          = []string{"perihelion_argument", "w", "argPeri", "periapsisArgument", "peri"}
	meanAnomalyKeys   = []string{"mean_anomaly", "M0", "ma", "meanAnomalyAtEpoch"}
	epochKeys         = []string{"epoch_osculation", "epoch"}
	periodKeys        = []string{"orbital_period", "period", "periodDays"}
	perihelionKeys    = []string{"perihelion_time", "tp"}
)

// lookup returns the value of the first key found, matching exactly before
// ignoring case.
func (r Record) lookup(keys []string) (string, any, bool) {
	for _, k := range keys {
		if v, found := r[k]; found && v != nil {
			return k, v, true
		}
	}
	for k, v := range r {
		if v == nil {
			continue
		}
		for _, want := range keys {
			if strings.EqualFold(k, want) {
				return k, v, true
			}
		}
	}
	return keys[0], nil, false
}

// Float returns the value of the first of keys as a float64.
func (r Record) Float(keys ...string) (float64, error) {
	key, v, found := r.lookup(keys)
	if !found {
		return 0, &FieldError{Field: key, Err: ErrMissingField}
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, &FieldError{Field: key, Value: v, Err: err}
	}
	return f, nil
}

// Has returns whether any of keys is set.
func (r Record) Has(keys ...string) bool {
	_, _, found := r.lookup(keys)
	return found
}

func toFloat(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case int32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		var err error
		if f, err = n.Float64(); err != nil {
			return 0, ErrNotNumeric
		}
	case string:
		var err error
		if f, err = strconv.ParseFloat(strings.TrimSpace(n), 64); err != nil {
			return 0, ErrNotNumeric
		}
	default:
		return 0, ErrNotNumeric
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotNumeric
	}
	return f, nil
}

// Adapter converts records into orbital elements.
type Adapter struct {
	// DerivePeriod computes a missing period from the semi major axis with
	// Kepler's third law around the Sun.
	DerivePeriod bool
}

// Elements adapts rec. A time of perihelion passage, when present, takes
// precedence over the mean anomaly.
func (ad Adapter) Elements(rec Record) (orrery.OrbitalElements, error) {
	a, err := rec.Float(semiMajorAxisKeys...)
	if err != nil {
		return orrery.OrbitalElements{}, err
	}
	e, err := rec.Float(eccentricityKeys...)
	if err != nil {
		return orrery.OrbitalElements{}, err
	}
	i, err := rec.Float(inclinationKeys...)
	if err != nil {
		return orrery.OrbitalElements{}, err
	}
	Ω, err := rec.Float(nodeKeys...)
	if err != nil {
		return orrery.OrbitalElements{}, err
	}
	ω, err := rec.Float(periKeys...)
	if err != nil {
		return orrery.OrbitalElements{}, err
	}
	epoch, err := rec.Float(epochKeys...)
	if err != nil {
		return orrery.OrbitalElements{}, err
	}
	var period float64
	if ad.DerivePeriod && !rec.Has(periodKeys...) {
		period = orrery.PeriodFromSemiMajorAxis(a)
	} else if period, err = rec.Float(periodKeys...); err != nil {
		return orrery.OrbitalElements{}, err
	}

	if rec.Has(perihelionKeys...) {
		tp, err := rec.Float(perihelionKeys...)
		if err != nil {
			return orrery.OrbitalElements{}, err
		}
		return orrery.NewOrbitalElementsFromPerihelion(a, e, i, Ω, ω, tp, epoch, period)
	}
	M0, err := rec.Float(meanAnomalyKeys...)
	if err != nil {
		return orrery.OrbitalElements{}, err
	}
	return orrery.NewOrbitalElements(a, e, i, Ω, ω, M0, epoch, period)
}

// FromRecord adapts rec with the default Adapter.
func FromRecord(rec Record) (orrery.OrbitalElements, error) {
	return Adapter{}.Elements(rec)
}
