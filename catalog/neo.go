package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/keplerscope/orrery"
)

// OrbitalData is the orbital_data block of a near earth object lookup, where
// every number is string encoded.
type OrbitalData struct {
	OrbitID                string `json:"orbit_id"`
	SemiMajorAxis          string `json:"semi_major_axis"`
	Eccentricity           string `json:"eccentricity"`
	Inclination            string `json:"inclination"`
	AscendingNodeLongitude string `json:"ascending_node_longitude"`
	PerihelionArgument     string `json:"perihelion_argument"`
	MeanAnomaly            string `json:"mean_anomaly"`
	EpochOsculation        string `json:"epoch_osculation"`
	OrbitalPeriod          string `json:"orbital_period"`
	PerihelionTime         string `json:"perihelion_time,omitempty"`
}

// Record returns the non empty fields as a Record.
func (d OrbitalData) Record() Record {
	rec := Record{}
	for key, v := range map[string]string{
		"semi_major_axis":          d.SemiMajorAxis,
		"eccentricity":             d.Eccentricity,
		"inclination":              d.Inclination,
		"ascending_node_longitude": d.AscendingNodeLongitude,
		"perihelion_argument":      d.PerihelionArgument,
		"mean_anomaly":             d.MeanAnomaly,
		"epoch_osculation":         d.EpochOsculation,
		"orbital_period":           d.OrbitalPeriod,
		"perihelion_time":          d.PerihelionTime,
	} {
		if v != "" {
			rec[key] = v
		}
	}
	return rec
}

// Elements adapts the orbital data.
func (d OrbitalData) Elements() (orrery.OrbitalElements, error) {
	return FromRecord(d.Record())
}

// CloseApproach is one entry of close_approach_data.
type CloseApproach struct {
	Date         string `json:"close_approach_date_full"`
	EpochMillis  int64  `json:"epoch_date_close_approach"`
	OrbitingBody string `json:"orbiting_body"`
	MissDistance struct {
		Kilometers string `json:"kilometers"`
	} `json:"miss_distance"`
	RelativeVelocity struct {
		KilometersPerSecond string `json:"kilometers_per_second"`
	} `json:"relative_velocity"`
}

// JulianDate returns the Julian date of the close approach.
func (c CloseApproach) JulianDate() float64 {
	return orrery.UnixEpochJD + float64(c.EpochMillis)/86400e3
}

// MissDistanceKm returns the miss distance in kilometers.
func (c CloseApproach) MissDistanceKm() (float64, error) {
	km, err := strconv.ParseFloat(c.MissDistance.Kilometers, 64)
	if err != nil {
		return 0, &FieldError{Field: "miss_distance.kilometers", Value: c.MissDistance.Kilometers, Err: ErrNotNumeric}
	}
	return km, nil
}

// NEO is a near earth object lookup document.
type NEO struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	AbsoluteMagnitude float64         `json:"absolute_magnitude_h"`
	Hazardous         bool            `json:"is_potentially_hazardous_asteroid"`
	CloseApproachData []CloseApproach `json:"close_approach_data"`
	OrbitalData       *OrbitalData    `json:"orbital_data"`
}

// Elements adapts the orbital data of this object.
func (n NEO) Elements() (orrery.OrbitalElements, error) {
	if n.OrbitalData == nil {
		return orrery.OrbitalElements{}, fmt.Errorf("%s: %w", n.Name, &FieldError{Field: "orbital_data", Err: ErrMissingField})
	}
	el, err := n.OrbitalData.Elements()
	if err != nil {
		return orrery.OrbitalElements{}, fmt.Errorf("%s: %w", n.Name, err)
	}
	return el, nil
}

// ApproachOffsets returns the close approach dates as days from the epoch of el.
func (n NEO) ApproachOffsets(el orrery.OrbitalElements) []float64 {
	offsets := make([]float64, len(n.CloseApproachData))
	for k, ca := range n.CloseApproachData {
		offsets[k] = ca.JulianDate() - el.Epoch()
	}
	return offsets
}

// DecodeNEO decodes a near earth object lookup document.
func DecodeNEO(r io.Reader) (NEO, error) {
	var n NEO
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return NEO{}, err
	}
	return n, nil
}
