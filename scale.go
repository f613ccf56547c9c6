package orrery

import (
	"fmt"
)

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.495978707e8
	// DefaultKmPerUnit is the number of kilometers in one display unit.
	DefaultKmPerUnit = 1e6
)

// DefaultScaler uses DefaultKmPerUnit.
var DefaultScaler = Scaler{DefaultKmPerUnit}

// Scaler converts between physical kilometers and display units. The scale is
// fixed for a deployment; the zero value behaves as DefaultScaler.
type Scaler struct {
	kmPerUnit float64
}

// NewScaler returns a Scaler where one display unit spans kmPerUnit kilometers.
func NewScaler(kmPerUnit float64) (Scaler, error) {
	if !isFinite(kmPerUnit) || kmPerUnit <= 0 {
		return Scaler{}, fmt.Errorf("scale must be a positive finite number of km per unit, got %v", kmPerUnit)
	}
	return Scaler{kmPerUnit}, nil
}

// KmPerUnit returns the scale factor.
func (s Scaler) KmPerUnit() float64 {
	if s.kmPerUnit == 0 {
		return DefaultKmPerUnit
	}
	return s.kmPerUnit
}

// ToDisplay converts kilometers to display units.
func (s Scaler) ToDisplay(km float64) float64 {
	return km / s.KmPerUnit()
}

// ToPhysical converts display units to kilometers.
func (s Scaler) ToPhysical(unit float64) float64 {
	return unit * s.KmPerUnit()
}

// ToDisplayVec converts each component from kilometers to display units.
func (s Scaler) ToDisplayVec(km Vector) Vector {
	return Vector{s.ToDisplay(km.X), s.ToDisplay(km.Y), s.ToDisplay(km.Z)}
}

// ToPhysicalVec converts each component from display units to kilometers.
func (s Scaler) ToPhysicalVec(unit Vector) Vector {
	return Vector{s.ToPhysical(unit.X), s.ToPhysical(unit.Y), s.ToPhysical(unit.Z)}
}

// String implements the Stringer interface.
func (s Scaler) String() string {
	return fmt.Sprintf("1 unit = %g km", s.KmPerUnit())
}

// AUToKm converts astronomical units to kilometers.
func AUToKm(au float64) float64 {
	return au * AU
}

// KmToAU converts kilometers to astronomical units.
func KmToAU(km float64) float64 {
	return km / AU
}
