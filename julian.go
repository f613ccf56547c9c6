package orrery

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const (
	// UnixEpochJD is the Julian date of 1970-01-01T00:00:00Z.
	UnixEpochJD = 2440587.5
	// J2000 is the Julian date of 2000-01-01T12:00:00 TT.
	J2000 = 2451545.0
	// DaysPerJulianCentury is the length of a Julian century in days.
	DaysPerJulianCentury = 36525.0
	secondsPerDay        = 86400.0
)

// JulianDate returns the Julian date of start shifted by elapsedDays simulated
// days. Negative elapsed days rewind. Leap seconds are ignored.
func JulianDate(start time.Time, elapsedDays float64) float64 {
	return UnixEpochJD + DaysSinceUnixEpoch(start) + elapsedDays
}

// DaysSinceUnixEpoch returns the fractional number of days between the Unix
// epoch and t.
func DaysSinceUnixEpoch(t time.Time) float64 {
	// UnixNano overflows outside 1678-2262.
	return float64(t.Unix())/secondsPerDay + float64(t.Nanosecond())/(secondsPerDay*1e9)
}

// TimeFromJulianDate returns the UTC time of the provided Julian date, to the
// millisecond.
func TimeFromJulianDate(jd float64) time.Time {
	return julian.JDToTime(jd).UTC().Round(time.Millisecond)
}

// JulianCenturiesSinceJ2000 returns the number of Julian centuries between J2000 and jd.
func JulianCenturiesSinceJ2000(jd float64) float64 {
	return (jd - J2000) / DaysPerJulianCentury
}
