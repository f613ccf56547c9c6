// Package sim drives a system of bodies from a simulation clock.
package sim

import (
	"fmt"
	"time"

	"github.com/keplerscope/orrery"
)

// Clock is a snapshot of the simulation time: a start instant plus a signed
// number of simulated days. Negative days rewind. It is a value type, so each
// tick reads a consistent snapshot.
type Clock struct {
	Start       time.Time
	ElapsedDays float64
}

// NewClock returns a clock at start.
func NewClock(start time.Time) Clock {
	return Clock{Start: start.UTC()}
}

// JulianDate returns the Julian date of this clock.
func (c Clock) JulianDate() float64 {
	return orrery.JulianDate(c.Start, c.ElapsedDays)
}

// Advance returns the clock moved by days.
func (c Clock) Advance(days float64) Clock {
	c.ElapsedDays += days
	return c
}

// Clamp returns the clock with its elapsed days restricted to [min, max].
func (c Clock) Clamp(min, max float64) Clock {
	if c.ElapsedDays < min {
		c.ElapsedDays = min
	} else if c.ElapsedDays > max {
		c.ElapsedDays = max
	}
	return c
}

// Now returns the current simulated instant, to the millisecond.
func (c Clock) Now() time.Time {
	return c.Start.Add(time.Duration(c.ElapsedDays * 24 * float64(time.Hour))).Round(time.Millisecond)
}

// String implements the Stringer interface.
func (c Clock) String() string {
	return fmt.Sprintf("%s%+.4fd (JD %.5f)", c.Start.Format(time.RFC3339), c.ElapsedDays, c.JulianDate())
}
