package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-kit/log/level"
	"github.com/keplerscope/orrery"
	"github.com/keplerscope/orrery/catalog"
	"github.com/soniakeys/meeus/v3/julian"
)

// readJDEorTime reads a Julian date or a calendar date. An empty value returns def.
func readJDEorTime(s string, def time.Time) (time.Time, error) {
	if s == "" {
		return def, nil
	}
	if jde, err := strconv.ParseFloat(s, 64); err == nil {
		return julian.JDToTime(jde).UTC(), nil
	}
	return orrery.ParseStart(s)
}

// loadSystem reads the scene catalog at path, or the built-in solar system
// when path is empty, with planet elements taken at jd.
func (a *app) loadSystem(path string, jd float64) (*orrery.System, error) {
	var (
		specs []orrery.BodySpec
		err   error
	)
	if path == "" {
		specs, err = catalog.SolarSystem(jd)
	} else {
		var f *os.File
		if f, err = os.Open(path); err != nil {
			return nil, err
		}
		defer f.Close()
		specs, err = catalog.LoadTOML(f, jd)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	sys, err := orrery.NewSystem(specs...)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	level.Info(a.logger).Log("msg", "system loaded", "catalog", path, "bodies", sys.Len())
	return sys, nil
}

// segmentsFor returns the configured resolution of b, or segments when positive.
func (a *app) segmentsFor(segments int) func(*orrery.Body) int {
	return func(b *orrery.Body) int {
		if segments > 0 {
			return segments
		}
		return orrery.SegmentsFor(b, a.conf.Segments, a.conf.MinorSegments)
	}
}
