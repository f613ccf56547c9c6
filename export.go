package orrery

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

// ExportConfig configures where exported files are written.
type ExportConfig struct {
	Dir       string
	Timestamp bool // Suffix file names with the creation time
}

// Create returns a new file for kind and name (e.g. "path", "earth"). The
// caller must close it.
func (c ExportConfig) Create(kind, name, ext string) (*os.File, error) {
	dir := c.Dir
	if dir == "" {
		dir = "."
	}
	var filename string
	if c.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s-%s-%d-%02d-%02dT%02d.%02d.%02d.%s", kind, name, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), ext)
	} else {
		filename = fmt.Sprintf("%s-%s.%s", kind, name, ext)
	}
	return os.Create(filepath.Join(dir, filename))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatJD never uses an exponent.
func formatJD(jd float64) string {
	return strconv.FormatFloat(jd, 'f', -1, 64)
}

// WritePathCSV writes a sampled orbit path as CSV records of
// jd,utc,x,y,z preceded by a commented header.
func WritePathCSV(w io.Writer, name string, el OrbitalElements, path OrbitPath) error {
	if _, err := fmt.Fprintf(w, `# Creation date (UTC): %s
# Orbit of %s: %s
# Records are <jd> <utc> <x> <y> <z>
#   Time is a Julian date
#   Position in display units relative to the parent frame
`, time.Now().UTC(), name, el); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"jd", "utc", "x", "y", "z"}); err != nil {
		return err
	}
	segments := path.Segments()
	for j, pt := range path {
		jd := el.epoch
		if segments > 0 {
			jd += float64(j) / float64(segments) * el.period
		}
		record := []string{formatJD(jd), TimeFromJulianDate(jd).Format(time.RFC3339), formatFloat(pt.X), formatFloat(pt.Y), formatFloat(pt.Z)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFrameCSV writes the absolute positions of one tick as name,x,y,z records
// sorted by name.
func WriteFrameCSV(w io.Writer, jd float64, positions map[string]Vector) error {
	if _, err := fmt.Fprintf(w, "# Frame at JD %s (UTC %s)\n", formatJD(jd), TimeFromJulianDate(jd).Format(time.RFC3339)); err != nil {
		return err
	}
	names := make([]string, 0, len(positions))
	for name := range positions {
		names = append(names, name)
	}
	sort.Strings(names)
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"body", "x", "y", "z"}); err != nil {
		return err
	}
	for _, name := range names {
		pos := positions[name]
		if err := cw.Write([]string{name, formatFloat(pos.X), formatFloat(pos.Y), formatFloat(pos.Z)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// PathCatalog lists exported orbit paths for a renderer.
type PathCatalog struct {
	Version string             `json:"version"`
	Name    string             `json:"name"`
	Items   []*PathCatalogItem `json:"items"`
}

// PathCatalogItem references one exported path.
type PathCatalogItem struct {
	Name     string  `json:"name"`
	Center   string  `json:"center,omitempty"`
	Segments int     `json:"segments"`
	Period   float64 `json:"periodDays"`
	Source   string  `json:"source"`
}

func (c *PathCatalog) String() string {
	return c.Name + "(" + c.Version + ")"
}

// WriteJSON writes the catalog as indented JSON.
func (c *PathCatalog) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
