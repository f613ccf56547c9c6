package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-kit/log/level"
	"github.com/keplerscope/orrery"
	"github.com/keplerscope/orrery/catalog"
	"github.com/keplerscope/orrery/sim"
	"github.com/spf13/cobra"
)

const pathCatalogVersion = "1.0"

func (a *app) positionCmd() *cobra.Command {
	var (
		sceneFile, start string
		days, step       float64
		steps            int
	)
	cmd := &cobra.Command{
		Use:   "position",
		Short: "Print the absolute display positions of every body",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDT, err := readJDEorTime(start, a.conf.Start)
			if err != nil {
				return err
			}
			clock := sim.NewClock(startDT).Advance(days)
			sys, err := a.loadSystem(sceneFile, clock.JulianDate())
			if err != nil {
				return err
			}
			scene := sim.NewScene(sys, a.conf.Evaluator(), a.logger, nil)
			for k := 0; k < steps; k++ {
				frame := scene.Tick(clock.Advance(float64(k) * step))
				if len(frame.Degraded) > 0 {
					level.Warn(a.logger).Log("msg", "degraded precision", "jd", frame.JD, "bodies", len(frame.Degraded))
				}
				if err := orrery.WriteFrameCSV(a.stdout, frame.JD, frame.Positions); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sceneFile, "catalog", "", "scene catalog TOML (default: built-in solar system)")
	cmd.Flags().StringVar(&start, "start", "", "start as a Julian date or RFC 3339 date (default clock.start)")
	cmd.Flags().Float64Var(&days, "days", 0, "simulated days elapsed since the start, may be negative")
	cmd.Flags().IntVar(&steps, "steps", 1, "number of frames")
	cmd.Flags().Float64Var(&step, "step", 1, "days between frames")
	return cmd
}

func (a *app) pathCmd() *cobra.Command {
	var (
		sceneFile, start, body string
		segments               int
		timestamp              bool
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Export the orbit paths as CSV files and a JSON catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDT, err := readJDEorTime(start, a.conf.Start)
			if err != nil {
				return err
			}
			sys, err := a.loadSystem(sceneFile, orrery.JulianDate(startDT, 0))
			if err != nil {
				return err
			}
			if body != "" {
				b := sys.Body(body)
				if b == nil {
					return fmt.Errorf("unknown body %q", body)
				}
				if !b.Orbits() {
					return fmt.Errorf("%s: %w", body, orrery.ErrNoOrbit)
				}
			}
			scene := sim.NewScene(sys, a.conf.Evaluator(), a.logger, nil)
			paths, err := scene.Paths(cmd.Context(), a.segmentsFor(segments))
			if err != nil {
				return err
			}
			export := a.conf.Export()
			export.Timestamp = timestamp
			names := make([]string, 0, len(paths))
			for name := range paths {
				if body == "" || name == body {
					names = append(names, name)
				}
			}
			sort.Strings(names)
			pc := &orrery.PathCatalog{Version: pathCatalogVersion, Name: "paths"}
			for _, name := range names {
				b := sys.Body(name)
				el, _ := b.Elements()
				f, err := export.Create("path", name, "csv")
				if err != nil {
					return err
				}
				if err := orrery.WritePathCSV(f, name, el, paths[name]); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				item := &orrery.PathCatalogItem{Name: name, Segments: paths[name].Segments(), Period: el.Period(), Source: f.Name()}
				if p := b.Parent(); p != nil {
					item.Center = p.Name()
				}
				pc.Items = append(pc.Items, item)
				level.Info(a.logger).Log("msg", "path exported", "body", name, "file", f.Name())
			}
			f, err := export.Create("catalog", pc.Name, "json")
			if err != nil {
				return err
			}
			defer f.Close()
			if err := pc.WriteJSON(f); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, f.Name())
			return nil
		},
	}
	cmd.Flags().StringVar(&sceneFile, "catalog", "", "scene catalog TOML (default: built-in solar system)")
	cmd.Flags().StringVar(&start, "start", "", "planet elements date as a Julian date or RFC 3339 date (default clock.start)")
	cmd.Flags().StringVar(&body, "body", "", "only export this body")
	cmd.Flags().IntVar(&segments, "segments", 0, "path segments (default paths.segments and paths.minor_segments)")
	cmd.Flags().BoolVar(&timestamp, "timestamp", false, "suffix the file names with the creation time")
	return cmd
}

func (a *app) planetCmd() *cobra.Command {
	var name, at string
	cmd := &cobra.Command{
		Use:   "planet",
		Short: "Print the mean elements and state of a planet",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := catalog.PlanetFromString(name)
			if err != nil {
				return err
			}
			dt, err := readJDEorTime(at, a.conf.Start)
			if err != nil {
				return err
			}
			jd := orrery.JulianDate(dt, 0)
			el, err := catalog.MeanPlanet(p, jd)
			if err != nil {
				return err
			}
			st := a.conf.Evaluator().State(el, jd)
			if !st.Kepler.Converged {
				level.Warn(a.logger).Log("msg", "degraded precision", "planet", p, "residual", st.Kepler.Residual)
			}
			fmt.Fprintf(a.stdout, "%s\n%s\n%s\n", p, el, st)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "earth", "planet name")
	cmd.Flags().StringVar(&at, "jd", "", "date as a Julian date or RFC 3339 date (default clock.start)")
	return cmd
}

func (a *app) neoCmd() *cobra.Command {
	var (
		file     string
		segments int
	)
	cmd := &cobra.Command{
		Use:   "neo",
		Short: "Print the orbit path and close approach markers of a near earth object",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("no NEO lookup document provided")
			}
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()
			neo, err := catalog.DecodeNEO(f)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			el, err := neo.Elements()
			if err != nil {
				return err
			}
			if segments <= 0 {
				segments = a.conf.MinorSegments
			}
			ev := a.conf.Evaluator()
			path, err := ev.SamplePath(el, segments)
			if err != nil {
				return err
			}
			if err := orrery.WritePathCSV(a.stdout, neo.Name, el, path); err != nil {
				return err
			}
			offsets := neo.ApproachOffsets(el)
			for k, m := range ev.MarkersAt(el, offsets) {
				ca := neo.CloseApproachData[k]
				miss, err := ca.MissDistanceKm()
				if err != nil {
					level.Warn(a.logger).Log("msg", "no miss distance", "date", ca.Date, "err", err)
				}
				fmt.Fprintf(a.stdout, "# approach %s (%s) at %s, miss distance %.0f km\n", ca.Date, ca.OrbitingBody, m, miss)
			}
			level.Debug(a.logger).Log("msg", "neo exported", "name", neo.Name, "approaches", len(offsets))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "NEO lookup JSON document")
	cmd.Flags().IntVar(&segments, "segments", 0, "path segments (default paths.minor_segments)")
	return cmd
}

