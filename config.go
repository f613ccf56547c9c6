package orrery

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ConfigEnv is the environment variable holding the directory of conf.toml.
const ConfigEnv = "ORRERY_CONFIG"

// Config is the deployment configuration.
type Config struct {
	KmPerUnit     float64
	Segments      int
	MinorSegments int
	Start         time.Time
	OutputDir     string
	LogLevel      string
}

// DefaultConfig returns the deployment defaults.
func DefaultConfig() Config {
	return Config{
		KmPerUnit:     DefaultKmPerUnit,
		Segments:      DefaultSegments,
		MinorSegments: MinorBodySegments,
		Start:         time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		OutputDir:     ".",
		LogLevel:      "info",
	}
}

// LoadConfig reads the configuration from path, which is either a config file
// or a directory containing a conf.toml. Unset keys keep their default.
func LoadConfig(path string) (Config, error) {
	def := DefaultConfig()
	v := viper.New()
	v.SetDefault("display.km_per_unit", def.KmPerUnit)
	v.SetDefault("paths.segments", def.Segments)
	v.SetDefault("paths.minor_segments", def.MinorSegments)
	v.SetDefault("clock.start", def.Start.Format(time.RFC3339))
	v.SetDefault("export.directory", def.OutputDir)
	v.SetDefault("log.level", def.LogLevel)

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("conf")
		v.SetConfigType("toml")
		v.AddConfigPath(path)
	}
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	var start time.Time
	switch raw := v.Get("clock.start").(type) {
	case time.Time:
		// Unquoted TOML date-time.
		start = raw.UTC()
	default:
		var err error
		if start, err = ParseStart(v.GetString("clock.start")); err != nil {
			return Config{}, fmt.Errorf("clock.start: %w", err)
		}
	}
	conf := Config{
		KmPerUnit:     v.GetFloat64("display.km_per_unit"),
		Segments:      v.GetInt("paths.segments"),
		MinorSegments: v.GetInt("paths.minor_segments"),
		Start:         start,
		OutputDir:     v.GetString("export.directory"),
		LogLevel:      strings.ToLower(v.GetString("log.level")),
	}
	if _, err := NewScaler(conf.KmPerUnit); err != nil {
		return Config{}, fmt.Errorf("display.km_per_unit: %w", err)
	}
	if conf.Segments < MinSegments || conf.MinorSegments < MinSegments {
		return Config{}, fmt.Errorf("paths: %w", ErrSegments)
	}
	return conf, nil
}

// ConfigFromEnv loads the configuration from the directory named by
// ORRERY_CONFIG, or returns the defaults if it is unset.
func ConfigFromEnv() (Config, error) {
	confPath := os.Getenv(ConfigEnv)
	if confPath == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(confPath)
}

// Scaler returns the scaler of this configuration.
func (c Config) Scaler() Scaler {
	s, err := NewScaler(c.KmPerUnit)
	if err != nil {
		return DefaultScaler
	}
	return s
}

// Evaluator returns an Evaluator using the configured scale.
func (c Config) Evaluator() Evaluator {
	return NewEvaluator(c.Scaler())
}

// Export returns the export configuration.
func (c Config) Export() ExportConfig {
	return ExportConfig{Dir: c.OutputDir}
}

// ParseStart parses a simulation start date as found in conf.toml or on the
// command line: RFC 3339, or a plain date at midnight UTC.
func ParseStart(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date", s)
}
