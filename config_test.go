package orrery

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConf(t *testing.T, contents string) string {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "conf.toml"), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeConf(t, `
[display]
km_per_unit = 1000.0

[paths]
segments = 720
minor_segments = 64

[clock]
start = "2025-01-01"

[export]
directory = "/tmp/orrery"

[log]
level = "DEBUG"
`)
	for _, path := range []string{dir, filepath.Join(dir, "conf.toml")} {
		conf, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("%s: %s", path, err)
		}
		if conf.KmPerUnit != 1000 || conf.Segments != 720 || conf.MinorSegments != 64 {
			t.Fatalf("unexpected %+v", conf)
		}
		if !conf.Start.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("start = %s", conf.Start)
		}
		if conf.OutputDir != "/tmp/orrery" || conf.LogLevel != "debug" {
			t.Fatalf("unexpected %+v", conf)
		}
		if conf.Scaler().KmPerUnit() != 1000 || conf.Evaluator().Scaler.KmPerUnit() != 1000 {
			t.Fatal("scaler not configured")
		}
		if conf.Export().Dir != "/tmp/orrery" {
			t.Fatal("export directory not configured")
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := writeConf(t, "[display]\nkm_per_unit = 2e6\n")
	conf, err := LoadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if conf.KmPerUnit != 2e6 || conf.Segments != def.Segments || conf.MinorSegments != def.MinorSegments || !conf.Start.Equal(def.Start) || conf.LogLevel != def.LogLevel {
		t.Fatalf("defaults not applied: %+v", conf)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	for _, contents := range []string{
		"[display]\nkm_per_unit = -1.0\n",
		"[paths]\nsegments = 2\n",
		"[clock]\nstart = \"yesterday\"\n",
	} {
		if _, err := LoadConfig(writeConf(t, contents)); err == nil {
			t.Fatalf("accepted %q", contents)
		}
	}
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatal("missing conf.toml accepted")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(ConfigEnv, "")
	conf, err := ConfigFromEnv()
	if err != nil || conf != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v (%v)", conf, err)
	}
	t.Setenv(ConfigEnv, writeConf(t, "[paths]\nsegments = 90\n"))
	if conf, err = ConfigFromEnv(); err != nil || conf.Segments != 90 {
		t.Fatalf("got %+v (%v)", conf, err)
	}
}

func TestParseStart(t *testing.T) {
	for s, exp := range map[string]time.Time{
		"2025-01-01":           time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		"2025-01-01T06:30:00":  time.Date(2025, 1, 1, 6, 30, 0, 0, time.UTC),
		"2025-01-01T06:30:00Z": time.Date(2025, 1, 1, 6, 30, 0, 0, time.UTC),
	} {
		got, err := ParseStart(s)
		if err != nil || !got.Equal(exp) {
			t.Fatalf("%s: %s (%v)", s, got, err)
		}
	}
}
