package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every override so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CPDASH_DATA_FILE", "CPDASH_SHEET", "CPDASH_MODE", "CPDASH_HOST", "CPDASH_PORT", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cpdash.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
data:
  file: "/srv/data/summary.xlsx"
  sheet: "Summary"
  mode: "chunked-by-3"
server:
  host: "0.0.0.0"
  port: 9000
logging:
  level: "debug"
charts:
  - id: fig1
    title: "Volume"
    table: 12
    color: "#ff0000"
`)

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Data.File != "/srv/data/summary.xlsx" {
		t.Errorf("Data.File = %q", cfg.Data.File)
	}
	if cfg.Data.Sheet != "Summary" || cfg.Data.Mode != "chunked-by-3" {
		t.Errorf("Data = %+v", cfg.Data)
	}
	if cfg.Server.Addr() != "0.0.0.0:9000" {
		t.Errorf("Server.Addr() = %q", cfg.Server.Addr())
	}
	// Unset keys keep their defaults.
	if !cfg.Server.Debug {
		t.Error("Server.Debug should default to true")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if len(cfg.Charts) != 1 || cfg.Charts[0].Table != 12 || cfg.Charts[0].Color != "#ff0000" {
		t.Errorf("Charts = %+v", cfg.Charts)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("", false)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Data.File != "data/PowerBI_Dashboard_data.xlsx" || cfg.Data.Sheet != "CP-DF Summary" {
		t.Errorf("Data = %+v", cfg.Data)
	}
	if cfg.Server.Addr() != "127.0.0.1:8050" {
		t.Errorf("Server.Addr() = %q", cfg.Server.Addr())
	}
	if cfg.Charts != nil {
		t.Errorf("Charts should be unset, got %+v", cfg.Charts)
	}
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := Load(missing, true); err != nil {
		t.Errorf("optional missing file returned error: %v", err)
	}
	if _, err := Load(missing, false); err == nil {
		t.Error("required missing file should fail")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CPDASH_DATA_FILE", "/tmp/other.xlsx")
	t.Setenv("CPDASH_SHEET", "Other")
	t.Setenv("CPDASH_MODE", "chunked-by-3")
	t.Setenv("CPDASH_HOST", "0.0.0.0")
	t.Setenv("CPDASH_PORT", "8080")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("", false)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Data.File != "/tmp/other.xlsx" || cfg.Data.Sheet != "Other" || cfg.Data.Mode != "chunked-by-3" {
		t.Errorf("Data = %+v", cfg.Data)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Server.Addr() = %q", cfg.Server.Addr())
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}

	t.Setenv("CPDASH_PORT", "eighty")
	if _, err := Load("", false); err == nil {
		t.Error("invalid CPDASH_PORT should fail")
	}
}
