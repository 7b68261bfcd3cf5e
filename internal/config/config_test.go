package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scan.HeaderLines != 5 {
		t.Errorf("expected 5 header lines, got %d", cfg.Scan.HeaderLines)
	}
	if cfg.Scan.MaxNumber != 9999 {
		t.Errorf("expected max number 9999, got %d", cfg.Scan.MaxNumber)
	}
	if cfg.Interpolate.MaxGap != 10 {
		t.Errorf("expected max gap 10, got %d", cfg.Interpolate.MaxGap)
	}
	if cfg.Interpolate.Tolerance != 2 {
		t.Errorf("expected tolerance 2, got %d", cfg.Interpolate.Tolerance)
	}
	if cfg.Output.Suffix != "_filtered" {
		t.Errorf("expected suffix _filtered, got %q", cfg.Output.Suffix)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads from config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		configContent := `
scan:
  header_lines: 3
interpolate:
  max_gap: 6
`
		if err := os.WriteFile(configFile, []byte(configContent), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(configFile)
		if err != nil {
			t.Fatal(err)
		}

		if cfg.Scan.HeaderLines != 3 {
			t.Errorf("expected 3 header lines from file, got %d", cfg.Scan.HeaderLines)
		}
		if cfg.Interpolate.MaxGap != 6 {
			t.Errorf("expected max gap 6 from file, got %d", cfg.Interpolate.MaxGap)
		}
		// Unset keys keep their defaults.
		if cfg.Scan.MaxNumber != 9999 {
			t.Errorf("expected default max number, got %d", cfg.Scan.MaxNumber)
		}
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("expected error for missing explicit config file")
		}
	})
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scan.HeaderLines != DefaultConfig().Scan.HeaderLines {
		t.Errorf("round-tripped config differs from defaults: %+v", cfg)
	}
}
