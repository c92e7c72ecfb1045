package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing explicit path = nil error, want failure")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("audio:\n  frequency: 880\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Audio.Frequency != 880 {
		t.Errorf("Frequency = %v, want 880", cfg.Audio.Frequency)
	}
	// Unset fields keep their defaults.
	if cfg.Audio.Gain != Default().Audio.Gain {
		t.Errorf("Gain = %v, want default %v", cfg.Audio.Gain, Default().Audio.Gain)
	}
	if cfg.Video.Backend != Default().Video.Backend {
		t.Errorf("Backend = %q, want default %q", cfg.Video.Backend, Default().Video.Backend)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("video: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with malformed YAML = nil error, want failure")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#33ff66")
	if err != nil {
		t.Fatalf("ParseColor() error: %v", err)
	}
	if c.R != 0x33 || c.G != 0xff || c.B != 0x66 || c.A != 255 {
		t.Errorf("ParseColor(#33ff66) = %v", c)
	}

	if _, err := ParseColor("red"); err == nil {
		t.Error("ParseColor(red) = nil error, want failure")
	}
}
