package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Constellation.Count != 144 || cfg.Constellation.Radius != 12 {
		t.Errorf("constellation defaults wrong: %+v", cfg.Constellation)
	}
	if cfg.GHZ.Count != 12 || cfg.GHZ.Radius != 6 {
		t.Errorf("ghz defaults wrong: %+v", cfg.GHZ)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.View != "constellation" {
		t.Errorf("fallback view = %q", cfg.View)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qorbit.toml")
	body := `
view = "ghz"
frame_rate_hz = 60

[constellation]
count = 288
radius = 20.0
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.View != "ghz" || cfg.FrameRateHz != 60 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Constellation.Count != 288 {
		t.Errorf("constellation count = %d", cfg.Constellation.Count)
	}
	// Untouched section keeps defaults
	if cfg.GHZ.Count != 12 {
		t.Errorf("ghz count = %d, want default 12", cfg.GHZ.Count)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad view":   `view = "cube"`,
		"zero count": "[constellation]\ncount = 0\nradius = 5.0",
		"bad rate":   `frame_rate_hz = 0`,
		"bad toml":   `view = [`,
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
