package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ViewConfig sizes one sphere view
type ViewConfig struct {
	Count  int     `toml:"count"`
	Radius float64 `toml:"radius"`
}

// Config is the full runtime configuration. Flags override whatever
// the file provides.
type Config struct {
	// View selects the startup scene: "constellation" or "ghz"
	View string `toml:"view"`

	Constellation ViewConfig `toml:"constellation"`
	GHZ           ViewConfig `toml:"ghz"`

	// FrameRateHz drives both simulation tick and render cadence
	FrameRateHz int `toml:"frame_rate_hz"`

	// RotationSpeed is radians of view rotation per tick
	RotationSpeed float64 `toml:"rotation_speed"`

	// Audio enables the detection alarm tone
	Audio bool `toml:"audio"`
}

// Default returns the stock configuration: the 144-satellite shell and
// the 12-qubit GHZ ring
func Default() Config {
	return Config{
		View:          "constellation",
		Constellation: ViewConfig{Count: 144, Radius: 12},
		GHZ:           ViewConfig{Count: 12, Radius: 6},
		FrameRateHz:   30,
		RotationSpeed: 0.005,
		Audio:         true,
	}
}

// Load reads a TOML file over the defaults. A missing file is not an
// error; an unparsable one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.View != "constellation" && c.View != "ghz" {
		return fmt.Errorf("unknown view %q", c.View)
	}
	for _, v := range []ViewConfig{c.Constellation, c.GHZ} {
		if v.Count < 1 {
			return fmt.Errorf("view count %d, must be >= 1", v.Count)
		}
		if v.Radius <= 0 {
			return fmt.Errorf("view radius %v, must be positive", v.Radius)
		}
	}
	if c.FrameRateHz < 1 || c.FrameRateHz > 240 {
		return fmt.Errorf("frame rate %d out of range [1, 240]", c.FrameRateHz)
	}
	return nil
}
