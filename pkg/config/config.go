// Package config provides YAML-based configuration for the front end:
// video backend and colors, window sizing, and buzzer tuning.
package config

// Config is the root configuration.
type Config struct {
	Video VideoConfig `yaml:"video"`
	Audio AudioConfig `yaml:"audio"`
}

// VideoConfig selects and tunes the output backend.
type VideoConfig struct {
	// Backend is "window" (Ebiten) or "terminal".
	Backend string `yaml:"backend"`

	// WindowWidth and WindowHeight are the initial window size in pixels.
	// The window stays resizable; geometry is recomputed on every resize.
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`

	// Foreground and Background are hex pixel colors, e.g. "#33ff66".
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
}

// AudioConfig tunes the buzzer.
type AudioConfig struct {
	// Frequency is the tone frequency in Hz.
	Frequency float64 `yaml:"frequency"`

	// Gain is the audible gain constant; muted is always zero.
	Gain float64 `yaml:"gain"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Video: VideoConfig{
			Backend:      "window",
			WindowWidth:  1024,
			WindowHeight: 512,
			Foreground:   "#e8e8e8",
			Background:   "#101018",
		},
		Audio: AudioConfig{
			Frequency: 440,
			Gain:      0.05,
		},
	}
}
