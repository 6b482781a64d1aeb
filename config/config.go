package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the application settings
type Config struct {
	Title      string `json:"title"`
	TickMs     int    `json:"tick_ms"`
	LevelsDir  string `json:"levels_dir"`
	LogPath    string `json:"log_path"`
	Audio      bool   `json:"audio"`
	Watch      bool   `json:"watch"`
	StartLevel string `json:"start_level"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Title:      "Gatelight",
		TickMs:     16,
		LevelsDir:  "levels",
		LogPath:    "gatelight.log",
		Audio:      true,
		Watch:      true,
		StartLevel: "menu",
	}
}

// Load overlays a JSON config file onto the defaults. A missing file is
// not an error; the defaults apply.
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
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.TickMs <= 0 {
		cfg.TickMs = Default().TickMs
	}
	return cfg, nil
}
