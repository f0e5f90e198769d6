package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/fudance/shipsim/sim"
)

// Config holds host-side settings. Values come from the environment, with a
// .env file as an optional source; every field has a working default.
type Config struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// Step is the per-tick movement magnitude handed to the movement system.
	Step float32

	AssetDir  string
	ShipImage string

	LogLevel string
	LogJSON  bool
	DebugUI  bool
}

// LoadConfig reads configuration from a .env file (if present) and the
// process environment.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := &Config{
		WindowWidth:  800,
		WindowHeight: 600,
		WindowTitle:  "shipsim",
		Step:         sim.DefaultStep,
		AssetDir:     "resources",
		ShipImage:    "ship.png",
		LogLevel:     "info",
	}

	var err error
	if cfg.WindowWidth, err = envInt("SHIPSIM_WINDOW_WIDTH", cfg.WindowWidth); err != nil {
		return nil, err
	}
	if cfg.WindowHeight, err = envInt("SHIPSIM_WINDOW_HEIGHT", cfg.WindowHeight); err != nil {
		return nil, err
	}
	if v := os.Getenv("SHIPSIM_WINDOW_TITLE"); v != "" {
		cfg.WindowTitle = v
	}
	if cfg.Step, err = envFloat("SHIPSIM_STEP", cfg.Step); err != nil {
		return nil, err
	}
	if v := os.Getenv("SHIPSIM_ASSET_DIR"); v != "" {
		cfg.AssetDir = v
	}
	if v := os.Getenv("SHIPSIM_SHIP_IMAGE"); v != "" {
		cfg.ShipImage = v
	}
	if v := os.Getenv("SHIPSIM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if cfg.LogJSON, err = envBool("SHIPSIM_LOG_JSON", cfg.LogJSON); err != nil {
		return nil, err
	}
	if cfg.DebugUI, err = envBool("SHIPSIM_DEBUG_UI", cfg.DebugUI); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	return n, nil
}

func envFloat(key string, fallback float32) (float32, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	return float32(f), nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	return b, nil
}
