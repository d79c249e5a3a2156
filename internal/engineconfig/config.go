package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jfallows/minesweeper-ai/internal/solver"
)

// AutoSolveSpeed controls how quickly the engine steps through moves when
// auto-solve is left running instead of single-stepped.
type AutoSolveSpeed string

const (
	SpeedSlow   AutoSolveSpeed = "slow"
	SpeedNormal AutoSolveSpeed = "normal"
	SpeedFast   AutoSolveSpeed = "fast"
	SpeedOff    AutoSolveSpeed = "off"
)

// Config stores the engine's tuning parameters and UI preferences,
// persisted to disk.
type Config struct {
	ExactThreshold    int            `json:"exact_threshold"`
	SampleSize        int            `json:"sample_size"`
	FlagThreshold     float64        `json:"flag_threshold"`
	AutoSolveSpeed    AutoSolveSpeed `json:"auto_solve_speed"`
	DefaultDifficulty string         `json:"default_difficulty"`
}

// DefaultConfig returns the engine's default tuning parameters (mirroring
// solver.DefaultParams) plus default UI preferences.
func DefaultConfig() Config {
	p := solver.DefaultParams()
	return Config{
		ExactThreshold:    p.ExactThreshold,
		SampleSize:        p.SampleSize,
		FlagThreshold:     p.FlagThreshold,
		AutoSolveSpeed:    SpeedNormal,
		DefaultDifficulty: "beginner",
	}
}

// Params converts the persisted config into a solver.Params.
func (c Config) Params() solver.Params {
	return solver.Params{
		ExactThreshold: c.ExactThreshold,
		SampleSize:     c.SampleSize,
		FlagThreshold:  c.FlagThreshold,
	}
}

// TickIntervalMs returns the auto-solve step interval in milliseconds, or
// 0 when auto-solve should not tick on its own (single-step only).
func (c Config) TickIntervalMs() int {
	switch c.AutoSolveSpeed {
	case SpeedSlow:
		return 800
	case SpeedNormal:
		return 400
	case SpeedFast:
		return 150
	case SpeedOff:
		return 0
	}
	return 400
}

// Store manages engine configuration persistence.
type Store struct {
	path   string
	Config Config
}

// Load reads the engine config from the default location.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads the engine config from a specific path. If path is empty,
// uses ~/.minesweeper-ai/engine.json.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{Config: DefaultConfig()}, err
		}
		path = filepath.Join(home, ".minesweeper-ai", "engine.json")
	}

	s := &Store{path: path, Config: DefaultConfig()}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Config); err != nil {
		return s, err
	}
	s.normalize()
	return s, nil
}

// Save writes the engine config to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// normalize ensures all config values are valid, falling back to defaults.
func (s *Store) normalize() {
	if s.Config.ExactThreshold <= 0 || s.Config.ExactThreshold > 20 {
		s.Config.ExactThreshold = 20
	}
	if s.Config.SampleSize <= 0 {
		s.Config.SampleSize = 100_000
	}
	if s.Config.FlagThreshold <= 0 || s.Config.FlagThreshold > 1 {
		s.Config.FlagThreshold = 0.90
	}
	switch s.Config.AutoSolveSpeed {
	case SpeedSlow, SpeedNormal, SpeedFast, SpeedOff:
	default:
		s.Config.AutoSolveSpeed = SpeedNormal
	}
	switch s.Config.DefaultDifficulty {
	case "beginner", "intermediate", "expert":
	default:
		s.Config.DefaultDifficulty = "beginner"
	}
}
