// Package config centralizes all tunable game parameters and loads
// overrides from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultPath is used when SKYSHOOTER_CONFIG is not set.
const DefaultPath = "skyshooter.toml"

type Config struct {
	Game     GameConfig     `toml:"game"`
	Timing   TimingConfig   `toml:"timing"`
	Terminal TerminalConfig `toml:"terminal"`
	Audio    AudioConfig    `toml:"audio"`
	Logging  LoggingConfig  `toml:"logging"`
	SSH      SSHConfig      `toml:"ssh"`
}

// GameConfig holds gameplay geometry and rates. All positions and sizes are
// in logical units; drawing surfaces scale them to their own resolution.
type GameConfig struct {
	Width           float64    `toml:"width"`            // logical viewport width
	Height          float64    `toml:"height"`           // logical viewport height
	PoolCapacity    int        `toml:"pool_capacity"`    // projectiles kept alive at once
	FireInterval    float64    `toml:"fire_interval"`    // frames between shots at level 1, before the 7.5 factor
	AscendThreshold float64    `toml:"ascend_threshold"` // ship may jump only while y >= this
	JumpSpeed       float64    `toml:"jump_speed"`       // vertical speed set by a jump (negative is up)
	Gravity         float64    `toml:"gravity"`          // base per-tick acceleration
	FloorMargin     float64    `toml:"floor_margin"`     // gap between the ship floor and the viewport bottom
	MuzzleX         float64    `toml:"muzzle_x"`         // projectile spawn x, past the trailing edge
	MuzzleLanes     [2]float64 `toml:"muzzle_lanes"`     // projectile spawn y lanes
	ScorePerLevel   int        `toml:"score_per_level"`  // level rises when score > ScorePerLevel * level
	Seed            int64      `toml:"seed"`             // 0 seeds from the clock
}

// TimingConfig holds the periods of the three scheduled loops.
type TimingConfig struct {
	FrameRate       int           `toml:"frame_rate"`
	PhysicsInterval time.Duration `toml:"physics_interval"`
	ScoreInterval   time.Duration `toml:"score_interval"`
}

// FrameInterval returns the render period derived from FrameRate.
func (t TimingConfig) FrameInterval() time.Duration {
	if t.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(t.FrameRate)
}

// TerminalConfig controls the ANSI surface.
type TerminalConfig struct {
	MinCols      int           `toml:"min_cols"` // smaller terminals are reported as unsupported
	MinRows      int           `toml:"min_rows"`
	MaxCols      int           `toml:"max_cols"` // larger terminals get a centered, bordered play area
	MaxRows      int           `toml:"max_rows"`
	HoldDuration time.Duration `toml:"hold_duration"` // a key counts as held this long after its last byte
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"` // base-2 exponent, 0 is unchanged, negative is quieter
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty logs to stderr
}

type SSHConfig struct {
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	HostKeyPath string `toml:"host_key_path"`
}

// Load reads the TOML file at path over Defaults. A missing file is not an
// error; the defaults are returned with environment overrides applied.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the game loop cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Game.Width <= 0 || c.Game.Height <= 0:
		return fmt.Errorf("game viewport must be positive, got %gx%g", c.Game.Width, c.Game.Height)
	case c.Game.PoolCapacity < 1:
		return fmt.Errorf("pool_capacity must be at least 1, got %d", c.Game.PoolCapacity)
	case c.Game.ScorePerLevel < 1:
		return fmt.Errorf("score_per_level must be at least 1, got %d", c.Game.ScorePerLevel)
	case c.Timing.PhysicsInterval <= 0 || c.Timing.ScoreInterval <= 0:
		return errors.New("timing intervals must be positive")
	}
	return nil
}

// Defaults returns the reference tuning: a 600x385 viewport, a 30 projectile
// pool, render at 60 Hz, physics every 10ms and scoring every 50ms.
func Defaults() *Config {
	return &Config{
		Game: GameConfig{
			Width:           600,
			Height:          385,
			PoolCapacity:    30,
			FireInterval:    48,
			AscendThreshold: 275,
			JumpSpeed:       -5,
			Gravity:         0.05,
			FloorMargin:     60,
			MuzzleX:         650,
			MuzzleLanes:     [2]float64{295, 240},
			ScorePerLevel:   1000,
		},
		Timing: TimingConfig{
			FrameRate:       60,
			PhysicsInterval: 10 * time.Millisecond,
			ScoreInterval:   50 * time.Millisecond,
		},
		Terminal: TerminalConfig{
			MinCols:      60,
			MinRows:      20,
			MaxCols:      120,
			MaxRows:      40,
			HoldDuration: 120 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     -1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		SSH: SSHConfig{
			Host:        "::",
			Port:        "2222",
			HostKeyPath: ".ssh/skyshooter_ed25519",
		},
	}
}
