package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"snake-arena/game/types"
)

// Frontends
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Config holds every tunable of a session
type Config struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	TicksPerSecond int `yaml:"ticks_per_second"`

	InnerWalls    int `yaml:"inner_walls"`
	WallMinLength int `yaml:"wall_min_length"`
	WallMaxLength int `yaml:"wall_max_length"`

	Enemies        int     `yaml:"enemies"`
	RespawnDelay   int     `yaml:"respawn_delay"`   // Ticks an enemy stays out after dying
	PathPrefix     int     `yaml:"path_prefix"`     // Steps kept from each BFS path
	RecomputeEvery int     `yaml:"recompute_every"` // Ticks before an enemy replans
	StraightBias   float64 `yaml:"straight_bias"`

	Seed uint64 `yaml:"seed"` // 0 picks a time based seed

	Frontend string `yaml:"frontend"`
	CellSize int    `yaml:"cell_size"`
	LogFile  string `yaml:"log_file"`
	Debug    bool   `yaml:"debug"`
}

// Default mirrors the classic 600x600 window with 20 pixel cells at 10 FPS
func Default() Config {
	return Config{
		Width:          30,
		Height:         30,
		TicksPerSecond: 10,
		InnerWalls:     5,
		WallMinLength:  3,
		WallMaxLength:  7,
		Enemies:        1,
		RespawnDelay:   20,
		PathPrefix:     5,
		RecomputeEvery: 5,
		StraightBias:   0.8,
		Frontend:       FrontendWindow,
		CellSize:       20,
	}
}

// Load reads a YAML file over the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width < 8 || c.Height < 8:
		return errors.Errorf("grid %dx%d is smaller than 8x8", c.Width, c.Height)
	case c.TicksPerSecond < 1 || c.TicksPerSecond > 240:
		return errors.Errorf("ticks_per_second %d out of range [1,240]", c.TicksPerSecond)
	case c.InnerWalls < 0:
		return errors.New("inner_walls must not be negative")
	case c.WallMinLength < 1 || c.WallMaxLength < c.WallMinLength:
		return errors.Errorf("wall length range [%d,%d] is invalid", c.WallMinLength, c.WallMaxLength)
	case c.Enemies < 0:
		return errors.New("enemies must not be negative")
	case c.RespawnDelay < 1:
		return errors.New("respawn_delay must be at least one tick")
	case c.PathPrefix < 1:
		return errors.New("path_prefix must be at least 1")
	case c.RecomputeEvery < 1:
		return errors.New("recompute_every must be at least 1")
	case c.StraightBias < 0 || c.StraightBias > 1:
		return errors.Errorf("straight_bias %v out of range [0,1]", c.StraightBias)
	case c.Frontend != FrontendWindow && c.Frontend != FrontendTerminal:
		return errors.Errorf("unknown frontend %q", c.Frontend)
	case c.CellSize < 4:
		return errors.Errorf("cell_size %d is too small", c.CellSize)
	}
	return nil
}

// Grid returns the configured grid
func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}

// TickInterval is the wall-clock time between two ticks
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TicksPerSecond)
}

// ResolveSeed returns Seed, or a time based seed when it is zero
func (c Config) ResolveSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
