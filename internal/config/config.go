package config

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

// Problem holds the dimensions of one planning instance. The map pool header
// supplies them; Config may override the committee size and turn budget.
type Problem struct {
	Worlds    int `yaml:"worlds" json:"worlds"`
	Committee int `yaml:"committee" json:"committee"`
	Rows      int `yaml:"rows" json:"rows"`
	Cols      int `yaml:"cols" json:"cols"`
	Turns     int `yaml:"turns" json:"turns"`
}

func (p Problem) Validate() error {
	switch {
	case p.Worlds <= 0:
		return fmt.Errorf("%w: worlds must be positive, got %d", ErrInvalidConfig, p.Worlds)
	case p.Committee <= 0 || p.Committee > p.Worlds:
		return fmt.Errorf("%w: committee must be in [1,%d], got %d", ErrInvalidConfig, p.Worlds, p.Committee)
	case p.Rows <= 0 || p.Cols <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, p.Rows, p.Cols)
	case p.Turns <= 0:
		return fmt.Errorf("%w: turns must be positive, got %d", ErrInvalidConfig, p.Turns)
	}
	return nil
}

type Config struct {
	// TimeLimit is the planning budget in seconds.
	TimeLimit     float64 `yaml:"time_limit"`
	Seed          uint64  `yaml:"seed"`
	CommitteeSize int     `yaml:"committee_size"` // 0: header value
	Turns         int     `yaml:"turns"`          // 0: header value
	Parallel      bool    `yaml:"parallel"`
	Record        bool    `yaml:"record"`
	LogLevel      string  `yaml:"log_level"`
	Archive       string  `yaml:"archive"`
	Sweep         Sweep   `yaml:"sweep"`
}

type Sweep struct {
	Runs    int `yaml:"runs"`
	Workers int `yaml:"workers"`
}

func Default() Config {
	return Config{
		TimeLimit: 3.9,
		Seed:      20210325,
		LogLevel:  "info",
		Sweep:     Sweep{Runs: 8, Workers: 4},
	}
}

// Load reads a YAML file on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if err := loadYAML(path, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.TimeLimit <= 0:
		return fmt.Errorf("%w: time_limit must be positive, got %v", ErrInvalidConfig, c.TimeLimit)
	case c.CommitteeSize < 0:
		return fmt.Errorf("%w: committee_size must not be negative", ErrInvalidConfig)
	case c.Turns < 0:
		return fmt.Errorf("%w: turns must not be negative", ErrInvalidConfig)
	case c.Sweep.Runs < 0 || c.Sweep.Workers < 0:
		return fmt.Errorf("%w: sweep runs/workers must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (c Config) Budget() time.Duration {
	return time.Duration(c.TimeLimit * float64(time.Second))
}

// Apply overlays the committee size and turn budget onto the header values.
func (c Config) Apply(p Problem) (Problem, error) {
	if c.CommitteeSize > 0 {
		p.Committee = c.CommitteeSize
	}
	if c.Turns > 0 {
		p.Turns = c.Turns
	}
	return p, p.Validate()
}
