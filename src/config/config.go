package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-yaml/yaml"
)

const (
	MinFloor  = 0
	MaxFloor  = 10
	StepDelay = 500 * time.Millisecond
	RushSize  = 30
	LogLevel  = "info"
)

// Config holds the parameters of one simulation run.
type Config struct {
	MinFloor   int           `yaml:"min_floor"`
	MaxFloor   int           `yaml:"max_floor"`
	StartFloor int           `yaml:"start_floor"`
	StepDelay  time.Duration `yaml:"step_delay"`
	RushSize   int           `yaml:"rush_size"`
	Seed       uint64        `yaml:"seed"`
	LogLevel   string        `yaml:"log_level"`
	LogFile    string        `yaml:"log_file"`
}

func Default() Config {
	return Config{
		MinFloor:   MinFloor,
		MaxFloor:   MaxFloor,
		StartFloor: MinFloor,
		StepDelay:  StepDelay,
		RushSize:   RushSize,
		LogLevel:   LogLevel,
	}
}

// Load reads a YAML config file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&c); err != nil {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.MinFloor >= c.MaxFloor {
		return fmt.Errorf("min_floor %d must be below max_floor %d", c.MinFloor, c.MaxFloor)
	}
	if c.StartFloor < c.MinFloor || c.StartFloor > c.MaxFloor {
		return fmt.Errorf("start_floor %d outside [%d, %d]", c.StartFloor, c.MinFloor, c.MaxFloor)
	}
	if c.StepDelay < 0 {
		return errors.New("step_delay must not be negative")
	}
	if c.RushSize < 0 {
		return errors.New("rush_size must not be negative")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
