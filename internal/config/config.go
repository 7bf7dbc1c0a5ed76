// Package config loads riskpath settings from defaults, an optional YAML
// file, an optional .env file and RISKPATH_* environment variables, in
// that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilepath/shortest"
)

// Environment variables read by ApplyEnv.
const (
	EnvInput    = "RISKPATH_INPUT"
	EnvTiles    = "RISKPATH_TILES"
	EnvQueue    = "RISKPATH_QUEUE"
	EnvLogLevel = "RISKPATH_LOG_LEVEL"
	EnvMaxCost  = "RISKPATH_MAX_COST"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the settings for one riskpath run.
type Config struct {
	// Input is the grid file path; "-" means stdin.
	Input string `yaml:"input"`
	// Tiles lists the tile factors to solve, each >= 1.
	Tiles []int `yaml:"tiles"`
	// Queue names the frontier discipline: "priority" or "fifo".
	Queue string `yaml:"queue"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
	// MaxCost caps the search; -1 disables the cap.
	MaxCost int `yaml:"max_cost"`
}

// Default returns the built-in settings: both puzzle parts (1 and 5 tiles),
// priority queue, info logging, no cost cap.
func Default() Config {
	return Config{
		Input:    "-",
		Tiles:    []int{1, 5},
		Queue:    shortest.QueuePriority.String(),
		LogLevel: "info",
		MaxCost:  -1,
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when
// path is empty), then the environment, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set.
// Missing files are not an error.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overlays any RISKPATH_* variables that are set.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvInput); ok && v != "" {
		c.Input = v
	}
	if v, ok := os.LookupEnv(EnvTiles); ok && v != "" {
		tiles, err := ParseTiles(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTiles, err)
		}
		c.Tiles = tiles
	}
	if v, ok := os.LookupEnv(EnvQueue); ok && v != "" {
		c.Queue = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvMaxCost); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvMaxCost, v, err)
		}
		c.MaxCost = n
	}
	return nil
}

// Validate reports the first problem found, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input is required", ErrInvalid)
	}
	if len(c.Tiles) == 0 {
		return fmt.Errorf("%w: at least one tile factor is required", ErrInvalid)
	}
	for _, k := range c.Tiles {
		if k < 1 {
			return fmt.Errorf("%w: tile factor %d is below 1", ErrInvalid, k)
		}
	}
	if _, err := shortest.ParseQueueKind(c.Queue); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.MaxCost < -1 {
		return fmt.Errorf("%w: max_cost %d (use -1 for no cap)", ErrInvalid, c.MaxCost)
	}
	return nil
}

// QueueKind returns the parsed queue discipline. Call after Validate.
func (c *Config) QueueKind() shortest.QueueKind {
	k, _ := shortest.ParseQueueKind(c.Queue)
	return k
}

// ParseTiles parses a comma-separated list of tile factors such as "1,5".
func ParseTiles(s string) ([]int, error) {
	var tiles []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: tile factor %q: %v", ErrInvalid, part, err)
		}
		tiles = append(tiles, k)
	}
	if len(tiles) == 0 {
		return nil, fmt.Errorf("%w: empty tile list %q", ErrInvalid, s)
	}
	return tiles, nil
}

func applyDefaults(cfg *Config) {
	d := Default()
	if cfg.Input == "" {
		cfg.Input = d.Input
	}
	if len(cfg.Tiles) == 0 {
		cfg.Tiles = d.Tiles
	}
	if cfg.Queue == "" {
		cfg.Queue = d.Queue
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = d.LogLevel
	}
}
