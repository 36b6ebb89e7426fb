package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

type Config struct {
	Backend string `yaml:"backend,omitempty"`
	// DataFile is relative to the data directory unless absolute.
	DataFile       string  `yaml:"data_file,omitempty"`
	LenientLoad    bool    `yaml:"lenient_load,omitempty"`
	DailyGoalHours float64 `yaml:"daily_goal_hours,omitempty"`
}

// Keys lists the settable config keys in display order.
var Keys = []string{"backend", "data_file", "lenient_load", "daily_goal_hours"}

func Load(dataDir string) (*Config, error) {
	path := filepath.Join(dataDir, "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(dataDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	path := filepath.Join(dataDir, "config.yaml")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch c.Backend {
	case "", BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("invalid backend %q: must be one of json, sqlite", c.Backend)
	}
	if c.DailyGoalHours < 0 {
		return fmt.Errorf("daily_goal_hours must not be negative")
	}
	return nil
}

// BackendName returns the configured backend, defaulting to json.
func (c *Config) BackendName() string {
	if c.Backend == "" {
		return BackendJSON
	}
	return c.Backend
}

// StorePath resolves the task data file for the configured backend.
func (c *Config) StorePath(dataDir string) string {
	name := c.DataFile
	if name == "" {
		name = "tasks.json"
		if c.BackendName() == BackendSQLite {
			name = "tasks.db"
		}
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dataDir, name)
}

// Set assigns a config key from its string form.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "backend":
		next.Backend = value
	case "data_file":
		next.DataFile = value
	case "lenient_load":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("lenient_load must be true or false: %w", err)
		}
		next.LenientLoad = b
	case "daily_goal_hours":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("daily_goal_hours must be a number: %w", err)
		}
		next.DailyGoalHours = f
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Get returns a config key in its string form.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "backend":
		return c.BackendName(), nil
	case "data_file":
		return c.DataFile, nil
	case "lenient_load":
		return strconv.FormatBool(c.LenientLoad), nil
	case "daily_goal_hours":
		return strconv.FormatFloat(c.DailyGoalHours, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}
