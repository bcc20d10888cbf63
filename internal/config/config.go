package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-cli/internal/mines"
	"gopkg.in/yaml.v3"
)

type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type Game struct {
	FieldSize int     `yaml:"field_size"`
	Seed      *uint64 `yaml:"seed"`
}

type Config struct {
	Mode string `yaml:"mode"`
	Log  Log    `yaml:"log"`
	Game Game   `yaml:"game"`
}

func Default() *Config {
	c := &Config{}
	c.fillDefaults()
	return c
}

// Load reads the YAML config at path, then applies environment overrides.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	c := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
	}
	c.applyEnv()
	c.fillDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() {
	if Development() {
		c.Mode = "development"
	}
	if level, ok := os.LookupEnv("MINES_LOG_LEVEL"); ok {
		c.Log.Level = level
	}
	if file, ok := os.LookupEnv("MINES_LOG_FILE"); ok {
		c.Log.File = file
	}
}

func (c *Config) fillDefaults() {
	if c.Mode == "" {
		c.Mode = "production"
	}
	if c.Log.Level == "" {
		if c.Development() {
			c.Log.Level = "debug"
		} else {
			c.Log.Level = "warn"
		}
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 10
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = 28
	}
	if c.Game.FieldSize == 0 {
		c.Game.FieldSize = mines.DefaultFieldSize
	}
}

func (c Config) Validate() error {
	if c.Side() < 2 {
		return fmt.Errorf("field size %d is too small", c.Game.FieldSize)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Mode != "production" && c.Mode != "development" {
		return errors.New("mode must be production or development")
	}
	return nil
}

func (c Config) Side() int {
	return mines.SideOf(c.Game.FieldSize)
}

func (c Config) LogLevel() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return level, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) Fields() logrus.Fields {
	fields := logrus.Fields{
		"mode":             c.Mode,
		"log_level":        c.Log.Level,
		"log_file":         c.Log.File,
		"log_max_size_mb":  c.Log.MaxSizeMB,
		"log_max_backups":  c.Log.MaxBackups,
		"log_max_age_days": c.Log.MaxAgeDays,
		"field_size":       c.Game.FieldSize,
	}
	if c.Game.Seed != nil {
		fields["seed"] = *c.Game.Seed
	}
	return fields
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
