// Package config resolves countdown settings from defaults, an optional
// YAML file, COUNTDOWN_* environment variables and command-line flags,
// in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/countdown/internal/countdown"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRefresh = 500 * time.Millisecond
	MinRefresh     = 50 * time.Millisecond

	dirName = ".countdown"
)

// Config holds everything the countdown driver needs.
type Config struct {
	// TargetMinute is nil until a file, env var, flag or prompt sets it.
	TargetMinute *int          `yaml:"target_minute"`
	Refresh      time.Duration `yaml:"refresh"`
	Plain        bool          `yaml:"plain"`
	History      bool          `yaml:"history"`
	DBPath       string        `yaml:"db_path"`
	LogFile      string        `yaml:"log_file"`
	Note         string        `yaml:"note"`
}

// DefaultConfig returns a Config with history stored under ~/.countdown.
// No target minute is set.
func DefaultConfig() Config {
	cfg := Config{
		Refresh: DefaultRefresh,
		History: true,
		DBPath:  filepath.Join(dirName, "countdown.db"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.DBPath = filepath.Join(home, dirName, "countdown.db")
	}
	return cfg
}

// DefaultFilePath returns COUNTDOWN_CONFIG if set, otherwise
// ~/.countdown/config.yaml. explicit reports whether the path came from
// the environment.
func DefaultFilePath() (path string, explicit bool) {
	if v := os.Getenv("COUNTDOWN_CONFIG"); v != "" {
		return v, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, dirName, "config.yaml"), false
}

// Load builds a Config from defaults, the YAML file at path and the
// environment. A missing file is only an error when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if !required && errors.Is(err, fs.ErrNotExist) {
				err = nil
			}
			if err != nil {
				return Config{}, err
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDefault is Load with the path from DefaultFilePath.
func LoadDefault() (Config, error) {
	path, explicit := DefaultFilePath()
	return Load(path, explicit)
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides fields from COUNTDOWN_* variables. Malformed values
// are ignored and the previous setting is kept.
func (c *Config) applyEnv() {
	if v := os.Getenv("COUNTDOWN_TARGET_MINUTE"); v != "" {
		if m, err := countdown.ParseTargetMinute(v); err == nil {
			n := m.Int()
			c.TargetMinute = &n
		}
	}
	if v := os.Getenv("COUNTDOWN_REFRESH_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Refresh = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("COUNTDOWN_PLAIN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Plain = b
		}
	}
	if v := os.Getenv("COUNTDOWN_HISTORY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.History = b
		}
	}
	if v := os.Getenv("COUNTDOWN_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("COUNTDOWN_LOG_FILE"); v != "" {
		c.LogFile = v
	}
}

// Validate checks the values that would break the countdown driver.
func (c Config) Validate() error {
	if c.TargetMinute != nil {
		if _, err := countdown.NewTargetMinute(*c.TargetMinute); err != nil {
			return err
		}
	}
	if c.Refresh < MinRefresh {
		return fmt.Errorf("refresh interval %s is below the %s minimum", c.Refresh, MinRefresh)
	}
	if c.History && c.DBPath == "" {
		return fmt.Errorf("history is enabled but no database path is set")
	}
	return nil
}

// Target returns the configured target minute.
func (c Config) Target() (countdown.TargetMinute, bool) {
	if c.TargetMinute == nil {
		return 0, false
	}
	return countdown.TargetMinute(*c.TargetMinute), true
}

// SetTarget records m as the target minute.
func (c *Config) SetTarget(m countdown.TargetMinute) {
	n := m.Int()
	c.TargetMinute = &n
}
