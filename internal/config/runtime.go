// Package config provides centralized configuration for Countdown runtime values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/manav03panchal/countdown/internal/model"
	"github.com/manav03panchal/countdown/internal/validate"
)

// AppName is the application name used for config and state directories.
const AppName = "countdown"

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	// Tick configuration
	Tick TickConfig

	// View configuration
	View ViewConfig

	// Categories is the category-to-color table, in selector order.
	Categories model.CategoryTable
}

// TickConfig holds refresh loop configuration.
type TickConfig struct {
	// Interval is how often running timers are recomputed.
	// Default: 1s
	Interval time.Duration
}

// ViewConfig holds presentation policy.
type ViewConfig struct {
	// RemoveWhileRunning enables the remove action before a timer reaches zero.
	// Default: false (remove is only enabled once the countdown is done)
	RemoveWhileRunning bool
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Tick: TickConfig{
			Interval: time.Second,
		},
		View: ViewConfig{
			RemoveWhileRunning: false,
		},
		Categories: model.DefaultCategories(),
	}
}

// DefaultConfigPath returns the default config file path following XDG spec.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// DefaultLogPath returns the debug log path following XDG spec.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, AppName, AppName+".log")
}

// Load builds the configuration: defaults, then the config file, then
// environment overrides. An empty path uses COUNTDOWN_CONFIG or the default
// path; a missing default file is not an error.
func Load(path string) (*RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()

	explicit := path != ""
	if !explicit {
		if envPath := os.Getenv("COUNTDOWN_CONFIG"); envPath != "" {
			path = envPath
			explicit = true
		} else {
			path = DefaultConfigPath()
		}
	}

	if _, err := os.Stat(path); err == nil {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	cfg.loadFromEnv()
	return cfg, nil
}

// LoadFile merges a YAML config file into c.
func (c *RuntimeConfig) LoadFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if v.IsSet("tick_interval") {
		d := v.GetDuration("tick_interval")
		if d <= 0 {
			return fmt.Errorf("config %s: tick_interval must be positive", path)
		}
		c.Tick.Interval = d
	}
	if v.IsSet("remove_while_running") {
		c.View.RemoveWhileRunning = v.GetBool("remove_while_running")
	}
	if v.IsSet("categories") {
		var cats model.CategoryTable
		if err := v.UnmarshalKey("categories", &cats); err != nil {
			return fmt.Errorf("config %s: categories: %w", path, err)
		}
		for _, cat := range cats {
			if err := validate.HexColor(cat.Color); err != nil {
				return fmt.Errorf("config %s: category %q: %w", path, cat.Name, err)
			}
		}
		c.Categories = c.Categories.Merge(cats)
	}

	return nil
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("COUNTDOWN_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Tick.Interval = d
		}
	}
	if v := os.Getenv("COUNTDOWN_REMOVE_WHILE_RUNNING"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.View.RemoveWhileRunning = b
		}
	}
}
