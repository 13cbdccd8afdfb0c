// Package config loads mixtree configuration from a TOML file.
//
// Configuration is optional: every field has a working default, and a
// missing config file is not an error. The default location follows XDG
// conventions (~/.config/mixtree/config.toml).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/brewlab/mixtree/pkg/recipe"
)

// appName is used for the XDG config directory.
const appName = "mixtree"

// Config is the full application configuration.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// LayoutConfig holds flowchart geometry. Zero values fall back to
// [recipe.DefaultGeometry].
type LayoutConfig struct {
	RootX    float64 `toml:"root_x"`
	RootY    float64 `toml:"root_y"`
	HSpacing float64 `toml:"h_spacing"`
	VSpacing float64 `toml:"v_spacing"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is "file" (default), "redis", or "none".
	Backend string `toml:"backend"`
	// Dir overrides the file cache directory.
	Dir string `toml:"dir"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Cache:  CacheConfig{Backend: "file"},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads the config file at path. An empty path loads the default
// location; a missing file at the default location yields [Default].
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultPath(); err != nil {
			return Default(), nil
		}
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Geometry converts the layout section to the engine's geometry, filling
// unset fields from the defaults.
func (c Config) Geometry() recipe.Geometry {
	geom := recipe.DefaultGeometry()
	if c.Layout.RootX != 0 {
		geom.RootX = c.Layout.RootX
	}
	if c.Layout.RootY != 0 {
		geom.RootY = c.Layout.RootY
	}
	if c.Layout.HSpacing != 0 {
		geom.HSpacing = c.Layout.HSpacing
	}
	if c.Layout.VSpacing != 0 {
		geom.VSpacing = c.Layout.VSpacing
	}
	return geom
}

// defaultPath returns the XDG config file location.
func defaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
