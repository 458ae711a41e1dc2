// Package config provides the configuration loader for ember.
package config

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/ember/internal/core/domain"
	"go.trai.ch/ember/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load searches for .ember.yaml upwards from cwd and returns the parsed
// configuration. When no file is found the defaults apply.
func (l *Loader) Load(cwd string) (domain.ToolConfig, error) {
	cfg := domain.DefaultToolConfig()

	configPath, found := findConfigFile(cwd)
	if !found {
		l.Logger.Debug("no configuration file found, using defaults")
		return withAppDirFallback(cfg), nil
	}

	// #nosec G304 -- path comes from the upward search above
	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file emberFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	if file.AppDir != "" {
		cfg.AppDir = file.AppDir
		if !filepath.IsAbs(cfg.AppDir) {
			cfg.AppDir = filepath.Join(filepath.Dir(configPath), cfg.AppDir)
		}
	}
	if file.TickInterval != "" {
		d, err := time.ParseDuration(file.TickInterval)
		if err != nil {
			return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "field", "tickInterval")
		}
		cfg.TickInterval = d
	}
	if file.DebounceWindow != "" {
		d, err := time.ParseDuration(file.DebounceWindow)
		if err != nil {
			return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "field", "debounceWindow")
		}
		cfg.DebounceWindow = d
	}
	cfg.LogJSON = file.LogJSON

	l.Logger.Debug("configuration loaded", "path", configPath)
	return withAppDirFallback(cfg), nil
}

func findConfigFile(cwd string) (string, bool) {
	currentDir := cwd
	for {
		path := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

// withAppDirFallback defaults the engine installation directory to the
// directory of the running executable.
func withAppDirFallback(cfg domain.ToolConfig) domain.ToolConfig {
	if cfg.AppDir != "" {
		return cfg
	}
	if exe, err := os.Executable(); err == nil {
		cfg.AppDir = filepath.Dir(exe)
	}
	return cfg
}
