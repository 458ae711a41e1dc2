package domain

import "time"

// ConfigFileName is the tool configuration file searched for upwards
// from the working directory.
const ConfigFileName = ".ember.yaml"

// ToolConfig holds tool-level settings that are independent of any
// particular workspace.
type ToolConfig struct {
	// AppDir is the engine installation directory app:// URIs resolve
	// against. Defaults to the directory of the running executable.
	AppDir string
	// TickInterval is the pause between cache ticks while draining
	// pending work.
	TickInterval time.Duration
	// DebounceWindow is how long the file watcher waits for a burst of
	// events to settle before re-validating.
	DebounceWindow time.Duration
	// LogJSON switches log output to JSON lines.
	LogJSON bool
}

// DefaultToolConfig returns the configuration used when no config file
// is present.
func DefaultToolConfig() ToolConfig {
	return ToolConfig{
		TickInterval:   10 * time.Millisecond,
		DebounceWindow: 200 * time.Millisecond,
	}
}
