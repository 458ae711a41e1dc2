// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ember/internal/adapters/config"
	_ "go.trai.ch/ember/internal/adapters/content"
	_ "go.trai.ch/ember/internal/adapters/logger"
	_ "go.trai.ch/ember/internal/adapters/pool"
	_ "go.trai.ch/ember/internal/adapters/telemetry"
	_ "go.trai.ch/ember/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/ember/internal/app"
)
