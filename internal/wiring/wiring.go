// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sieve/internal/adapters/config"
	_ "go.trai.ch/sieve/internal/adapters/logger"
	_ "go.trai.ch/sieve/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/sieve/internal/app"
	_ "go.trai.ch/sieve/internal/engine/factor"
	_ "go.trai.ch/sieve/internal/engine/sieve"
)
