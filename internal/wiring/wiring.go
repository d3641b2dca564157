// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/debugdump/internal/adapters/backend"
	_ "go.trai.ch/debugdump/internal/adapters/config"
	_ "go.trai.ch/debugdump/internal/adapters/hasher"
	_ "go.trai.ch/debugdump/internal/adapters/linear"
	_ "go.trai.ch/debugdump/internal/adapters/logger"
	_ "go.trai.ch/debugdump/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/debugdump/internal/app"
	_ "go.trai.ch/debugdump/internal/engine/reconcile"
)
