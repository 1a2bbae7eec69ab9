// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/relock/internal/adapters/console"
	_ "go.trai.ch/relock/internal/adapters/fs"
	_ "go.trai.ch/relock/internal/adapters/ghoutput"
	_ "go.trai.ch/relock/internal/adapters/lockfile"
	_ "go.trai.ch/relock/internal/adapters/logger"
	_ "go.trai.ch/relock/internal/adapters/manifest"
	_ "go.trai.ch/relock/internal/adapters/solver"
	_ "go.trai.ch/relock/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/relock/internal/app"
	_ "go.trai.ch/relock/internal/engine/reconcile"
	_ "go.trai.ch/relock/internal/engine/transaction"
)
