// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/scriptjob/internal/adapters/config"
	_ "go.trai.ch/scriptjob/internal/adapters/logger"
	_ "go.trai.ch/scriptjob/internal/adapters/staging"
	_ "go.trai.ch/scriptjob/internal/adapters/starlark"
	_ "go.trai.ch/scriptjob/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/scriptjob/internal/app"
	_ "go.trai.ch/scriptjob/internal/engine/launch"
)
