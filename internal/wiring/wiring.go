// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/envkit/internal/adapters/cas"
	_ "go.trai.ch/envkit/internal/adapters/config"
	_ "go.trai.ch/envkit/internal/adapters/conftest"
	_ "go.trai.ch/envkit/internal/adapters/fs"
	_ "go.trai.ch/envkit/internal/adapters/logger"
	_ "go.trai.ch/envkit/internal/adapters/registry"
	_ "go.trai.ch/envkit/internal/adapters/shell"
	_ "go.trai.ch/envkit/internal/adapters/status"
	_ "go.trai.ch/envkit/internal/adapters/which"
	// Register app and engine nodes.
	_ "go.trai.ch/envkit/internal/app"
	_ "go.trai.ch/envkit/internal/engine/probe"
	_ "go.trai.ch/envkit/internal/engine/thirdparty"
	_ "go.trai.ch/envkit/internal/engine/tools"
)
