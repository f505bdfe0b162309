// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/delphix/savedump/internal/adapters/archive"
	_ "github.com/delphix/savedump/internal/adapters/config"
	_ "github.com/delphix/savedump/internal/adapters/kdump"
	_ "github.com/delphix/savedump/internal/adapters/logger"
	_ "github.com/delphix/savedump/internal/adapters/probe"
	_ "github.com/delphix/savedump/internal/adapters/shell"
	_ "github.com/delphix/savedump/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/delphix/savedump/internal/app"
	_ "github.com/delphix/savedump/internal/engine/classifier"
	_ "github.com/delphix/savedump/internal/engine/debuginfo"
	_ "github.com/delphix/savedump/internal/engine/kmod"
	_ "github.com/delphix/savedump/internal/engine/libraries"
)
