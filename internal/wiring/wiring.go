// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/evry/internal/adapters/clock"
	_ "go.trai.ch/evry/internal/adapters/config"
	_ "go.trai.ch/evry/internal/adapters/logger"
	_ "go.trai.ch/evry/internal/adapters/tagstore"
	// Register app nodes.
	_ "go.trai.ch/evry/internal/app"
)
