package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/evry/internal/adapters/clock"
	"go.trai.ch/evry/internal/adapters/config"
	"go.trai.ch/evry/internal/adapters/logger"
	"go.trai.ch/evry/internal/adapters/tagstore"
	"go.trai.ch/evry/internal/core/ports"
)

// Components bundles the fully wired application for the CLI entrypoint.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID, tagstore.NodeID, clock.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.TagStore](ctx)
			if err != nil {
				return nil, err
			}
			clk, err := graft.Dep[ports.Clock](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(store, clk, log, cfg),
				Logger: log,
			}, nil
		},
	})
}
