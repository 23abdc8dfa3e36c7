package tagstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/evry/internal/adapters/config"
	"go.trai.ch/evry/internal/core/ports"
)

// NodeID is the unique identifier for the tag store Graft node.
const NodeID graft.ID = "adapter.tag_store"

func init() {
	graft.Register(graft.Node[ports.TagStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.TagStore, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.DataDir)
		},
	})
}
