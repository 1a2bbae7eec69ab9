package reconcile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/core/ports"
)

// NodeID is the unique identifier for the reconcile engine Graft node.
const NodeID graft.ID = "engine.reconcile"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(log), nil
		},
	})
}
