package solver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
)

// NodeID is the unique identifier for the solver Graft node.
const NodeID graft.ID = "adapter.solver"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			command, err := ParseCommand(domain.DefaultSolverCommand)
			if err != nil {
				return nil, err
			}
			return NewRunner(command, log), nil
		},
	})
}
