package ghoutput

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/relock/internal/core/ports"
)

// NodeID is the unique identifier for the output writer Graft node.
const NodeID graft.ID = "adapter.ghoutput"

func init() {
	graft.Register(graft.Node[*Writer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Writer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(os.Getenv(EnvVar), log), nil
		},
	})
}
