package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the lock codec Graft node.
	NodeID graft.ID = "adapter.lock_codec"
	// StoreNodeID is the unique identifier for the lock store Graft node.
	StoreNodeID graft.ID = "adapter.lock_store"
)

func init() {
	graft.Register(graft.Node[ports.LockCodec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockCodec, error) {
			return NewCodec(), nil
		},
	})

	graft.Register(graft.Node[ports.LockStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.LockStore, error) {
			codec, err := graft.Dep[ports.LockCodec](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(codec), nil
		},
	})
}
