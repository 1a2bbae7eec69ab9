package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the file hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// BackupNodeID is the unique identifier for the lock file backup Graft node.
	BackupNodeID graft.ID = "adapter.fs.backup"
	// VerifierNodeID is the unique identifier for the file verifier Graft node.
	VerifierNodeID graft.ID = "adapter.fs.verifier"
)

func init() {
	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.Backup]{
		ID:        BackupNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID},
		Run: func(ctx context.Context) (ports.Backup, error) {
			hasher, err := graft.Dep[*Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewBackup(hasher, ""), nil
		},
	})

	graft.Register(graft.Node[*Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Verifier, error) {
			return NewVerifier(), nil
		},
	})
}
