package ports

import (
	"os"

	"go.trai.ch/relock/internal/core/domain"
)

// LockStore loads and saves lock documents on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock_store.go -destination=mocks/mock_lock_store.go -package=mocks
type LockStore interface {
	// Load reads and parses the lock file at path.
	Load(path string) (*domain.LockDocument, error)

	// Save writes doc to path in canonical form with permission perm,
	// replacing the file atomically. A zero perm means domain.FilePerm.
	Save(path string, doc *domain.LockDocument, perm os.FileMode) error
}
