package lockfile

import (
	"os"
	"path/filepath"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockStore = (*Store)(nil)

// Store implements ports.LockStore on top of a LockCodec.
type Store struct {
	codec ports.LockCodec
}

// NewStore creates a new Store.
func NewStore(codec ports.LockCodec) *Store {
	return &Store{codec: codec}
}

// Load reads and parses the lock file at path.
func (s *Store) Load(path string) (*domain.LockDocument, error) {
	//nolint:gosec // Path is provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileReadFailed.Error()), "path", path)
	}

	doc, err := s.codec.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return doc, nil
}

// Save serializes doc and replaces path with the result.
// The data is written to a sibling temporary file first and renamed into place.
func (s *Store) Save(path string, doc *domain.LockDocument, perm os.FileMode) error {
	if perm == 0 {
		perm = domain.FilePerm
	}

	data, err := s.codec.Serialize(doc)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockfileWriteFailed.Error()), "path", path)
	}
	tmpPath := tmp.Name()

	if err := writeAndClose(tmp, data, perm); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, domain.ErrLockfileWriteFailed.Error()), "path", path)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, domain.ErrLockfileWriteFailed.Error()), "path", path)
	}
	return nil
}

func writeAndClose(f *os.File, data []byte, perm os.FileMode) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(perm); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
