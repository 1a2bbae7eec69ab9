package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/zerr"
)

// Verifier checks for the existence of files.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// FileExists reports whether path names an existing regular file.
// A directory at path counts as missing.
func (v *Verifier) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return info.Mode().IsRegular(), nil
}
