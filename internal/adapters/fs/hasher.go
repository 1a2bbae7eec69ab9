// Package fs provides file system adapters: content digests, existence checks
// and the scoped lock file backup.
package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Hasher computes content digests of files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// FormatDigest renders a digest the way it appears in logs.
func FormatDigest(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
