package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"syscall"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Backup = (*Backup)(nil)

// rename is swapped in tests to simulate cross-device moves.
var rename = os.Rename

// Backup moves files into per-run temporary directories.
type Backup struct {
	hasher  *Hasher
	tempDir string
}

// NewBackup creates a Backup that creates its directories under tempDir,
// or under the system temporary directory when tempDir is empty.
func NewBackup(hasher *Hasher, tempDir string) *Backup {
	return &Backup{
		hasher:  hasher,
		tempDir: tempDir,
	}
}

// Stash moves the file at path aside. A missing file yields an empty Stash.
func (b *Backup) Stash(path string) (ports.Stash, error) {
	info, err := os.Stat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return &Stash{original: path}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBackupFailed.Error()), "path", path)
	}
	if !info.Mode().IsRegular() {
		backupErr := zerr.With(domain.ErrBackupFailed, "path", path)
		return nil, zerr.With(backupErr, "reason", "not a regular file")
	}

	digest, err := b.hasher.ComputeFileHash(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBackupFailed.Error()), "path", path)
	}

	dir, err := os.MkdirTemp(b.tempDir, domain.BackupDirPattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBackupFailed.Error()), "path", path)
	}

	backupPath := filepath.Join(dir, filepath.Base(path))
	if err := moveFile(path, backupPath, info.Mode().Perm()); err != nil {
		_ = os.RemoveAll(dir)
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBackupFailed.Error()), "path", path)
	}

	return &Stash{
		hasher:   b.hasher,
		original: path,
		backup:   backupPath,
		dir:      dir,
		digest:   digest,
		mode:     info.Mode().Perm(),
	}, nil
}

// Stash holds one moved-aside file.
type Stash struct {
	hasher   *Hasher
	original string
	backup   string
	dir      string
	digest   uint64
	mode     os.FileMode
	restored bool
}

// Held reports whether a file was moved aside.
func (s *Stash) Held() bool {
	return s.backup != ""
}

// Path returns the backup location, "" when nothing is held.
func (s *Stash) Path() string {
	if s.restored {
		return ""
	}
	return s.backup
}

// Mode returns the permission bits of the moved file.
func (s *Stash) Mode() os.FileMode {
	return s.mode
}

// Restore puts the backup back at the original path, replacing anything the
// solver left there, and checks the restored content against the digest.
func (s *Stash) Restore() error {
	if !s.Held() || s.restored {
		return nil
	}

	if err := moveFile(s.backup, s.original, s.mode); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRestoreFailed.Error()), "path", s.original)
	}
	s.restored = true

	got, err := s.hasher.ComputeFileHash(s.original)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRestoreFailed.Error()), "path", s.original)
	}
	if got != s.digest {
		restoreErr := zerr.With(domain.ErrRestoreFailed, "path", s.original)
		restoreErr = zerr.With(restoreErr, "expected", FormatDigest(s.digest))
		return zerr.With(restoreErr, "actual", FormatDigest(got))
	}
	return nil
}

// Close removes the temporary directory. It is safe to call more than once.
func (s *Stash) Close() error {
	if s.dir == "" {
		return nil
	}
	dir := s.dir
	s.dir = ""
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove backup directory"), "path", dir)
	}
	return nil
}

// moveFile renames src to dst, copying across file systems when needed.
func moveFile(src, dst string, mode os.FileMode) error {
	err := rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}
	if err := copyFile(src, dst, mode); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Read-only file

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
