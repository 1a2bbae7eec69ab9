package ports

import "os"

// Backup moves files aside for the duration of a transaction.
//
//go:generate go run go.uber.org/mock/mockgen -source=backup.go -destination=mocks/mock_backup.go -package=mocks
type Backup interface {
	// Stash moves the file at path into a fresh temporary directory.
	// When no file exists at path the returned Stash holds nothing.
	// The caller must Close the Stash on every path.
	Stash(path string) (Stash, error)
}

// Stash is a scoped backup of a single file.
type Stash interface {
	// Held reports whether a file was moved aside.
	Held() bool

	// Path returns the location of the backup copy, or "" when nothing is held.
	Path() string

	// Mode returns the permission bits of the file that was moved aside.
	Mode() os.FileMode

	// Restore moves the backup over the original path and verifies its content.
	// Restore after a successful Restore is a no-op.
	Restore() error

	// Close removes the temporary directory and whatever is left in it.
	Close() error
}
