package domain

import "go.trai.ch/zerr"

// Parse errors.
var (
	// ErrManifestParseFailed is returned when the environment manifest is malformed.
	ErrManifestParseFailed = zerr.New("failed to parse environment manifest")

	// ErrLockfileParseFailed is returned when a lock document is structurally invalid.
	ErrLockfileParseFailed = zerr.New("failed to parse lock file")

	// ErrLockfileSerializeFailed is returned when a lock document cannot be encoded.
	ErrLockfileSerializeFailed = zerr.New("failed to serialize lock file")

	// ErrInvalidMatchSpec is returned when no package name can be extracted from a constraint.
	ErrInvalidMatchSpec = zerr.New("invalid match spec")
)

// Solver errors.
var (
	// ErrSolverFailed is returned when the solver exits with a non-zero status.
	ErrSolverFailed = zerr.New("solver failed")

	// ErrSolverStartFailed is returned when the solver process cannot be started.
	ErrSolverStartFailed = zerr.New("failed to start solver")

	// ErrEmptySolverCommand is returned when no solver command is configured.
	ErrEmptySolverCommand = zerr.New("solver command is empty")
)

// I/O errors.
var (
	// ErrManifestReadFailed is returned when the environment manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read environment manifest")

	// ErrLockfileReadFailed is returned when a lock file cannot be read.
	ErrLockfileReadFailed = zerr.New("failed to read lock file")

	// ErrLockfileWriteFailed is returned when a lock file cannot be written.
	ErrLockfileWriteFailed = zerr.New("failed to write lock file")

	// ErrBackupFailed is returned when the existing lock file cannot be moved aside.
	ErrBackupFailed = zerr.New("failed to back up lock file")

	// ErrRestoreFailed is returned when the backed up lock file cannot be put back.
	ErrRestoreFailed = zerr.New("failed to restore lock file")

	// ErrOutputWriteFailed is returned when the CI output flags cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output flags")
)

// Configuration errors.
var (
	// ErrMissingManifestPath is returned when no environment manifest path is configured.
	ErrMissingManifestPath = zerr.New("environment file is required")

	// ErrMissingLockPath is returned when no lock file path is configured.
	ErrMissingLockPath = zerr.New("lock file is required")

	// ErrManifestNotFound is returned when the environment manifest does not exist.
	ErrManifestNotFound = zerr.New("environment file does not exist")
)
