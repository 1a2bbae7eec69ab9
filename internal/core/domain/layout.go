package domain

const (
	// DefaultSolverCommand is the solver invocation prefix used when none is configured.
	DefaultSolverCommand = "conda lock"

	// BackupDirPattern is the os.MkdirTemp pattern for the lock file stash.
	BackupDirPattern = "relock-*"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// Output flag names consumed by the surrounding CI workflow.
const (
	OutputRelocked     = "env_relocked"
	OutputMergeAsAdmin = "merge_as_admin"
)
