package domain

// Outcome is the result of one reconciliation run.
type Outcome struct {
	// Relocked reports whether the lock file content changed and should be committed.
	Relocked bool

	// MergeAsAdmin reports whether every changed package is in the admin merge set.
	// It is never true when Relocked is false.
	MergeAsAdmin bool

	// Created reports whether the lock file did not exist before the run.
	Created bool

	// Changes are the reported package changes, grouped by platform.
	Changes []ChangeRecord

	// Report is the human-readable change summary.
	Report string
}

// Config is the explicit input of a reconciliation run.
type Config struct {
	// ManifestPath is the environment manifest to solve.
	ManifestPath string

	// LockPath is the lock file that is reconciled in place.
	LockPath string

	// Policy selects and classifies the compared packages.
	Policy Policy
}

// SolveResult is the outcome of a solver invocation that ran to completion.
type SolveResult struct {
	// ExitCode is the solver process exit status.
	ExitCode int

	// Stderr is the captured standard error of the solver.
	Stderr string
}

// OK reports whether the solver succeeded.
func (r SolveResult) OK() bool {
	return r.ExitCode == 0
}
