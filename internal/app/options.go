package app

import (
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
)

// RelockOptions configuration for the Relock method.
// Package lists are raw delimiter-separated strings as passed on the command line.
type RelockOptions struct {
	EnvironmentFile      string
	LockFile             string
	IgnoredPackages      string
	RelockAllPackages    string
	IncludeOnlyPackages  string
	MergeAsAdminPackages string
	Solver               string
	GitHubOutput         string
}

// DiffOptions configuration for the Diff method.
type DiffOptions struct {
	EnvironmentFile      string
	OldLockFile          string
	NewLockFile          string
	IgnoredPackages      string
	RelockAllPackages    string
	IncludeOnlyPackages  string
	MergeAsAdminPackages string
}

// DiffResult is the outcome of comparing two lock files.
type DiffResult struct {
	Changes      []domain.ChangeRecord
	Relocked     bool
	MergeAsAdmin bool
	Report       string
}

// BuildPolicy turns the raw list options into a domain.Policy.
func BuildPolicy(ignored, relockAll, includeOnly, mergeAsAdmin string) domain.Policy {
	return domain.Policy{
		Ignored:         domain.NewPackageSet(domain.SplitPackageList(ignored)...),
		Included:        domain.NewPackageSet(domain.SplitPackageList(includeOnly)...),
		RelockAll:       domain.ParseBoolToken(relockAll),
		AdminMergeAllow: domain.NewPackageSet(domain.SplitPackageList(mergeAsAdmin)...),
	}
}

// BuildConfig validates the options and returns the run configuration.
// It does not check the file system.
func BuildConfig(opts RelockOptions) (domain.Config, error) {
	if opts.EnvironmentFile == "" {
		return domain.Config{}, domain.ErrMissingManifestPath
	}
	if opts.LockFile == "" {
		return domain.Config{}, domain.ErrMissingLockPath
	}
	return domain.Config{
		ManifestPath: opts.EnvironmentFile,
		LockPath:     opts.LockFile,
		Policy: BuildPolicy(
			opts.IgnoredPackages,
			opts.RelockAllPackages,
			opts.IncludeOnlyPackages,
			opts.MergeAsAdminPackages,
		),
	}, nil
}

func requirePath(path string, missing error) error {
	if path == "" {
		return missing
	}
	return nil
}

func notFound(path string) error {
	return zerr.With(domain.ErrManifestNotFound, "path", path)
}
