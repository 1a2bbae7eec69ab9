// Package reconcile compares lock documents under a package selection policy and
// decides whether the result warrants a commit.
package reconcile

import (
	"slices"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
)

// Result is the comparison of two lock documents.
type Result struct {
	// Targets is the final set of compared package names.
	Targets domain.PackageSet

	// Changes lists the differing versions, platforms in manifest order and
	// names ascending within a platform.
	Changes []domain.ChangeRecord

	// Relocked reports whether any change was found.
	Relocked bool

	// MergeAsAdmin reports whether every change is in the admin merge set.
	MergeAsAdmin bool
}

// Engine runs the diff, policy and decision steps.
type Engine struct {
	logger ports.Logger
}

// NewEngine creates a new Engine.
func NewEngine(logger ports.Logger) *Engine {
	return &Engine{logger: logger}
}

// Reconcile compares oldDoc against newDoc on the manifest's platforms.
func (e *Engine) Reconcile(
	manifest *domain.Manifest,
	oldDoc, newDoc *domain.LockDocument,
	policy domain.Policy,
) Result {
	oldIndex := domain.BuildVersionIndex(oldDoc, manifest.Platforms)
	newIndex := domain.BuildVersionIndex(newDoc, manifest.Platforms)

	initial := initialTargets(manifest, newIndex, policy)
	targets := initial.Without(policy.Ignored)

	e.logger.Debug("package selection",
		"relock_all", policy.RelockAll,
		"initial", initial.Sorted(),
		"ignored", policy.Ignored.Sorted(),
		"include_only", policy.Included.Sorted(),
		"merge_as_admin", policy.AdminMergeAllow.Sorted(),
		"final", targets.Sorted(),
	)

	changes := Diff(manifest.Platforms, oldIndex, newIndex, targets)
	relocked, mergeAsAdmin := Decide(changes, policy)

	return Result{
		Targets:      targets,
		Changes:      changes,
		Relocked:     relocked,
		MergeAsAdmin: mergeAsAdmin,
	}
}

// SelectTargets returns the package names to compare.
//
// Precedence: relock-all takes every package of the new index on the manifest's
// platforms, then a non-empty include list, then the manifest's dependency names.
// Ignored packages are removed from the result in every case.
func SelectTargets(manifest *domain.Manifest, newIndex domain.VersionIndex, policy domain.Policy) domain.PackageSet {
	return initialTargets(manifest, newIndex, policy).Without(policy.Ignored)
}

func initialTargets(manifest *domain.Manifest, newIndex domain.VersionIndex, policy domain.Policy) domain.PackageSet {
	switch {
	case policy.RelockAll:
		targets := domain.NewPackageSet()
		for _, platform := range manifest.Platforms {
			for name := range newIndex[platform] {
				targets.Add(name)
			}
		}
		return targets
	case len(policy.Included) > 0:
		return domain.NewPackageSet(policy.Included.Sorted()...)
	default:
		return domain.NewPackageSet(manifest.DependencyNames()...)
	}
}

// Diff lists every target whose version differs between the indexes, including
// packages present on only one side.
func Diff(platforms []string, oldIndex, newIndex domain.VersionIndex, targets domain.PackageSet) []domain.ChangeRecord {
	names := targets.Sorted()

	var changes []domain.ChangeRecord
	for _, platform := range platforms {
		for _, name := range names {
			oldVersion, hadOld := oldIndex.Lookup(platform, name)
			newVersion, hasNew := newIndex.Lookup(platform, name)
			if hadOld == hasNew && oldVersion == newVersion {
				continue
			}
			changes = append(changes, domain.NewChangeRecord(platform, name, oldVersion, hadOld, newVersion, hasNew))
		}
	}
	return changes
}

// Decide derives the relock and admin merge verdicts from the change set.
func Decide(changes []domain.ChangeRecord, policy domain.Policy) (relocked, mergeAsAdmin bool) {
	if len(changes) == 0 {
		return false, false
	}
	allowed := !slices.ContainsFunc(changes, func(c domain.ChangeRecord) bool {
		return !policy.AdminMergeAllow.Has(c.Name)
	})
	return true, allowed
}
