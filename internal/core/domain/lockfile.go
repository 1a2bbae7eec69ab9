package domain

import (
	"cmp"
	"slices"
)

// Field is a key-value pair carried through the lock codec without interpretation.
type Field struct {
	Key   string
	Value any
}

// PackageRecord is one resolved package on one platform.
type PackageRecord struct {
	// Name is the package name (e.g., "numpy").
	Name string

	// Version is the pinned version (e.g., "1.26.4").
	Version string

	// Platform is the target platform (e.g., "linux-64").
	Platform string

	// Extra holds the solver-specific fields (manager, url, hash, dependencies, ...)
	// in their original order.
	Extra []Field
}

// LockDocument is the complete state of resolved packages across platforms.
type LockDocument struct {
	// Header holds every top-level key other than "package" (e.g., "version",
	// "metadata") in its original order.
	Header []Field

	// Packages are the package records.
	Packages []PackageRecord
}

// SortedPackages returns a copy of the records ordered by (name, platform).
// Records with equal keys keep their relative order.
func (d *LockDocument) SortedPackages() []PackageRecord {
	sorted := slices.Clone(d.Packages)
	slices.SortStableFunc(sorted, comparePackageRecords)
	return sorted
}

func comparePackageRecords(a, b PackageRecord) int {
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.Platform, b.Platform)
}
