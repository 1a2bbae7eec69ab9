package domain

import (
	"slices"
	"strings"
	"unicode"
)

// PackageSet is a set of package names.
type PackageSet map[string]struct{}

// NewPackageSet creates a set from the given names.
func NewPackageSet(names ...string) PackageSet {
	s := make(PackageSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s PackageSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name into the set.
func (s PackageSet) Add(name string) {
	s[name] = struct{}{}
}

// Without returns a new set holding the members of s that are not in other.
func (s PackageSet) Without(other PackageSet) PackageSet {
	out := make(PackageSet, len(s))
	for n := range s {
		if !other.Has(n) {
			out[n] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members in ascending order.
func (s PackageSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Policy controls which packages are considered when comparing lock documents.
type Policy struct {
	// Ignored packages are never reported as changed.
	Ignored PackageSet

	// Included, when non-empty, replaces the manifest-derived package set.
	Included PackageSet

	// RelockAll considers every package of the new lock document.
	RelockAll bool

	// AdminMergeAllow lists the packages whose updates may be merged without review.
	AdminMergeAllow PackageSet
}

// SplitPackageList splits a package list on newlines, commas and whitespace,
// dropping empty tokens and keeping the original order.
func SplitPackageList(list string) []string {
	packages := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if packages == nil {
		return []string{}
	}
	return packages
}

// ParseBoolToken reports whether token spells "true", ignoring case and surrounding
// whitespace. Any other value is false.
func ParseBoolToken(token string) bool {
	return strings.EqualFold(strings.TrimSpace(token), "true")
}
