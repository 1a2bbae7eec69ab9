package domain

// VersionIndex maps platform -> package name -> version.
type VersionIndex map[string]map[string]string

// BuildVersionIndex projects the lock document onto the requested platforms.
// Every requested platform gets an entry, empty when no record matches it.
func BuildVersionIndex(doc *LockDocument, platforms []string) VersionIndex {
	idx := make(VersionIndex, len(platforms))
	for _, platform := range platforms {
		idx[platform] = make(map[string]string)
	}
	if doc == nil {
		return idx
	}
	for _, rec := range doc.Packages {
		versions, ok := idx[rec.Platform]
		if !ok {
			continue
		}
		versions[rec.Name] = rec.Version
	}
	return idx
}

// Lookup returns the version of name on platform.
func (idx VersionIndex) Lookup(platform, name string) (string, bool) {
	v, ok := idx[platform][name]
	return v, ok
}
