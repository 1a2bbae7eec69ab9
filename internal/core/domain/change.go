package domain

// ChangeRecord describes a version change of one package on one platform.
// A nil Old means the package was added, a nil New means it was removed.
type ChangeRecord struct {
	Platform string
	Name     string
	Old      *string
	New      *string
}

// NewChangeRecord builds a record from two index lookups.
func NewChangeRecord(platform, name string, oldVersion string, hadOld bool, newVersion string, hasNew bool) ChangeRecord {
	rec := ChangeRecord{Platform: platform, Name: name}
	if hadOld {
		rec.Old = &oldVersion
	}
	if hasNew {
		rec.New = &newVersion
	}
	return rec
}
