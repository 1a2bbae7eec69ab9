package fs

// SetRename replaces the rename function for the duration of a test.
func SetRename(fn func(oldpath, newpath string) error) (restore func()) {
	prev := rename
	rename = fn
	return func() { rename = prev }
}
