package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// nameTerminators end the package name portion of a match spec.
const nameTerminators = " \t=<>!~,|;@("

// MatchSpecName extracts the bare package name from a conda match spec such as
// "conda-forge::numpy>=1.26", "python 3.12.*" or "scipy[version='>=1.11']".
func MatchSpecName(spec string) (string, error) {
	s := spec
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)

	// channel::name or channel/subdir::name
	if i := strings.LastIndex(s, "::"); i >= 0 {
		s = s[i+2:]
	}

	if i := strings.IndexByte(s, '['); i >= 0 {
		s = s[:i]
	}

	if i := strings.IndexAny(s, nameTerminators); i >= 0 {
		s = s[:i]
	}

	if s == "" {
		return "", zerr.With(ErrInvalidMatchSpec, "spec", spec)
	}
	return s, nil
}
