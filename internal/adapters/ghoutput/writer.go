// Package ghoutput publishes step outputs through the GitHub Actions output file.
package ghoutput

import (
	"fmt"
	"os"
	"strconv"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvVar names the variable GitHub Actions uses to pass the output file path.
const EnvVar = "GITHUB_OUTPUT"

var _ ports.Outputs = (*Writer)(nil)

// Writer appends key=value lines to the output file.
type Writer struct {
	path   string
	logger ports.Logger
}

// NewWriter creates a Writer for path. An empty path only logs the flags.
func NewWriter(path string, logger ports.Logger) *Writer {
	return &Writer{
		path:   path,
		logger: logger,
	}
}

// WithPath returns a copy of the Writer that appends to path.
func (w *Writer) WithPath(path string) *Writer {
	return &Writer{
		path:   path,
		logger: w.logger,
	}
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// SetFlags writes both flags in a single append.
func (w *Writer) SetFlags(relocked, mergeAsAdmin bool) error {
	w.logger.Info("output flags",
		domain.OutputRelocked, relocked,
		domain.OutputMergeAsAdmin, mergeAsAdmin,
	)
	if w.path == "" {
		return nil
	}

	content := fmt.Sprintf("%s=%s\n%s=%s\n",
		domain.OutputRelocked, strconv.FormatBool(relocked),
		domain.OutputMergeAsAdmin, strconv.FormatBool(mergeAsAdmin),
	)

	//nolint:gosec // G304: path is provided by the CI runner
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", w.path)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", w.path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", w.path)
	}
	return nil
}
