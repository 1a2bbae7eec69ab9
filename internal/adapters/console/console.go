// Package console writes progress and result messages for humans and CI logs.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/relock/internal/core/ports"
	"golang.org/x/term"
)

var _ ports.Reporter = (*Console)(nil)

// Console implements ports.Reporter.
// Progress goes to stderr. Results go to stdout and are mirrored to stderr.
type Console struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu sync.Mutex
}

// New creates a Console writing to the process streams.
func New() *Console {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters creates a Console writing to the given streams.
// Nil writers fall back to the process streams.
func NewWithWriters(stdout, stderr io.Writer) *Console {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Console{
		stdout: stdout,
		stderr: stderr,
		output: termenv.NewOutput(stderr, termenv.WithProfile(colorProfile(stderr))),
	}
}

// colorProfile enables ANSI styling only for terminals, and never with NO_COLOR set.
func colorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if !isTerminal(w) {
		return termenv.Ascii
	}
	return termenv.ANSI
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// Progress reports a step of the run on stderr.
func (c *Console) Progress(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	styled := c.output.String(strings.TrimRight(msg, "\n")).Faint().String()
	_, _ = fmt.Fprintln(c.stderr, styled)
}

// Result writes msg to stdout unstyled and mirrors it to stderr.
func (c *Console) Result(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = io.WriteString(c.stdout, msg)
	_, _ = io.WriteString(c.stderr, c.output.String(msg).Bold().String())
}
