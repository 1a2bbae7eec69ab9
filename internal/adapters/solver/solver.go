// Package solver runs the external lock file solver.
package solver

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Solver using os/exec.
type Runner struct {
	command []string
	logger  ports.Logger
}

// NewRunner creates a Runner for the given command prefix.
// The manifest and lock paths are appended as --file and --lockfile.
func NewRunner(command []string, logger ports.Logger) *Runner {
	return &Runner{
		command: command,
		logger:  logger,
	}
}

// WithCommand returns a copy of the Runner that invokes command instead.
func (r *Runner) WithCommand(command []string) *Runner {
	return &Runner{
		command: command,
		logger:  r.logger,
	}
}

// Command returns the configured command prefix.
func (r *Runner) Command() []string {
	return r.command
}

// ParseCommand splits a solver command line on whitespace.
func ParseCommand(line string) ([]string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, domain.ErrEmptySolverCommand
	}
	return fields, nil
}

// Solve runs the solver and waits for it to exit.
func (r *Runner) Solve(ctx context.Context, manifestPath, lockPath string) (domain.SolveResult, error) {
	if len(r.command) == 0 {
		return domain.SolveResult{}, domain.ErrEmptySolverCommand
	}

	args := make([]string, 0, len(r.command)+3)
	args = append(args, r.command[1:]...)
	args = append(args, "--file", manifestPath, "--lockfile", lockPath)

	cmd := exec.CommandContext(ctx, r.command[0], args...) //nolint:gosec // user provided command
	r.logger.Debug("running solver", "command", strings.Join(cmd.Args, " "))

	var stderr bytes.Buffer
	stdoutLog := &logWriter{logger: r.logger, stream: "stdout"}
	stderrLog := &logWriter{logger: r.logger, stream: "stderr"}
	cmd.Stdout = stdoutLog
	cmd.Stderr = io.MultiWriter(&stderr, stderrLog)

	err := cmd.Run()
	stdoutLog.Flush()
	stderrLog.Flush()

	if err == nil {
		return domain.SolveResult{ExitCode: 0}, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		solveErr := zerr.Wrap(ctxErr, domain.ErrSolverFailed.Error())
		return domain.SolveResult{}, zerr.With(solveErr, "command", r.command[0])
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return domain.SolveResult{
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(stderr.String()),
		}, nil
	}

	startErr := zerr.Wrap(err, domain.ErrSolverStartFailed.Error())
	return domain.SolveResult{}, zerr.With(startErr, "command", r.command[0])
}

// logWriter forwards complete lines of process output to the logger.
type logWriter struct {
	logger ports.Logger
	stream string

	mu  sync.Mutex
	buf []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush logs a trailing partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *logWriter) emit(line string) {
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return
	}
	w.logger.Debug(line, "stream", w.stream)
}
