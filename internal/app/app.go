// Package app implements the application layer for relock.
package app

import (
	"context"
	"log/slog"
	"strings"

	"go.trai.ch/relock/internal/adapters/fs"
	"go.trai.ch/relock/internal/adapters/ghoutput"
	"go.trai.ch/relock/internal/adapters/logger"
	"go.trai.ch/relock/internal/adapters/solver"
	"go.trai.ch/relock/internal/adapters/telemetry"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/engine/reconcile"
	"go.trai.ch/relock/internal/engine/transaction"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	tx        *transaction.Transaction
	runner    *solver.Runner
	outputs   *ghoutput.Writer
	manifests ports.ManifestReader
	store     ports.LockStore
	verifier  *fs.Verifier
	engine    *reconcile.Engine
	logger    ports.Logger
	tracing   bool
}

// New creates a new App instance.
func New(
	tx *transaction.Transaction,
	runner *solver.Runner,
	outputs *ghoutput.Writer,
	manifests ports.ManifestReader,
	store ports.LockStore,
	verifier *fs.Verifier,
	engine *reconcile.Engine,
	log ports.Logger,
) *App {
	return &App{
		tx:        tx,
		runner:    runner,
		outputs:   outputs,
		manifests: manifests,
		store:     store,
		verifier:  verifier,
		engine:    engine,
		logger:    log,
		tracing:   true,
	}
}

// WithoutTracing keeps the global tracer provider untouched.
// This is primarily used for testing with a span recorder installed.
func (a *App) WithoutTracing() *App {
	a.tracing = false
	return a
}

// levelSetter is implemented by loggers whose threshold can change at runtime.
type levelSetter interface {
	SetLevel(level slog.Level)
}

// SetLogLevel changes the logger threshold. Loggers without a threshold ignore it.
func (a *App) SetLogLevel(name string) error {
	level, err := logger.ParseLevel(name)
	if err != nil {
		return err
	}
	if l, ok := a.logger.(levelSetter); ok {
		l.SetLevel(level)
	}
	return nil
}

// Relock solves the environment and reconciles the lock file in place.
func (a *App) Relock(ctx context.Context, opts RelockOptions) (domain.Outcome, error) {
	cfg, err := BuildConfig(opts)
	if err != nil {
		return domain.Outcome{}, err
	}
	if err := a.requireManifest(cfg.ManifestPath); err != nil {
		return domain.Outcome{}, err
	}

	runner := a.runner
	if opts.Solver != "" {
		command, err := solver.ParseCommand(opts.Solver)
		if err != nil {
			return domain.Outcome{}, err
		}
		runner = runner.WithCommand(command)
	}
	outputs := a.outputs
	if opts.GitHubOutput != "" {
		outputs = outputs.WithPath(opts.GitHubOutput)
	}
	tx := a.tx.WithSolver(runner).WithOutputs(outputs)

	if a.tracing {
		shutdown := telemetry.Install(telemetry.NewBridge(a.logger))
		defer func() {
			_ = shutdown(ctx)
		}()
	}

	a.logger.Debug("relocking",
		"environment_file", cfg.ManifestPath,
		"lock_file", cfg.LockPath,
		"solver", strings.Join(runner.Command(), " "),
		"github_output", outputs.Path(),
	)
	return tx.Run(ctx, cfg)
}

// Diff compares two lock files without running the solver or touching either file.
func (a *App) Diff(_ context.Context, opts DiffOptions) (DiffResult, error) {
	if err := requirePath(opts.EnvironmentFile, domain.ErrMissingManifestPath); err != nil {
		return DiffResult{}, err
	}
	if err := requirePath(opts.OldLockFile, zerr.With(domain.ErrMissingLockPath, "flag", "old")); err != nil {
		return DiffResult{}, err
	}
	if err := requirePath(opts.NewLockFile, zerr.With(domain.ErrMissingLockPath, "flag", "new")); err != nil {
		return DiffResult{}, err
	}
	if err := a.requireManifest(opts.EnvironmentFile); err != nil {
		return DiffResult{}, err
	}

	manifest, err := a.manifests.Read(opts.EnvironmentFile)
	if err != nil {
		return DiffResult{}, err
	}
	oldDoc, err := a.store.Load(opts.OldLockFile)
	if err != nil {
		return DiffResult{}, err
	}
	newDoc, err := a.store.Load(opts.NewLockFile)
	if err != nil {
		return DiffResult{}, err
	}

	policy := BuildPolicy(
		opts.IgnoredPackages,
		opts.RelockAllPackages,
		opts.IncludeOnlyPackages,
		opts.MergeAsAdminPackages,
	)
	result := a.engine.Reconcile(manifest, oldDoc, newDoc, policy)

	return DiffResult{
		Changes:      result.Changes,
		Relocked:     result.Relocked,
		MergeAsAdmin: result.MergeAsAdmin,
		Report:       reconcile.Report(result.Changes, manifest.Platforms, policy.RelockAll, opts.EnvironmentFile),
	}, nil
}

func (a *App) requireManifest(path string) error {
	ok, err := a.verifier.FileExists(path)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(path)
	}
	return nil
}
