// Package transaction runs the solver inside a backup/restore transaction around
// the lock file and publishes the verdict exactly once.
package transaction

import (
	"context"
	"fmt"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/engine/reconcile"
	"go.trai.ch/zerr"
)

// Span names.
const (
	SpanRun       = "relock"
	SpanStash     = "relock.stash"
	SpanSolve     = "relock.solve"
	SpanReconcile = "relock.reconcile"
	SpanCommit    = "relock.commit"
)

// Progress and result messages.
const (
	MsgNoLockFile = "No existing lock file found. Creating a new one."
	MsgCreated    = "A lock file has been created in this PR since no existing one was found."
	MsgNoChanges  = "No packages have been updated."
)

// Transaction reconciles a lock file with a fresh solve.
type Transaction struct {
	manifests ports.ManifestReader
	store     ports.LockStore
	solver    ports.Solver
	backup    ports.Backup
	outputs   ports.Outputs
	reporter  ports.Reporter
	logger    ports.Logger
	tracer    ports.Tracer
	engine    *reconcile.Engine
}

// New creates a new Transaction.
func New(
	manifests ports.ManifestReader,
	store ports.LockStore,
	solver ports.Solver,
	backup ports.Backup,
	outputs ports.Outputs,
	reporter ports.Reporter,
	logger ports.Logger,
	tracer ports.Tracer,
	engine *reconcile.Engine,
) *Transaction {
	return &Transaction{
		manifests: manifests,
		store:     store,
		solver:    solver,
		backup:    backup,
		outputs:   outputs,
		reporter:  reporter,
		logger:    logger,
		tracer:    tracer,
		engine:    engine,
	}
}

// WithSolver returns a copy of the Transaction that uses solver.
func (t *Transaction) WithSolver(solver ports.Solver) *Transaction {
	c := *t
	c.solver = solver
	return &c
}

// WithOutputs returns a copy of the Transaction that publishes to outputs.
func (t *Transaction) WithOutputs(outputs ports.Outputs) *Transaction {
	c := *t
	c.outputs = outputs
	return &c
}

// Run executes one reconciliation.
//
// On success the lock file holds either the prior bytes (no relevant change) or
// the canonical serialization of the new solve, and the flags reflect the
// outcome. On failure the prior lock file is put back when there was one, both
// flags are published as false and the original error is returned.
func (t *Transaction) Run(ctx context.Context, cfg domain.Config) (domain.Outcome, error) {
	ctx, span := t.tracer.Start(ctx, SpanRun)
	defer span.End()
	span.SetAttribute("relock.manifest", cfg.ManifestPath)
	span.SetAttribute("relock.lock_file", cfg.LockPath)

	outcome, err := t.run(ctx, cfg)
	if err != nil {
		span.RecordError(err)
		if flagErr := t.outputs.SetFlags(false, false); flagErr != nil {
			t.logger.Error(flagErr)
		}
		return domain.Outcome{}, err
	}

	span.SetAttribute("relock.relocked", outcome.Relocked)
	span.SetAttribute("relock.merge_as_admin", outcome.MergeAsAdmin)
	if err := t.outputs.SetFlags(outcome.Relocked, outcome.MergeAsAdmin); err != nil {
		span.RecordError(err)
		return outcome, err
	}
	return outcome, nil
}

func (t *Transaction) run(ctx context.Context, cfg domain.Config) (outcome domain.Outcome, err error) {
	stash, err := t.stash(ctx, cfg.LockPath)
	if err != nil {
		return outcome, err
	}
	defer func() {
		if closeErr := stash.Close(); closeErr != nil {
			t.logger.Warn("failed to remove lock file backup", "error", closeErr)
		}
	}()
	defer func() {
		if err != nil {
			t.rollback(stash)
		}
	}()

	if !stash.Held() {
		t.reporter.Progress(MsgNoLockFile)
	}
	t.reporter.Progress(fmt.Sprintf("Relocking %s...", cfg.ManifestPath))

	if err := t.solve(ctx, cfg); err != nil {
		return outcome, err
	}

	if !stash.Held() {
		return t.accept(cfg)
	}
	return t.reconcile(ctx, cfg, stash)
}

func (t *Transaction) stash(ctx context.Context, lockPath string) (ports.Stash, error) {
	_, span := t.tracer.Start(ctx, SpanStash)
	defer span.End()

	stash, err := t.backup.Stash(lockPath)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("relock.existing_lock", stash.Held())
	if stash.Held() {
		t.logger.Debug("lock file moved aside", "path", lockPath, "backup", stash.Path())
	}
	return stash, nil
}

func (t *Transaction) solve(ctx context.Context, cfg domain.Config) error {
	ctx, span := t.tracer.Start(ctx, SpanSolve)
	defer span.End()

	res, err := t.solver.Solve(ctx, cfg.ManifestPath, cfg.LockPath)
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttribute("relock.exit_code", res.ExitCode)

	if !res.OK() {
		solveErr := zerr.With(domain.ErrSolverFailed, "exit_code", res.ExitCode)
		solveErr = zerr.With(solveErr, "stderr", res.Stderr)
		span.RecordError(solveErr)
		return solveErr
	}
	return nil
}

// accept keeps the solver output of a first solve as written.
func (t *Transaction) accept(cfg domain.Config) (domain.Outcome, error) {
	doc, err := t.store.Load(cfg.LockPath)
	if err != nil {
		return domain.Outcome{}, err
	}
	t.logger.Debug("lock file created", "path", cfg.LockPath, "packages", len(doc.Packages))
	t.reporter.Result(MsgCreated)
	return domain.Outcome{Relocked: true, Created: true}, nil
}

func (t *Transaction) reconcile(ctx context.Context, cfg domain.Config, stash ports.Stash) (domain.Outcome, error) {
	ctx, span := t.tracer.Start(ctx, SpanReconcile)
	defer span.End()

	manifest, err := t.manifests.Read(cfg.ManifestPath)
	if err != nil {
		span.RecordError(err)
		return domain.Outcome{}, err
	}

	oldDoc, err := t.store.Load(stash.Path())
	if err != nil {
		span.RecordError(err)
		return domain.Outcome{}, err
	}

	newDoc, err := t.store.Load(cfg.LockPath)
	if err != nil {
		span.RecordError(err)
		return domain.Outcome{}, err
	}

	result := t.engine.Reconcile(manifest, oldDoc, newDoc, cfg.Policy)
	span.SetAttribute("relock.changes", len(result.Changes))

	if !result.Relocked {
		t.reporter.Progress(MsgNoChanges)
		if err := t.commit(ctx, stash.Restore); err != nil {
			return domain.Outcome{}, err
		}
		return domain.Outcome{}, nil
	}

	save := func() error { return t.store.Save(cfg.LockPath, newDoc, stash.Mode()) }
	if err := t.commit(ctx, save); err != nil {
		return domain.Outcome{}, err
	}

	report := reconcile.Report(result.Changes, manifest.Platforms, cfg.Policy.RelockAll, cfg.ManifestPath)
	t.reporter.Result(report)

	return domain.Outcome{
		Relocked:     true,
		MergeAsAdmin: result.MergeAsAdmin,
		Changes:      result.Changes,
		Report:       report,
	}, nil
}

func (t *Transaction) commit(ctx context.Context, apply func() error) error {
	_, span := t.tracer.Start(ctx, SpanCommit)
	defer span.End()

	if err := apply(); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// rollback puts the prior lock file back. A failed restore is logged and never
// replaces the error that triggered the rollback.
func (t *Transaction) rollback(stash ports.Stash) {
	if !stash.Held() {
		return
	}
	if err := stash.Restore(); err != nil {
		t.logger.Error(err)
		return
	}
	t.logger.Debug("lock file restored after failure")
}
