package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/adapters/console"
	"go.trai.ch/relock/internal/adapters/fs"
	"go.trai.ch/relock/internal/adapters/ghoutput"
	"go.trai.ch/relock/internal/adapters/lockfile"
	"go.trai.ch/relock/internal/adapters/logger"
	"go.trai.ch/relock/internal/adapters/manifest"
	"go.trai.ch/relock/internal/adapters/solver"
	"go.trai.ch/relock/internal/adapters/telemetry"
	"go.trai.ch/relock/internal/app"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/engine/reconcile"
	"go.trai.ch/relock/internal/engine/transaction"
)

const manifestYAML = `platforms:
  - linux-64
  - osx-arm64
dependencies:
  - numpy
  - pip:
      - requests
`

const oldLock = `version: 1
package:
  - name: numpy
    version: "1.0"
    platform: linux-64
  - name: numpy
    version: "1.0"
    platform: osx-arm64
`

const newLock = `version: 1
package:
  - name: numpy
    version: "1.1"
    platform: linux-64
  - name: numpy
    version: "1.0"
    platform: osx-arm64
  - name: openssl
    version: 3.2.0
    platform: linux-64
`

type fixture struct {
	app    *app.App
	dir    string
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	logs   *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		dir:    t.TempDir(),
		stdout: new(bytes.Buffer),
		stderr: new(bytes.Buffer),
		logs:   new(bytes.Buffer),
	}

	log := logger.NewWithWriter(f.logs)
	codec := lockfile.NewCodec()
	store := lockfile.NewStore(codec)
	reader := manifest.NewReader()
	engine := reconcile.NewEngine(log)
	runner := solver.NewRunner([]string{"false"}, log)
	outputs := ghoutput.NewWriter("", log)

	tx := transaction.New(
		reader,
		store,
		runner,
		fs.NewBackup(fs.NewHasher(), t.TempDir()),
		outputs,
		console.NewWithWriters(f.stdout, f.stderr),
		log,
		telemetry.NewNoOpTracer(),
		engine,
	)
	f.app = app.New(tx, runner, outputs, reader, store, fs.NewVerifier(), engine, log).WithoutTracing()
	return f
}

func (f *fixture) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// copySolver returns a solver command line that copies src to the lock file.
func (f *fixture) copySolver(t *testing.T, src string) string {
	t.Helper()
	script := f.write(t, "solver.sh", "cp \""+src+"\" \"$4\"\n")
	return "sh " + script
}

func TestBuildPolicy(t *testing.T) {
	policy := app.BuildPolicy("numpy, scipy\npandas", " TRUE ", "", "numpy\n\n")

	assert.Equal(t, []string{"numpy", "pandas", "scipy"}, policy.Ignored.Sorted())
	assert.True(t, policy.RelockAll)
	assert.Empty(t, policy.Included)
	assert.Equal(t, []string{"numpy"}, policy.AdminMergeAllow.Sorted())

	assert.False(t, app.BuildPolicy("", "yes", "", "").RelockAll)
}

func TestBuildConfig(t *testing.T) {
	_, err := app.BuildConfig(app.RelockOptions{LockFile: "conda-lock.yml"})
	require.ErrorIs(t, err, domain.ErrMissingManifestPath)

	_, err = app.BuildConfig(app.RelockOptions{EnvironmentFile: "environment.yml"})
	require.ErrorIs(t, err, domain.ErrMissingLockPath)

	cfg, err := app.BuildConfig(app.RelockOptions{
		EnvironmentFile:     "environment.yml",
		LockFile:            "conda-lock.yml",
		IncludeOnlyPackages: "numpy",
	})
	require.NoError(t, err)
	assert.Equal(t, "environment.yml", cfg.ManifestPath)
	assert.Equal(t, "conda-lock.yml", cfg.LockPath)
	assert.True(t, cfg.Policy.Included.Has("numpy"))
}

func TestApp_Relock_MissingManifest(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Relock(context.Background(), app.RelockOptions{
		EnvironmentFile: filepath.Join(f.dir, "environment.yml"),
		LockFile:        filepath.Join(f.dir, "conda-lock.yml"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrManifestNotFound.Error())
}

func TestApp_Relock_EmptySolver(t *testing.T) {
	f := newFixture(t)
	env := f.write(t, "environment.yml", manifestYAML)

	_, err := f.app.Relock(context.Background(), app.RelockOptions{
		EnvironmentFile: env,
		LockFile:        filepath.Join(f.dir, "conda-lock.yml"),
		Solver:          "   ",
	})
	require.ErrorIs(t, err, domain.ErrEmptySolverCommand)
}

func TestApp_Relock_UpdatesLockFile(t *testing.T) {
	f := newFixture(t)
	env := f.write(t, "environment.yml", manifestYAML)
	lock := f.write(t, "conda-lock.yml", oldLock)
	solved := f.write(t, "solved.yml", newLock)
	output := filepath.Join(f.dir, "github_output")

	outcome, err := f.app.Relock(context.Background(), app.RelockOptions{
		EnvironmentFile:      env,
		LockFile:             lock,
		MergeAsAdminPackages: "numpy",
		Solver:               f.copySolver(t, solved),
		GitHubOutput:         output,
	})
	require.NoError(t, err)
	assert.True(t, outcome.Relocked)
	assert.True(t, outcome.MergeAsAdmin, "only allowlisted manifest packages changed")

	flags, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "env_relocked=true\nmerge_as_admin=true\n", string(flags))

	report := "The following packages have been updated:\n\n  * platform: linux-64\n      - numpy: 1.0 -> 1.1\n\n"
	assert.Equal(t, report, f.stdout.String())
	assert.Contains(t, f.stderr.String(), "Relocking "+env+"...")

	got, err := os.ReadFile(lock)
	require.NoError(t, err)
	assert.Contains(t, string(got), "name: openssl")
}

func TestApp_Relock_LogsResolvedAdapters(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.app.SetLogLevel("debug"))

	env := f.write(t, "environment.yml", manifestYAML)
	lock := f.write(t, "conda-lock.yml", oldLock)
	solved := f.write(t, "solved.yml", oldLock)
	command := f.copySolver(t, solved)
	output := filepath.Join(f.dir, "github_output")

	_, err := f.app.Relock(context.Background(), app.RelockOptions{
		EnvironmentFile: env,
		LockFile:        lock,
		Solver:          command,
		GitHubOutput:    output,
	})
	require.NoError(t, err)

	logs := f.logs.String()
	assert.Contains(t, logs, `solver="`+command+`"`)
	assert.Contains(t, logs, "github_output="+output)
}

func TestApp_Relock_RelockAll(t *testing.T) {
	f := newFixture(t)
	env := f.write(t, "environment.yml", manifestYAML)
	lock := f.write(t, "conda-lock.yml", oldLock)
	solved := f.write(t, "solved.yml", newLock)
	output := filepath.Join(f.dir, "github_output")

	outcome, err := f.app.Relock(context.Background(), app.RelockOptions{
		EnvironmentFile:      env,
		LockFile:             lock,
		RelockAllPackages:    "true",
		MergeAsAdminPackages: "numpy",
		Solver:               f.copySolver(t, solved),
		GitHubOutput:         output,
	})
	require.NoError(t, err)
	assert.True(t, outcome.Relocked)
	assert.False(t, outcome.MergeAsAdmin)
	require.Len(t, outcome.Changes, 2)
	assert.Contains(t, outcome.Report, "      - openssl: null -> 3.2.0\n")
	assert.Contains(t, outcome.Report, "Note: All package updates")

	flags, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "env_relocked=true\nmerge_as_admin=false\n", string(flags))
}

func TestApp_Relock_SolverFailure(t *testing.T) {
	f := newFixture(t)
	env := f.write(t, "environment.yml", manifestYAML)
	lock := f.write(t, "conda-lock.yml", oldLock)
	output := filepath.Join(f.dir, "github_output")
	script := f.write(t, "failing.sh", "echo garbage > \"$4\"\necho 'conflict' >&2\nexit 1\n")

	_, err := f.app.Relock(context.Background(), app.RelockOptions{
		EnvironmentFile: env,
		LockFile:        lock,
		Solver:          "sh " + script,
		GitHubOutput:    output,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrSolverFailed.Error())

	got, err := os.ReadFile(lock)
	require.NoError(t, err)
	assert.Equal(t, oldLock, string(got))

	flags, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "env_relocked=false\nmerge_as_admin=false\n", string(flags))
}

func TestApp_Diff(t *testing.T) {
	f := newFixture(t)
	env := f.write(t, "environment.yml", manifestYAML)
	oldPath := f.write(t, "old.yml", oldLock)
	newPath := f.write(t, "new.yml", newLock)

	res, err := f.app.Diff(context.Background(), app.DiffOptions{
		EnvironmentFile: env,
		OldLockFile:     oldPath,
		NewLockFile:     newPath,
		IgnoredPackages: "numpy",
	})
	require.NoError(t, err)
	assert.False(t, res.Relocked)
	assert.Empty(t, res.Report)

	res, err = f.app.Diff(context.Background(), app.DiffOptions{
		EnvironmentFile:     env,
		OldLockFile:         oldPath,
		NewLockFile:         newPath,
		IncludeOnlyPackages: "openssl",
	})
	require.NoError(t, err)
	assert.True(t, res.Relocked)
	assert.Equal(t,
		"The following packages have been updated:\n\n  * platform: linux-64\n      - openssl: null -> 3.2.0\n\n",
		res.Report)

	after, err := os.ReadFile(oldPath)
	require.NoError(t, err)
	assert.Equal(t, oldLock, string(after), "diff never modifies its inputs")
}

func TestApp_Diff_MissingPaths(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Diff(context.Background(), app.DiffOptions{OldLockFile: "a", NewLockFile: "b"})
	require.ErrorIs(t, err, domain.ErrMissingManifestPath)

	_, err = f.app.Diff(context.Background(), app.DiffOptions{EnvironmentFile: "e", NewLockFile: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMissingLockPath.Error())
}

func TestApp_SetLogLevel(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.app.SetLogLevel("debug"))
	require.Error(t, f.app.SetLogLevel("loud"))
}
