// Package commands implements the CLI commands for relock.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/relock/internal/app"
	"go.trai.ch/relock/internal/build"
	"go.trai.ch/relock/internal/core/domain"
)

// CLI represents the command line interface for relock.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Relock(ctx context.Context, opts app.RelockOptions) (domain.Outcome, error)
	Diff(ctx context.Context, opts app.DiffOptions) (app.DiffResult, error)
	SetLogLevel(name string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "relock",
		Short: "Re-solve a conda environment and keep the lock file only when it matters",
		Long: "relock runs the solver for an environment file, compares the new lock file with\n" +
			"the previous one and keeps it only when a relevant package changed.\n" +
			"Every flag can also be set through a RELOCK_<FLAG_NAME> environment variable.",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRunE: c.applyLogLevel,
		RunE:              c.runRelock,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String(flagLogLevel, "info", "Log level (debug, info, warn, error)")

	flags := rootCmd.Flags()
	flags.String(flagEnvironmentFile, "", "Path to the environment file")
	flags.String(flagLockFile, "", "Path to the lock file to relock")
	flags.String(flagSolver, domain.DefaultSolverCommand, "Solver command prefix, run with --file and --lockfile appended")
	flags.String(flagGitHubOutput, "", "File to append the output flags to (defaults to $GITHUB_OUTPUT)")
	addPolicyFlags(flags)

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newDiffCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) applyLogLevel(cmd *cobra.Command, _ []string) error {
	v, err := bindFlags(cmd.Flags())
	if err != nil {
		return err
	}
	return c.app.SetLogLevel(v.GetString(flagLogLevel))
}

func (c *CLI) runRelock(cmd *cobra.Command, _ []string) error {
	v, err := bindFlags(cmd.Flags())
	if err != nil {
		return err
	}

	policy := readPolicy(v)
	_, err = c.app.Relock(cmd.Context(), app.RelockOptions{
		EnvironmentFile:      v.GetString(flagEnvironmentFile),
		LockFile:             v.GetString(flagLockFile),
		IgnoredPackages:      policy.ignored,
		RelockAllPackages:    policy.relockAll,
		IncludeOnlyPackages:  policy.includeOnly,
		MergeAsAdminPackages: policy.mergeAsAdmin,
		Solver:               v.GetString(flagSolver),
		GitHubOutput:         v.GetString(flagGitHubOutput),
	})
	return err
}
