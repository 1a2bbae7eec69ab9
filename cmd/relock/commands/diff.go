package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/relock/internal/app"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare two lock files without running the solver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := bindFlags(cmd.Flags())
			if err != nil {
				return err
			}

			policy := readPolicy(v)
			res, err := c.app.Diff(cmd.Context(), app.DiffOptions{
				EnvironmentFile:      v.GetString(flagEnvironmentFile),
				OldLockFile:          v.GetString(flagOld),
				NewLockFile:          v.GetString(flagNew),
				IgnoredPackages:      policy.ignored,
				RelockAllPackages:    policy.relockAll,
				IncludeOnlyPackages:  policy.includeOnly,
				MergeAsAdminPackages: policy.mergeAsAdmin,
			})
			if err != nil {
				return err
			}
			return printDiff(cmd.OutOrStdout(), res)
		},
	}

	flags := cmd.Flags()
	flags.String(flagEnvironmentFile, "", "Path to the environment file")
	flags.String(flagOld, "", "Path to the previous lock file")
	flags.String(flagNew, "", "Path to the candidate lock file")
	addPolicyFlags(flags)
	return cmd
}

func printDiff(w io.Writer, res app.DiffResult) error {
	if _, err := io.WriteString(w, res.Report); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "env_relocked=%t\nmerge_as_admin=%t\n", res.Relocked, res.MergeAsAdmin)
	return err
}
