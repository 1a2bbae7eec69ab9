package commands

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.trai.ch/relock/internal/adapters/ghoutput"
	"go.trai.ch/zerr"
)

const (
	envPrefix = "RELOCK"

	flagEnvironmentFile      = "environment-file"
	flagLockFile             = "lock-file"
	flagIgnoredPackages      = "ignored-packages"
	flagRelockAllPackages    = "relock-all-packages"
	flagIncludeOnlyPackages  = "include-only-packages"
	flagMergeAsAdminPackages = "merge-as-admin-packages"
	flagSolver               = "solver"
	flagGitHubOutput         = "github-output"
	flagLogLevel             = "log-level"
	flagOld                  = "old"
	flagNew                  = "new"
)

// bindFlags resolves flag values with RELOCK_* environment variables as fallback.
// A fresh viper instance is used per invocation so commands never share state.
func bindFlags(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, zerr.Wrap(err, "failed to bind flags")
	}
	if flags.Lookup(flagGitHubOutput) != nil {
		if err := v.BindEnv(flagGitHubOutput, envPrefix+"_GITHUB_OUTPUT", ghoutput.EnvVar); err != nil {
			return nil, zerr.Wrap(err, "failed to bind environment")
		}
	}
	return v, nil
}

func addPolicyFlags(flags *pflag.FlagSet) {
	flags.String(flagIgnoredPackages, "", "Packages whose updates are never considered")
	flags.String(flagRelockAllPackages, "false", "Consider every package of the new lock file (true or false)")
	flags.String(flagIncludeOnlyPackages, "", "Consider only these packages instead of the environment dependencies")
	flags.String(flagMergeAsAdminPackages, "", "Packages whose updates may be merged without review")
}

type policyValues struct {
	ignored      string
	relockAll    string
	includeOnly  string
	mergeAsAdmin string
}

func readPolicy(v *viper.Viper) policyValues {
	return policyValues{
		ignored:      v.GetString(flagIgnoredPackages),
		relockAll:    v.GetString(flagRelockAllPackages),
		includeOnly:  v.GetString(flagIncludeOnlyPackages),
		mergeAsAdmin: v.GetString(flagMergeAsAdminPackages),
	}
}
