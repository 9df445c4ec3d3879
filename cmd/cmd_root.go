package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/LinusU/emoji-commit-type/internal/buildinfo"
	"github.com/LinusU/emoji-commit-type/pkg/versioninfo"
)

// AppName - the name of the application.
const AppName = "emoji-commit-types"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   AppName,
		Short: "List the emoji commit types",
		Long:  `Lists every emoji commit type with its emoji and description, in declared order.`,
		Version: versioninfo.Info{
			Version: buildinfo.Version,
			Commit:  buildinfo.GitCommit,
			BuiltBy: buildinfo.BuiltBy,
		}.String(),
		Args:          cobra.NoArgs,
		RunE:          runRootE,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
}

// Execute runs the root command.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		if isUsageError(err) {
			cmd.Usage() //nolint:errcheck
		}
		cobra.CheckErr(err)
	}
}

// isUsageError reports whether err came from bad arguments or flags rather
// than from running the command.
func isUsageError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag") ||
		strings.Contains(msg, "arg(s)")
}

func runRootE(cmd *cobra.Command, args []string) error {
	return printCommitTypes(cmd.OutOrStdout(), !isNotTerminal)
}
