// Package version implements the version command.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/rootdirs/internal/output"
	"github.com/leefowlercu/rootdirs/internal/version"
)

// Flag variables for the version command.
var (
	versionOutput string
	versionFormat output.Format
)

// VersionCmd displays version and build information.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build information",
	Long: "Display version and build information.\n\n" +
		"Shows the version, git commit, build date, Go toolchain and platform of " +
		"the current rootdirs binary.",
	Example: `  # Display version information
  rootdirs version

  # Display version information as JSON
  rootdirs version --output json`,
	Args:    cobra.NoArgs,
	PreRunE: validateVersion,
	RunE:    runVersion,
}

func init() {
	VersionCmd.Flags().StringVarP(&versionOutput, "output", "o", "table", "Output format (table, json, yaml)")
}

func validateVersion(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(versionOutput)
	if err != nil {
		return err
	}
	versionFormat = format

	cmd.SilenceUsage = true
	return nil
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()
	if versionFormat == output.FormatTable {
		fmt.Fprintln(cmd.OutOrStdout(), info.String())
		return nil
	}
	return output.Value(cmd.OutOrStdout(), versionFormat, info)
}
