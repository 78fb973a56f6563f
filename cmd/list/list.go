// Package list implements the list command for showing registered root directories.
package list

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/rootdirs/internal/cmdutil"
	"github.com/leefowlercu/rootdirs/internal/output"
)

// Flag variables for the list command.
var (
	listOutput string
	listFormat output.Format
)

// ListCmd shows every registered root directory.
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered root directories",
	Long: "List registered root directories.\n\n" +
		"Shows the ID and path of every root directory in the registry, in the " +
		"order they were added. Use --output to select table, json or yaml output.",
	Example: `  # List root directories as a table
  rootdirs list

  # List root directories as JSON
  rootdirs list --output json`,
	Args:    cobra.NoArgs,
	PreRunE: validateList,
	RunE:    runList,
}

func init() {
	ListCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format (table, json, yaml)")
}

func validateList(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(listOutput)
	if err != nil {
		return err
	}
	listFormat = format

	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	reg, s, err := cmdutil.OpenRegistry(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	dirs, err := reg.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list root directories; %w", err)
	}

	out := cmd.OutOrStdout()
	if len(dirs) == 0 && listFormat == output.FormatTable {
		fmt.Fprintln(out, "No root directories registered.")
		fmt.Fprintln(out, "Use 'rootdirs add <path>' to register a root directory.")
		return nil
	}

	return output.RootDirs(out, listFormat, dirs)
}
