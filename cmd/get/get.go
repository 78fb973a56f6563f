// Package get implements the get command for looking up a root directory by ID.
package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/rootdirs/internal/cmdutil"
	"github.com/leefowlercu/rootdirs/internal/output"
	"github.com/leefowlercu/rootdirs/internal/rootdir"
)

// Flag variables for the get command.
var (
	getOutput string
	getFormat output.Format
	getID     int64
)

// GetCmd shows a single root directory.
var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a root directory by ID",
	Long: "Show a root directory by ID.\n\n" +
		"Prints the root directory registered under the given ID. Fails if no " +
		"root directory has that ID.",
	Example: `  # Show root directory 3
  rootdirs get 3

  # Show root directory 3 as YAML
  rootdirs get 3 --output yaml`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateGet,
	RunE:    runGet,
}

func init() {
	GetCmd.Flags().StringVarP(&getOutput, "output", "o", "table", "Output format (table, json, yaml)")
}

func validateGet(cmd *cobra.Command, args []string) error {
	id, err := cmdutil.ParseID(args[0])
	if err != nil {
		return err
	}
	getID = id

	format, err := output.ParseFormat(getOutput)
	if err != nil {
		return err
	}
	getFormat = format

	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	reg, s, err := cmdutil.OpenRegistry(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	dir, err := reg.GetRootDir(ctx, getID)
	if err != nil {
		if errors.Is(err, rootdir.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get root directory; %w", err)
	}

	return output.RootDir(cmd.OutOrStdout(), getFormat, dir)
}
