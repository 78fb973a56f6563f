// Package remove implements the remove command for unregistering root directories.
package remove

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/rootdirs/internal/cmdutil"
)

var removeID int64

// RemoveCmd deletes a root directory from the registry.
var RemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Unregister a root directory",
	Long: "Unregister a root directory.\n\n" +
		"Deletes the root directory with the given ID from the registry. The " +
		"folder on disk is not touched. Removing an ID that is not registered " +
		"succeeds without changing anything.",
	Example: `  # Unregister root directory 3
  rootdirs remove 3`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateRemove,
	RunE:    runRemove,
}

func validateRemove(cmd *cobra.Command, args []string) error {
	id, err := cmdutil.ParseID(args[0])
	if err != nil {
		return err
	}
	removeID = id

	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	reg, s, err := cmdutil.OpenRegistry(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := reg.Remove(ctx, removeID); err != nil {
		return fmt.Errorf("failed to remove root directory; %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed root directory %d\n", removeID)
	return nil
}
