// Package update implements the update command for changing a root directory's path.
package update

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/rootdirs/internal/cmdutil"
	"github.com/leefowlercu/rootdirs/internal/rootdir"
)

var updateID int64

// UpdateCmd replaces the path of an existing root directory.
var UpdateCmd = &cobra.Command{
	Use:   "update <id> <path>",
	Short: "Change the path of a root directory",
	Long: "Change the path of a root directory.\n\n" +
		"Replaces the stored path of the root directory with the given ID. The " +
		"new path is checked the same way as for add. Fails if no root directory " +
		"has that ID.",
	Example: `  # Point root directory 2 at a new location
  rootdirs update 2 /mnt/archive/tv`,
	Args:    cobra.ExactArgs(2),
	PreRunE: validateUpdate,
	RunE:    runUpdate,
}

func validateUpdate(cmd *cobra.Command, args []string) error {
	id, err := cmdutil.ParseID(args[0])
	if err != nil {
		return err
	}
	updateID = id

	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	path, err := cmdutil.ResolvePath(args[1])
	if err != nil {
		return fmt.Errorf("failed to resolve path; %w", err)
	}

	reg, s, err := cmdutil.OpenRegistry(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	err = reg.Update(ctx, rootdir.RootDir{ID: updateID, Path: path})
	if err != nil {
		if errors.Is(err, rootdir.ErrInvalidPath) || errors.Is(err, rootdir.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update root directory; %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated root directory %d: %s\n", updateID, path)
	return nil
}
