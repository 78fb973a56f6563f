// Package add implements the add command for registering root directories.
package add

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/rootdirs/internal/cmdutil"
	"github.com/leefowlercu/rootdirs/internal/rootdir"
)

// AddCmd registers a new root directory.
var AddCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Register a root directory",
	Long: "Register a root directory.\n\n" +
		"Adds a folder to the registry and prints the ID it was assigned. The path " +
		"is checked for shape only; it does not have to exist yet. Relative paths " +
		"and ~ are resolved against the current directory and home directory. " +
		"Drive-letter and UNC paths are stored as given.",
	Example: `  # Register a root directory
  rootdirs add /srv/media/movies

  # Register a network share
  rootdirs add '\\nas\media'`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateAdd,
	RunE:    runAdd,
}

func validateAdd(cmd *cobra.Command, args []string) error {
	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	path, err := cmdutil.ResolvePath(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path; %w", err)
	}

	reg, s, err := cmdutil.OpenRegistry(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	dir, err := reg.Add(ctx, rootdir.RootDir{Path: path})
	if err != nil {
		if errors.Is(err, rootdir.ErrInvalidPath) {
			return err
		}
		return fmt.Errorf("failed to add root directory; %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added root directory %d: %s\n", dir.ID, dir.Path)
	return nil
}
