// Package untrack implements the untrack command.
package untrack

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/rootdirs/internal/cmdutil"
)

// UntrackCmd forgets a tracked content folder.
var UntrackCmd = &cobra.Command{
	Use:   "untrack <path>",
	Short: "Stop treating a folder as known content",
	Long: "Stop treating a folder as known content.\n\n" +
		"Removes a folder previously recorded with track. Matching ignores " +
		"letter case. Untracking a folder that is not tracked succeeds and " +
		"reports that nothing changed.",
	Example: `  # Report a folder as unmapped again
  rootdirs untrack /srv/media/Downloads`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateUntrack,
	RunE:    runUntrack,
}

func validateUntrack(cmd *cobra.Command, args []string) error {
	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runUntrack(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	path, err := cmdutil.ResolvePath(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path; %w", err)
	}

	s, err := cmdutil.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	removed, err := s.UntrackPath(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to untrack path; %w", err)
	}

	if !removed {
		fmt.Fprintf(cmd.OutOrStdout(), "Not tracked: %s\n", path)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Untracked: %s\n", path)
	return nil
}
