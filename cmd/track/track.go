// Package track implements the track command for recording content folders
// that the unmapped command should treat as known.
package track

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/rootdirs/internal/cmdutil"
	"github.com/leefowlercu/rootdirs/internal/rootdir"
)

// TrackCmd records a content folder as known.
var TrackCmd = &cobra.Command{
	Use:   "track <path>",
	Short: "Mark a folder as known content",
	Long: "Mark a folder as known content.\n\n" +
		"Tracked folders are never reported by the unmapped command, even when " +
		"they are not a root directory themselves. Use this for folders that are " +
		"already part of the library through some other root. Tracking a folder " +
		"twice has no effect.",
	Example: `  # Stop reporting a folder as unmapped
  rootdirs track /srv/media/Downloads`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateTrack,
	RunE:    runTrack,
}

func validateTrack(cmd *cobra.Command, args []string) error {
	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runTrack(cmd *cobra.Command, args []string) error {
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

	if err := s.TrackPath(ctx, path); err != nil {
		if errors.Is(err, rootdir.ErrInvalidPath) {
			return err
		}
		return fmt.Errorf("failed to track path; %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Tracking: %s\n", path)
	return nil
}
