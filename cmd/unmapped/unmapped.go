// Package unmapped implements the unmapped command for finding folders that
// no root directory or tracked content folder accounts for.
package unmapped

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/rootdirs/internal/cmdutil"
	"github.com/leefowlercu/rootdirs/internal/output"
	"github.com/leefowlercu/rootdirs/internal/rootdir"
)

// Flag variables for the unmapped command.
var (
	unmappedOutput string
	unmappedFormat output.Format
)

// UnmappedCmd lists subfolders of a directory that are not yet known.
var UnmappedCmd = &cobra.Command{
	Use:   "unmapped <path>",
	Short: "List subfolders not covered by any root directory",
	Long: "List subfolders not covered by any root directory.\n\n" +
		"Looks at the immediate subfolders of the given directory and prints the " +
		"ones that are not a registered root directory, a tracked content folder, " +
		"or a configured ignored path. Matching ignores letter case and trailing " +
		"separators. A directory that does not exist has no unmapped folders.",
	Example: `  # Find new folders under a drive
  rootdirs unmapped /srv/media

  # Emit the result as JSON
  rootdirs unmapped /srv/media --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateUnmapped,
	RunE:    runUnmapped,
}

func init() {
	UnmappedCmd.Flags().StringVarP(&unmappedOutput, "output", "o", "table", "Output format (table, json, yaml)")
}

func validateUnmapped(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(unmappedOutput)
	if err != nil {
		return err
	}
	unmappedFormat = format

	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runUnmapped(cmd *cobra.Command, args []string) error {
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

	folders, err := reg.GetUnmappedFolders(ctx, path)
	if err != nil {
		if errors.Is(err, rootdir.ErrInvalidPath) {
			return err
		}
		return fmt.Errorf("failed to find unmapped folders; %w", err)
	}

	out := cmd.OutOrStdout()
	if len(folders) == 0 && unmappedFormat == output.FormatTable {
		fmt.Fprintf(out, "No unmapped folders in %s\n", path)
		return nil
	}

	return output.Paths(out, unmappedFormat, folders)
}
