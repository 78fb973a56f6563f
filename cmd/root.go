package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/rootdirs/cmd/add"
	configcmd "github.com/leefowlercu/rootdirs/cmd/config"
	"github.com/leefowlercu/rootdirs/cmd/config/subcommands"
	"github.com/leefowlercu/rootdirs/cmd/get"
	"github.com/leefowlercu/rootdirs/cmd/list"
	"github.com/leefowlercu/rootdirs/cmd/remove"
	"github.com/leefowlercu/rootdirs/cmd/track"
	"github.com/leefowlercu/rootdirs/cmd/unmapped"
	"github.com/leefowlercu/rootdirs/cmd/untrack"
	"github.com/leefowlercu/rootdirs/cmd/update"
	"github.com/leefowlercu/rootdirs/cmd/version"
	"github.com/leefowlercu/rootdirs/internal/config"
	"github.com/leefowlercu/rootdirs/internal/logging"
)

// logManager is created in bootstrap mode in init() and upgraded after config loads.
var logManager *logging.Manager

var rootdirsCmd = &cobra.Command{
	Use:   "rootdirs",
	Short: "Manage media library root directories",
	Long: "Rootdirs manages the top-level folders a media library scans for content.\n\n" +
		"Root directories are stored in a local registry. The unmapped command compares " +
		"the immediate subfolders of a directory against every registered root directory " +
		"and tracked content folder, and reports the ones nothing accounts for yet.",
	PersistentPreRunE: runInitialize,
}

func init() {
	logManager = logging.NewManager()
	slog.SetDefault(logManager.Logger())

	rootdirsCmd.AddCommand(list.ListCmd)
	rootdirsCmd.AddCommand(add.AddCmd)
	rootdirsCmd.AddCommand(get.GetCmd)
	rootdirsCmd.AddCommand(update.UpdateCmd)
	rootdirsCmd.AddCommand(remove.RemoveCmd)
	rootdirsCmd.AddCommand(unmapped.UnmappedCmd)
	rootdirsCmd.AddCommand(track.TrackCmd)
	rootdirsCmd.AddCommand(untrack.UntrackCmd)
	rootdirsCmd.AddCommand(configcmd.ConfigCmd)
	rootdirsCmd.AddCommand(version.VersionCmd)
}

func runInitialize(cmd *cobra.Command, args []string) error {
	logger := logManager.Logger()

	if err := config.Init(); err != nil {
		if !subcommands.ToleratesConfigErrors(cmd) {
			return err
		}
		logger.Warn("config failed to load, continuing with defaults", "error", err)
	}

	cfg := config.Get()
	level, ok := logging.ParseLevel(cfg.LogLevel)
	if !ok && cfg.LogLevel != "" {
		logger.Warn("invalid log level configured, using default", "configured", cfg.LogLevel, "default", "info")
	}

	opts := logging.FileOptions{
		Path:       config.ExpandPath(cfg.LogFile),
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	}
	if err := logManager.Upgrade(opts, level); err != nil {
		logger.Warn("failed to enable file logging, continuing with stderr only", "error", err)
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	rootdirsCmd.SilenceErrors = true
	rootdirsCmd.SilenceUsage = true

	defer func() { _ = logManager.Close() }()

	err := rootdirsCmd.Execute()
	if err != nil {
		cmd, _, _ := rootdirsCmd.Find(os.Args[1:])
		if cmd == nil {
			cmd = rootdirsCmd
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if !cmd.SilenceUsage {
			fmt.Fprintln(os.Stderr)
			cmd.SetOut(os.Stderr)
			_ = cmd.Usage()
		}

		return err
	}

	return nil
}
