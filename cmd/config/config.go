// Package config provides the config parent command and subcommands.
package config

import (
	"github.com/spf13/cobra"

	"github.com/leefowlercu/rootdirs/cmd/config/subcommands"
)

// ConfigCmd is the parent command for all config-related subcommands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect rootdirs configuration",
	Long: "Inspect rootdirs configuration.\n\n" +
		"Configuration is read from config.yaml in $ROOTDIRS_CONFIG_DIR, " +
		"~/.config/rootdirs or the current directory, in that order. Any key can " +
		"be overridden with a ROOTDIRS_ environment variable, for example " +
		"ROOTDIRS_DATABASE_REGISTRY_PATH.",
}

func init() {
	ConfigCmd.AddCommand(subcommands.ShowCmd)
	ConfigCmd.AddCommand(subcommands.ValidateCmd)
}
