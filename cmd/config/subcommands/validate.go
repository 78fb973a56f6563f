package subcommands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/rootdirs/internal/config"
)

// ValidateCmd validates the configuration file.
var ValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: "Validate the configuration file.\n\n" +
		"Checks the configuration file for syntax errors and validates that all " +
		"settings have valid values, including every library.ignored_paths entry. " +
		"Returns exit code 0 if valid, 1 if invalid.",
	Example: `  # Validate the configuration
  rootdirs config validate`,
	Annotations: map[string]string{annotationToleratesConfigErrors: "true"},
	Args:        cobra.NoArgs,
	PreRunE:     validateValidate,
	RunE:        runValidate,
}

// annotationToleratesConfigErrors marks commands that must still run when
// the config file fails to load.
const annotationToleratesConfigErrors = "tolerates-config-errors"

// ToleratesConfigErrors reports whether cmd runs even if config loading fails.
func ToleratesConfigErrors(cmd *cobra.Command) bool {
	return cmd.Annotations[annotationToleratesConfigErrors] == "true"
}

// errInvalidConfig is returned after the validation problems have been printed.
var errInvalidConfig = errors.New("configuration is invalid")

func validateValidate(cmd *cobra.Command, args []string) error {
	// All errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configPath := config.GetConfigPath()

	if !config.ConfigExists() {
		fmt.Fprintf(out, "No configuration file found at %s\n", configPath)
		fmt.Fprintln(out, "Using default configuration values.")
		return nil
	}

	if _, err := config.LoadFromPath(configPath); err != nil {
		fmt.Fprintln(out, "Configuration validation failed:")

		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			for _, verr := range verrs {
				fmt.Fprintf(out, "  - %s\n", verr.Error())
			}
		} else {
			fmt.Fprintf(out, "  %v\n", err)
		}
		return errInvalidConfig
	}

	fmt.Fprintf(out, "Configuration is valid: %s\n", configPath)
	return nil
}
