package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leefowlercu/rootdirs/internal/rootdir"
)

// ValidationError represents a config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var b strings.Builder
	b.WriteString("config validation failed:\n")
	for _, err := range e {
		b.WriteString("  - ")
		b.WriteString(err.Error())
		b.WriteString("\n")
	}
	return b.String()
}

// IsValidationError reports whether err is a ValidationErrors.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for errors.
// Returns ValidationErrors if validation fails.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error; got %q", cfg.LogLevel),
		})
	}

	if cfg.LogFile == "" {
		errs = append(errs, ValidationError{
			Field:   "log_file",
			Message: "must not be empty",
		})
	}

	if cfg.LogMaxSizeMB < 1 {
		errs = append(errs, ValidationError{
			Field:   "log_max_size_mb",
			Message: fmt.Sprintf("must be at least 1, got %d", cfg.LogMaxSizeMB),
		})
	}

	if cfg.LogMaxBackups < 0 {
		errs = append(errs, ValidationError{
			Field:   "log_max_backups",
			Message: fmt.Sprintf("must not be negative, got %d", cfg.LogMaxBackups),
		})
	}

	if cfg.LogMaxAgeDays < 0 {
		errs = append(errs, ValidationError{
			Field:   "log_max_age_days",
			Message: fmt.Sprintf("must not be negative, got %d", cfg.LogMaxAgeDays),
		})
	}

	if strings.TrimSpace(cfg.Database.RegistryPath) == "" {
		errs = append(errs, ValidationError{
			Field:   "database.registry_path",
			Message: "must not be empty",
		})
	}

	for i, p := range cfg.Library.IgnoredPaths {
		if err := rootdir.ValidatePath(ExpandPath(p)); err != nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("library.ignored_paths[%d]", i),
				Message: err.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
