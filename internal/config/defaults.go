package config

import "github.com/spf13/viper"

// Default configuration values.
const (
	DefaultLogLevel      = "info"
	DefaultLogFile       = "~/.config/rootdirs/rootdirs.log"
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28

	DefaultRegistryPath = "~/.config/rootdirs/registry.db"
)

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() Config {
	return Config{
		LogLevel:      DefaultLogLevel,
		LogFile:       DefaultLogFile,
		LogMaxSizeMB:  DefaultLogMaxSizeMB,
		LogMaxBackups: DefaultLogMaxBackups,
		LogMaxAgeDays: DefaultLogMaxAgeDays,
		Database: DatabaseConfig{
			RegistryPath: DefaultRegistryPath,
		},
		Library: LibraryConfig{
			IgnoredPaths: []string{},
		},
	}
}

// setDefaults registers all default configuration values with a viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("log_max_size_mb", DefaultLogMaxSizeMB)
	v.SetDefault("log_max_backups", DefaultLogMaxBackups)
	v.SetDefault("log_max_age_days", DefaultLogMaxAgeDays)

	v.SetDefault("database.registry_path", DefaultRegistryPath)

	v.SetDefault("library.ignored_paths", []string{})
}
