package config

// Config is the root configuration structure for the application.
type Config struct {
	LogLevel      string         `yaml:"log_level" mapstructure:"log_level"`
	LogFile       string         `yaml:"log_file" mapstructure:"log_file"`
	LogMaxSizeMB  int            `yaml:"log_max_size_mb" mapstructure:"log_max_size_mb"`
	LogMaxBackups int            `yaml:"log_max_backups" mapstructure:"log_max_backups"`
	LogMaxAgeDays int            `yaml:"log_max_age_days" mapstructure:"log_max_age_days"`
	Database      DatabaseConfig `yaml:"database" mapstructure:"database"`
	Library       LibraryConfig  `yaml:"library" mapstructure:"library"`
}

// DatabaseConfig holds record store configuration.
type DatabaseConfig struct {
	RegistryPath string `yaml:"registry_path" mapstructure:"registry_path"`
}

// LibraryConfig holds media library settings.
type LibraryConfig struct {
	// IgnoredPaths are folders never reported as unmapped.
	IgnoredPaths []string `yaml:"ignored_paths,flow" mapstructure:"ignored_paths"`
}
