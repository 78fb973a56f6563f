package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the default path for the config file.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ConfigDir returns the config directory path. ROOTDIRS_CONFIG_DIR takes
// precedence over ~/.config/rootdirs.
func ConfigDir() string {
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "rootdirs")
}

// ConfigExists reports whether a config file is present at GetConfigPath.
func ConfigExists() bool {
	info, err := os.Stat(GetConfigPath())
	return err == nil && !info.IsDir()
}

// ExpandPath expands a leading ~ in path to the user's home directory.
// Only "~" alone or "~/..." is expanded; "~user" is returned unchanged.
func ExpandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) > 1 && path[1] != '/' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return home
	}

	return filepath.Join(home, path[2:])
}
