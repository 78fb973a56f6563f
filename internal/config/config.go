package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "ROOTDIRS"

var (
	// configFilePath stores the path to the loaded config file
	configFilePath string

	mu     sync.RWMutex
	loaded *Config
)

// Init initializes the configuration subsystem.
// It searches for configuration files in priority order:
//  1. Directory specified by ROOTDIRS_CONFIG_DIR environment variable
//  2. ~/.config/rootdirs/
//  3. Current working directory (.)
//
// If no config file is found, defaults are used.
// If a config file exists but is invalid or unreadable, Init returns an error.
func Init() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	if envPath := os.Getenv(EnvPrefix + "_CONFIG_DIR"); envPath != "" {
		viper.AddConfigPath(envPath)
	}
	if home := os.Getenv("HOME"); home != "" {
		viper.AddConfigPath(filepath.Join(home, ".config", "rootdirs"))
	}
	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config; %w", err)
		}
		configFilePath = ""
	} else {
		configFilePath = viper.ConfigFileUsed()
		slog.Debug("config initialized", "file", configFilePath)
	}

	cfg, err := unmarshalConfig(viper.GetViper())
	if err != nil {
		return err
	}

	mu.Lock()
	loaded = cfg
	mu.Unlock()

	return nil
}

// Get returns the typed configuration loaded by Init. Before Init has run it
// returns the defaults.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()

	if loaded == nil {
		cfg := NewDefaultConfig()
		return &cfg
	}
	return loaded
}

// ConfigFilePath returns the path to the loaded config file,
// or empty string if using defaults only.
func ConfigFilePath() string {
	return configFilePath
}

// Reset clears the configuration state for testing purposes.
func Reset() {
	viper.Reset()
	configFilePath = ""

	mu.Lock()
	loaded = nil
	mu.Unlock()
}

// GetString returns the string value for the given key.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetPath returns the string value for the given key with ~ expanded to $HOME.
func GetPath(key string) string {
	return ExpandPath(viper.GetString(key))
}

// GetConfigPath returns the path of the loaded config file, or the default
// location if none was loaded.
func GetConfigPath() string {
	if configFilePath != "" {
		return configFilePath
	}
	return DefaultConfigPath()
}

// GetAllSettings returns all configuration settings as a map.
func GetAllSettings() map[string]any {
	return viper.AllSettings()
}

// unmarshalConfig converts viper config to a validated Config.
func unmarshalConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config; %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
