package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadFromPath reads configuration from a specific file path without touching
// the global state used by Init and Get.
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(ExpandPath(path))
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from %s; %w", path, err)
	}

	return unmarshalConfig(v)
}
