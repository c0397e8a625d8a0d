package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read into Settings
const EnvPrefix = "KEYDOOR"

// Settings are the runtime options of a play session.
// They come from an optional keydoor.yaml, KEYDOOR_* environment variables
// and finally command-line flags.
type Settings struct {
	Color      string `mapstructure:"color"`
	StartLevel string `mapstructure:"start_level"`
	ConfigDir  string `mapstructure:"config_dir"` // empty: embedded configs
	Watch      bool   `mapstructure:"watch"`
	Record     string `mapstructure:"record"`
	Mute       bool   `mapstructure:"mute"`
}

// LoadSettings reads settings from path, or from keydoor.yaml in the working
// directory when path is empty. A missing default file is not an error.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("color", "")
	v.SetDefault("start_level", "")
	v.SetDefault("config_dir", "")
	v.SetDefault("watch", false)
	v.SetDefault("record", "")
	v.SetDefault("mute", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
	} else {
		v.SetConfigName("keydoor")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read settings: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return &s, nil
}
