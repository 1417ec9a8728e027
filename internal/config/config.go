package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. ROADASSETS_LOGGING_LEVEL.
const EnvPrefix = "ROADASSETS"

type Config struct {
	Logging  LoggingConfig `mapstructure:"logging"`
	Output   OutputConfig  `mapstructure:"output"`
	Progress bool          `mapstructure:"progress"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "logging.level",
	"log-format": "logging.format",
	"output-dir": "output.dir",
	"progress":   "progress",
}

// LoadConfig resolves runtime settings from, in increasing precedence:
// defaults, the config file, ROADASSETS_* environment variables and any
// flags set on the command line. An empty configPath looks for
// configs/roadassets.yaml and carries on without it if absent.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("output.dir", ".")
	v.SetDefault("progress", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("roadassets")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}
