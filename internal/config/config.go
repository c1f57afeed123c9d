// Package config loads CLI configuration from flags, environment
// variables, and an optional config file, in that order of precedence.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the CLI defaults a user can persist outside of flags.
type Config struct {
	Engine    string `mapstructure:"engine"`     // default word engine name
	DictPath  string `mapstructure:"dict_path"`  // optional custom dictionary file
	Separator string `mapstructure:"separator"`  // token separator for plain output
	Normalize bool   `mapstructure:"normalize"`  // apply Unicode NFC before tokenizing
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Engine:    "newmm",
		Separator: "|",
	}
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// LoadOptions configures Load.
type LoadOptions struct {
	Cmd        flagBinder // command whose flags override config values
	ConfigFile string     // explicit config file path; empty means discover
}

// Load resolves the configuration: defaults, then an optional thaitok
// config file, then THAITOK_* environment variables, then bound flags.
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("engine", defaults.Engine)
	v.SetDefault("dict_path", defaults.DictPath)
	v.SetDefault("separator", defaults.Separator)
	v.SetDefault("normalize", defaults.Normalize)

	// flag names differ from config keys, so bind each key explicitly;
	// viper only prefers a bound flag once the user actually sets it
	if opts.Cmd != nil {
		flags := opts.Cmd.Flags()
		for key, name := range map[string]string{
			"engine":    "engine",
			"dict_path": "dict",
			"separator": "sep",
			"normalize": "nfc",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %q: %w", name, err)
				}
			}
		}
	}

	v.SetEnvPrefix("THAITOK")
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("thaitok")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/thaitok")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}
