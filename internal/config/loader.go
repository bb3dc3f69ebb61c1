package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. RUBRICLIST_DATABASE_DSN.
const EnvPrefix = "RUBRICLIST"

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.query", "")
	v.SetDefault("database.timeout_seconds", 30)

	v.SetDefault("site.root", "")
	v.SetDefault("site.lang", "en")
	v.SetDefault("site.timezone", "UTC")
	v.SetDefault("site.relative_dates", false)

	v.SetDefault("output.format", "table")
	v.SetDefault("output.path", "")
	v.SetDefault("output.border", "rounded")
	v.SetDefault("output.max_widths", []int{})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// LoadEnvFiles loads .env style files into the process environment. Missing
// files are skipped; variables already set win.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}
	return nil
}

// flagKeys maps command line flags to the config keys they override.
var flagKeys = map[string]string{
	"format": "output.format",
	"lang":   "site.lang",
	"output": "output.path",
}

// LoadConfig reads configFile (optional when empty), applies RUBRICLIST_*
// environment overrides and any changed flags in flags, then validates the
// result. flags may be nil.
func LoadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateStatic(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
