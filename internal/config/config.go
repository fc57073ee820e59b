package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gookit/validate"
	"github.com/spf13/viper"
)

// Config holds the runtime settings. Values come from, in increasing
// precedence: defaults, the YAML config file, RUNLOG_* environment
// variables and bound command-line flags.
type Config struct {
	DataDir    string `mapstructure:"dataDir" validate:"required"`
	Backend    string `mapstructure:"backend" validate:"required|in:file,sqlite"`
	Compress   bool   `mapstructure:"compress"`
	StorageKey string `mapstructure:"storageKey" validate:"required"`
	Timezone   string `mapstructure:"timezone"`
	LogLevel   string `mapstructure:"logLevel" validate:"required|in:trace,debug,info,warn,error,disabled"`

	// Path is the config file that was read, empty when none was found.
	Path string `mapstructure:"-"`
}

// DefaultDir returns the default data directory under homeDir.
func DefaultDir(homeDir string) string {
	return filepath.Join(homeDir, ".runlog")
}

var envBindings = map[string]string{
	"dataDir":    "RUNLOG_DATA_DIR",
	"backend":    "RUNLOG_BACKEND",
	"compress":   "RUNLOG_COMPRESS",
	"storageKey": "RUNLOG_STORAGE_KEY",
	"timezone":   "RUNLOG_TIMEZONE",
	"logLevel":   "RUNLOG_LOG_LEVEL",
}

// Load reads the configuration into a Config. An explicit path must exist;
// without one, "config.yaml" in the default data directory is read if
// present. Flags must already be bound on v.
func Load(v *viper.Viper, path, homeDir string) (*Config, error) {
	v.SetDefault("dataDir", DefaultDir(homeDir))
	v.SetDefault("backend", "file")
	v.SetDefault("compress", false)
	v.SetDefault("storageKey", "runData")
	v.SetDefault("timezone", "")
	v.SetDefault("logLevel", "warn")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(DefaultDir(homeDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	conf.Path = v.ConfigFileUsed()

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate checks field constraints and that the timezone is loadable.
func (c *Config) Validate() error {
	v := validate.Struct(c)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.One())
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the timezone calendar days are computed in.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
