package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Flyrell/runlog/internal/calendar"
	"github.com/Flyrell/runlog/internal/config"
	"github.com/Flyrell/runlog/internal/kv"
	"github.com/Flyrell/runlog/internal/logging"
	"github.com/Flyrell/runlog/internal/store"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagKeys maps persistent flags to the config keys they override.
var flagKeys = map[string]string{
	"data-dir":  "dataDir",
	"backend":   "backend",
	"log-level": "logLevel",
}

// appEnv holds what a command needs from its surroundings.
type appEnv struct {
	conf  *config.Config
	kv    kv.Store
	store *store.Store
	loc   *time.Location
	log   zerolog.Logger
}

// openEnv loads the configuration for cmd and opens the configured storage.
// Callers must Close the returned env.
func openEnv(cmd *cobra.Command) (*appEnv, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}

	v := viper.New()
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, err
		}
	}

	configPath, _ := cmd.Flags().GetString("config")
	conf, err := config.Load(v, configPath, homeDir)
	if err != nil {
		return nil, err
	}
	return newEnv(conf, cmd.ErrOrStderr())
}

func newEnv(conf *config.Config, logOut io.Writer) (*appEnv, error) {
	logger, err := logging.New(logOut, conf.LogLevel)
	if err != nil {
		return nil, err
	}

	loc, err := conf.Location()
	if err != nil {
		return nil, err
	}

	backend, err := kv.Open(kv.Options{
		Backend:  conf.Backend,
		Dir:      conf.DataDir,
		Compress: conf.Compress,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s storage in %q: %w", conf.Backend, conf.DataDir, err)
	}

	logger.Debug().
		Str("backend", conf.Backend).
		Str("dir", conf.DataDir).
		Str("config", conf.Path).
		Msg("storage opened")

	return &appEnv{
		conf:  conf,
		kv:    backend,
		store: store.New(backend, conf.StorageKey, logger),
		loc:   loc,
		log:   logger,
	}, nil
}

// today is the current calendar day in the configured timezone.
func (e *appEnv) today() calendar.Day {
	return calendar.Today(time.Now(), e.loc)
}

func (e *appEnv) Close() error {
	return e.kv.Close()
}
