package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load fills the env-tagged struct pointed to by v from the process
// environment. Before the first parse in a process, a .env file in the
// working directory is loaded into the environment; a missing file is
// not an error.
//
// Every call re-parses the environment, so callers own any caching they
// need.
//
// Example:
//
//	type StoreConfig struct {
//		URL           string        `env:"REDIS_URL,required"`
//		RetryAttempts int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//	}
//
//	var cfg StoreConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics when loading fails. Useful for
// configurations the process cannot start without.
//
// Example:
//
//	var cfg StoreConfig
//	config.MustLoad(&cfg)
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads the named .env files into the process environment. Without
// arguments it loads the default .env from the working directory. Variables
// already present in the environment are never overridden, and earlier files
// take precedence over later ones. Unlike the implicit load performed by
// Load, a missing file is an error here because the caller named it.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}
