// Package config provides a type-safe, generic way to load configuration
// from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads values from one or multiple `.env` files (with an automatic
//     fallback to the default `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Exposes helpers that panic on failure (`MustLoad`, `MustLoadEnv`) for
//     configuration the process cannot start without.
//
// # Usage
//
// Create a struct describing your configuration and annotate its fields
// with `env` tags:
//
//	type StoreConfig struct {
//	    URL           string        `env:"REDIS_URL,required"`
//	    RetryAttempts int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//	    RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//	}
//
// Then populate it:
//
//	var cfg StoreConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Load re-parses the environment on every call; there is no hidden cache, so
// environment changes between calls are observed. Process environment always
// wins over values from .env files.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into the struct.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
//   - `ErrLoadingEnvFile` – an explicitly named .env file could not be read.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
