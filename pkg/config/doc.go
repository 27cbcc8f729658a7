// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which reads .env files into the process
// environment, and github.com/caarlos0/env/v11, which parses the environment
// into a struct using `env` and `envDefault` tags. Parsed configs are cached
// per type; ResetCache clears the cache, which tests use after t.Setenv.
//
// Sentinel errors ErrParsingConfig, ErrLoadingEnvFile and ErrNilPointer can be
// matched with errors.Is.
package config
