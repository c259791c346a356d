// Package config loads typed configuration from environment variables.
//
// Load parses struct fields tagged with `env` and `envDefault` through
// github.com/caarlos0/env/v11 after reading .env files with
// github.com/joho/godotenv. Nested structs such as httpserver.Config are
// parsed as part of the parent. Configs implementing Validator are checked
// right after parsing.
//
//	var cfg AppConfig
//	config.MustLoad(&cfg, config.WithEnvFiles(".env.local"))
//
// Errors wrap the package sentinels, so callers can use errors.Is with
// ErrParsingConfig, ErrLoadingEnvFile or ErrInvalidConfig.
package config
