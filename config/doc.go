// Package config loads socialnet run settings from the environment.
//
// Values come from process environment variables, optionally seeded from
// .env files via github.com/joho/godotenv, and are parsed into Config with
// github.com/caarlos0/env/v11 struct tags. Existing environment variables
// take precedence over .env file entries.
//
// All variables share the SOCIALNET_ prefix; see Config for names and
// defaults. Load parses; Validate checks ranges and enumerations.
package config
