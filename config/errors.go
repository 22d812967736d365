package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrLoadingEnv is returned when an explicitly requested .env file cannot be read.
	ErrLoadingEnv = errors.New("config: failed to load env file")

	// ErrInvalidConfig is returned by Validate for out-of-range or unknown values.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
