package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/socialnet/generator"
	"github.com/katalvlaran/socialnet/logger"
)

// DefaultEnvFile is loaded by Load when no files are given, if it exists.
const DefaultEnvFile = ".env"

// Config holds every tunable of a generation run.
type Config struct {
	PoolSize  int `env:"SOCIALNET_POOL_SIZE" envDefault:"100" yaml:"pool_size"`
	EdgeCount int `env:"SOCIALNET_EDGE_COUNT" envDefault:"300" yaml:"edge_count"`

	// FirstNames / LastNames replace the corresponding vocabulary list when set.
	FirstNames []string `env:"SOCIALNET_FIRST_NAMES" envSeparator:"," yaml:"first_names,omitempty"`
	LastNames  []string `env:"SOCIALNET_LAST_NAMES" envSeparator:"," yaml:"last_names,omitempty"`

	// Vocabulary is "builtin", "randomdata" or a YAML file path.
	Vocabulary     string `env:"SOCIALNET_VOCABULARY" envDefault:"builtin" yaml:"vocabulary"`
	VocabularySize int    `env:"SOCIALNET_VOCABULARY_SIZE" envDefault:"20" yaml:"vocabulary_size"`

	Output string `env:"SOCIALNET_OUTPUT" envDefault:"social_network_edges.tsv" yaml:"output"`

	// Seed 0 means seed from the clock.
	Seed     int64  `env:"SOCIALNET_SEED" envDefault:"0" yaml:"seed"`
	Strategy string `env:"SOCIALNET_STRATEGY" envDefault:"rejection" yaml:"strategy"`
	Preview  int    `env:"SOCIALNET_PREVIEW" envDefault:"10" yaml:"preview"`

	LogLevel  string `env:"SOCIALNET_LOG_LEVEL" envDefault:"info" yaml:"log_level"`
	LogFormat string `env:"SOCIALNET_LOG_FORMAT" envDefault:"text" yaml:"log_format"`
}

// Load reads the given .env files (or DefaultEnvFile if present when none
// are given) into the process environment and parses Config from it.
func Load(files ...string) (Config, error) {
	if err := loadEnvFiles(files...); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

// FromMap parses Config from environ instead of the process environment.
// Missing keys take their defaults.
func FromMap(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

// Default returns Config with every field at its default.
func Default() Config {
	cfg, err := FromMap(map[string]string{})
	if err != nil {
		panic(fmt.Sprintf("config: defaults do not parse: %v", err))
	}

	return cfg
}

// Validate reports the first out-of-range or unknown value, wrapped in
// ErrInvalidConfig. Vocabulary paths are not checked here.
func (c Config) Validate() error {
	switch {
	case c.PoolSize < 0:
		return fmt.Errorf("%w: pool_size=%d must be >= 0", ErrInvalidConfig, c.PoolSize)
	case c.EdgeCount < 0:
		return fmt.Errorf("%w: edge_count=%d must be >= 0", ErrInvalidConfig, c.EdgeCount)
	case c.VocabularySize < 1:
		return fmt.Errorf("%w: vocabulary_size=%d must be >= 1", ErrInvalidConfig, c.VocabularySize)
	case c.Preview < 0:
		return fmt.Errorf("%w: preview=%d must be >= 0", ErrInvalidConfig, c.Preview)
	case c.Output == "":
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}
	if _, err := generator.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		files = []string{DefaultEnvFile}
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}

	return nil
}
