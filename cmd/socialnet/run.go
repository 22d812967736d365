package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/socialnet/config"
	"github.com/katalvlaran/socialnet/export"
	"github.com/katalvlaran/socialnet/generator"
	"github.com/katalvlaran/socialnet/logger"
	"github.com/katalvlaran/socialnet/vocabulary"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

// errUsage marks command-line parsing failures.
var errUsage = errors.New("usage error")

// options are the command-line overrides.
type options struct {
	envFiles []string
	out      string
	seed     int64
	seedSet  bool
	verify   bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		o       options
		envFile string
	)
	fs := flag.NewFlagSet("socialnet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&envFile, "env", "", "load settings from this .env file (default: ./.env if present)")
	fs.StringVar(&o.out, "out", "", "output TSV path (overrides SOCIALNET_OUTPUT)")
	fs.Int64Var(&o.seed, "seed", 0, "random seed, 0 = time-based (overrides SOCIALNET_SEED)")
	fs.BoolVar(&o.verify, "verify", false, "read the written file back and check every edge")
	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("%w: unexpected arguments %q", errUsage, fs.Args())
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.seedSet = true
		}
	})
	if envFile != "" {
		o.envFiles = []string{envFile}
	}

	return o, nil
}

// loadConfig resolves configuration from the environment and applies flag
// overrides.
func loadConfig(o options) (config.Config, error) {
	cfg, err := config.Load(o.envFiles...)
	if err != nil {
		return config.Config{}, err
	}
	if o.out != "" {
		cfg.Output = o.out
	}
	if o.seedSet {
		cfg.Seed = o.seed
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitConfig
	}

	cfg, err := loadConfig(o)
	if err != nil {
		logger.New(logger.WithOutput(stderr)).Error("load configuration", slog.Any("error", err))

		return exitCode(err)
	}

	// Validate has already accepted level and format.
	level, _ := logger.ParseLevel(cfg.LogLevel)
	format, _ := logger.ParseFormat(cfg.LogFormat)
	log := logger.New(
		logger.WithOutput(stderr),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(slog.String("run_id", uuid.NewString())),
	)

	if err = generate(ctx, log, cfg, o.verify, stdout); err != nil {
		log.Error("generation failed", slog.Any("error", err))

		return exitCode(err)
	}

	return exitOK
}

func generate(ctx context.Context, log *slog.Logger, cfg config.Config, verify bool, stdout io.Writer) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	strategy, err := generator.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	log.Info("starting",
		slog.Int("pool_size", cfg.PoolSize),
		slog.Int("edge_count", cfg.EdgeCount),
		slog.String("vocabulary", cfg.Vocabulary),
		slog.String("strategy", strategy.String()),
		slog.Int64("seed", seed),
	)

	voc, err := resolveVocabulary(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	log.Debug("vocabulary ready",
		slog.Int("first_names", len(voc.FirstNames)),
		slog.Int("last_names", len(voc.LastNames)),
		slog.Int("max_names", generator.MaxNames(voc.FirstNames, voc.LastNames)),
	)

	start := time.Now()
	net, err := generator.Build(generator.Params{
		PoolSize:   cfg.PoolSize,
		EdgeCount:  cfg.EdgeCount,
		FirstNames: voc.FirstNames,
		LastNames:  voc.LastNames,
	}, generator.WithSeed(seed), generator.WithStrategy(strategy))
	if err != nil {
		return err
	}
	log.Info("network generated",
		slog.Int("names", len(net.Names)),
		slog.Int("edges", len(net.Edges)),
		slog.Int("vertices", net.Graph().VertexCount()),
		slog.Duration("elapsed", time.Since(start)),
	)

	if err = export.Preview(stdout, net.Edges, cfg.Preview); err != nil {
		return err
	}

	if err = export.WriteFile(ctx, cfg.Output, net.Edges); err != nil {
		return err
	}
	log.Info("edges written", slog.String("path", cfg.Output))

	if verify {
		written, err := export.ReadFile(cfg.Output)
		if err != nil {
			return err
		}
		if len(written) != len(net.Edges) {
			return fmt.Errorf("%w: file has %d edges, generated %d", generator.ErrVerification, len(written), len(net.Edges))
		}
		if err = generator.Verify(net.Names, written); err != nil {
			return err
		}
		log.Info("output verified", slog.Int("edges", len(written)))
	}

	_, err = fmt.Fprintf(stdout, "Data stored at: %s\n", cfg.Output)

	return err
}

// resolveVocabulary opens the configured vocabulary and applies the
// SOCIALNET_FIRST_NAMES / SOCIALNET_LAST_NAMES overrides.
func resolveVocabulary(cfg config.Config, r *rand.Rand) (vocabulary.Vocabulary, error) {
	voc, err := vocabulary.Open(cfg.Vocabulary, cfg.VocabularySize, r)
	if err != nil {
		return vocabulary.Vocabulary{}, err
	}
	if len(cfg.FirstNames) > 0 {
		voc.FirstNames = cfg.FirstNames
	}
	if len(cfg.LastNames) > 0 {
		voc.LastNames = cfg.LastNames
	}

	voc = voc.Normalize()
	if err = voc.Validate(); err != nil {
		return vocabulary.Vocabulary{}, err
	}

	return voc, nil
}

// exitCode maps configuration problems to exitConfig and everything else
// to exitFailed.
func exitCode(err error) int {
	for _, target := range []error{
		errUsage,
		generator.ErrConfiguration,
		config.ErrInvalidConfig,
		config.ErrParsingConfig,
		config.ErrLoadingEnv,
		vocabulary.ErrEmpty,
		vocabulary.ErrDecode,
		vocabulary.ErrExhausted,
	} {
		if errors.Is(err, target) {
			return exitConfig
		}
	}

	return exitFailed
}
