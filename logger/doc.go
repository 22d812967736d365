// Package logger builds *slog.Logger instances from functional options.
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithAttr(slog.String("run_id", id)),
//	)
//
// Defaults: INFO level, text format, os.Stderr. Stdout is left to program
// output such as the edge preview.
package logger
