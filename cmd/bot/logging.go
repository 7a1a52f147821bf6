package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/rg/tgctx/internal/config"
	"github.com/rg/tgctx/internal/telegram"
)

func newLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text":
		h = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		h = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return nil, fmt.Errorf("unknown logging.format: %s", cfg.Format)
	}

	return slog.New(h), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown logging.level: %s", s)
	}
}

// setupLogging installs the configured logger as the slog default and
// routes tgbotapi's own output through it.
func setupLogging(cfg config.LoggingConfig) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	slog.SetDefault(logger)
	if err := telegram.UseLogger(logger); err != nil {
		return fmt.Errorf("failed to set telegram logger: %w", err)
	}

	return nil
}
