package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rg/tgctx/internal/bot"
	"github.com/rg/tgctx/internal/config"
	tgctx "github.com/rg/tgctx/internal/context"
	"github.com/rg/tgctx/internal/security"
	"github.com/rg/tgctx/internal/storage"
	"github.com/rg/tgctx/internal/telegram"
)

const rateLimitCleanupInterval = 10 * time.Minute

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Poll Telegram for updates and serve them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := setupLogging(cfg.Logging); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg)
		},
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	slog.Info("Starting bot", "config", cfg.String())

	store, err := storage.NewStorage(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Database initialized", "path", cfg.Storage.DBPath)

	patterns := append(append([]string{}, security.DefaultPatterns...), cfg.Security.SecretPatterns...)
	sanitizer, err := security.NewSanitizer(patterns, cfg.Telegram.Token)
	if err != nil {
		return fmt.Errorf("failed to initialize sanitizer: %w", err)
	}

	api, err := telegram.Dial(cfg.Telegram.Token, telegram.Options{
		APIEndpoint: cfg.Telegram.APIEndpoint,
		Timeout:     cfg.Telegram.Timeout,
		Debug:       cfg.Telegram.Debug,
	})
	if err != nil {
		return err
	}

	username := cfg.Telegram.Username
	if username == "" {
		username = api.Self.UserName
	}

	rl := bot.NewRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window)

	b := bot.New(api, tgctx.Options{Username: username})
	b.Use(
		bot.Journal(store, sanitizer),
		bot.Logger(sanitizer),
		bot.Recover(),
		bot.RateLimit(rl),
	)
	bot.RegisterDefaults(b)

	go rl.StartCleanupWorker(ctx, rateLimitCleanupInterval)
	go storage.NewPruner(store, cfg.Storage.Retention, cfg.Storage.PruneInterval).Start(ctx)

	poller := telegram.NewPoller(api, telegram.PollerOptions{
		Timeout:        cfg.Polling.Timeout,
		Limit:          cfg.Polling.Limit,
		AllowedUpdates: cfg.Telegram.AllowedUpdates,
	})

	slog.Info("Bot is ready to receive updates", "username", username, "commands", b.Commands())

	if err := poller.Start(ctx, b.HandleUpdate); err != nil {
		return fmt.Errorf("poller stopped: %w", err)
	}

	slog.Info("Shutting down")
	return nil
}
