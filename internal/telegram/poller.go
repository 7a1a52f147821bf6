package telegram

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// UpdateSource delivers updates by long polling. *tgbotapi.BotAPI
// implements it.
type UpdateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type UpdateHandler func(update tgbotapi.Update) error

type PollerOptions struct {
	Timeout        int
	Limit          int
	AllowedUpdates []string
}

type Poller struct {
	source UpdateSource
	opts   PollerOptions
}

func NewPoller(source UpdateSource, opts PollerOptions) *Poller {
	return &Poller{
		source: source,
		opts:   opts,
	}
}

// Start delivers updates to handler one at a time until ctx is cancelled
// or the source closes its channel. Handler errors are logged and do not
// stop the loop.
func (p *Poller) Start(ctx context.Context, handler UpdateHandler) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = p.opts.Timeout
	u.Limit = p.opts.Limit
	u.AllowedUpdates = p.opts.AllowedUpdates

	updates := p.source.GetUpdatesChan(u)

	slog.Info("Telegram bot started, listening for updates",
		"timeout", u.Timeout,
		"allowed_updates", u.AllowedUpdates)

	for {
		select {
		case <-ctx.Done():
			p.source.StopReceivingUpdates()
			slog.Info("Telegram poller stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if err := handler(update); err != nil {
				slog.Error("Error handling update", "update_id", update.UpdateID, "error", err)
			}
		}
	}
}
