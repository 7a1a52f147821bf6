package telegram

import (
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// slogAdapter satisfies tgbotapi.BotLogger so the library's own messages
// end up in the structured log.
type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Println(v ...interface{}) {
	a.logger.Debug(strings.TrimSuffix(fmt.Sprintln(v...), "\n"), "component", "tgbotapi")
}

func (a slogAdapter) Printf(format string, v ...interface{}) {
	a.logger.Debug(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"), "component", "tgbotapi")
}

// UseLogger routes tgbotapi logging through logger.
func UseLogger(logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	return tgbotapi.SetLogger(slogAdapter{logger: logger})
}
