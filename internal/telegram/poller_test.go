package telegram

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type fakeSource struct {
	ch      chan tgbotapi.Update
	config  tgbotapi.UpdateConfig
	stopped bool
}

func (f *fakeSource) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	f.config = config
	return f.ch
}

func (f *fakeSource) StopReceivingUpdates() {
	f.stopped = true
}

func TestPoller_DeliversUntilClosed(t *testing.T) {
	source := &fakeSource{ch: make(chan tgbotapi.Update, 3)}
	source.ch <- tgbotapi.Update{UpdateID: 1}
	source.ch <- tgbotapi.Update{UpdateID: 2}
	source.ch <- tgbotapi.Update{UpdateID: 3}
	close(source.ch)

	poller := NewPoller(source, PollerOptions{Timeout: 30, Limit: 50, AllowedUpdates: []string{"message"}})

	var got []int
	err := poller.Start(context.Background(), func(u tgbotapi.Update) error {
		got = append(got, u.UpdateID)
		if u.UpdateID == 2 {
			return errors.New("handler failed")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if len(got) != 3 {
		t.Errorf("handled %v, want all three updates despite the handler error", got)
	}
	if source.config.Timeout != 30 || source.config.Limit != 50 {
		t.Errorf("update config = %+v, want timeout 30 and limit 50", source.config)
	}
	if len(source.config.AllowedUpdates) != 1 {
		t.Errorf("AllowedUpdates = %v, want [message]", source.config.AllowedUpdates)
	}
}

func TestPoller_StopsOnCancel(t *testing.T) {
	source := &fakeSource{ch: make(chan tgbotapi.Update)}
	poller := NewPoller(source, PollerOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- poller.Start(ctx, func(tgbotapi.Update) error { return nil })
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop after cancel")
	}

	if !source.stopped {
		t.Error("StopReceivingUpdates was not called")
	}
}
