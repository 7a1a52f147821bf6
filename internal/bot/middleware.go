package bot

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"

	tgctx "github.com/rg/tgctx/internal/context"
	"github.com/rg/tgctx/internal/security"
	"github.com/rg/tgctx/internal/storage"
)

// RateLimiter is a sliding-window counter per chat.
type RateLimiter struct {
	requests map[int64][]time.Time
	mu       sync.Mutex
	limit    int
	window   time.Duration
	now      func() time.Time
}

// NewRateLimiter allows limit updates per chat within window. A limit of
// zero disables limiting.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests: make(map[int64][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

func (rl *RateLimiter) Allow(chatID int64) bool {
	if rl.limit <= 0 {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	requests, exists := rl.requests[chatID]
	if !exists {
		rl.requests[chatID] = []time.Time{now}
		return true
	}

	var validRequests []time.Time
	for _, t := range requests {
		if t.After(cutoff) {
			validRequests = append(validRequests, t)
		}
	}

	if len(validRequests) >= rl.limit {
		rl.requests[chatID] = validRequests
		return false
	}

	validRequests = append(validRequests, now)
	rl.requests[chatID] = validRequests
	return true
}

// Cleanup forgets chats with no request in the last two windows.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.window * 2)

	for chatID, requests := range rl.requests {
		var validRequests []time.Time
		for _, t := range requests {
			if t.After(cutoff) {
				validRequests = append(validRequests, t)
			}
		}

		if len(validRequests) == 0 {
			delete(rl.requests, chatID)
		} else {
			rl.requests[chatID] = validRequests
		}
	}
}

func (rl *RateLimiter) StartCleanupWorker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.Cleanup()
		case <-ctx.Done():
			return
		}
	}
}

// RateLimit drops updates from chats over their quota. Dropped updates are
// marked in the state under StateRateLimited. Updates without a chat are
// never limited.
func RateLimit(rl *RateLimiter) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(c *tgctx.Context) error {
			chat := c.Chat()
			if chat != nil && !rl.Allow(chat.ID) {
				slog.Warn("Rate limit exceeded", "chat_id", chat.ID, "update_type", c.UpdateType())
				c.State()[StateRateLimited] = true
				return nil
			}
			return next(c)
		}
	}
}

// Logger logs every update with its outcome and duration. Error text goes
// through sanitizer when one is given.
func Logger(sanitizer *security.Sanitizer) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(c *tgctx.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			attrs := []any{
				"update_id", c.Update().UpdateID,
				"update_type", c.UpdateType(),
				"chat_id", chatIDOf(c),
				"duration", duration,
			}
			if traceID, ok := c.State()[StateTraceID].(string); ok {
				attrs = append(attrs, "trace_id", traceID)
			}

			if err != nil {
				slog.Error("Update failed", append(attrs, "error", errorText(sanitizer, err))...)
			} else {
				slog.Info("Update handled", attrs...)
			}

			return err
		}
	}
}

// Recover turns a handler panic into an error.
func Recover() Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(c *tgctx.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("Handler panicked", "update_id", c.Update().UpdateID, "panic", r, "stack", string(debug.Stack()))
					err = fmt.Errorf("handler panicked: %v", r)
				}
			}()
			return next(c)
		}
	}
}

// JournalStore persists journal entries. *storage.Storage implements it.
type JournalStore interface {
	SaveUpdate(rec *storage.UpdateRecord) error
}

// Journal records every update in store under a fresh trace id, which is
// also put in the state under StateTraceID. A failed write is logged and
// does not fail the update.
func Journal(store JournalStore, sanitizer *security.Sanitizer) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(c *tgctx.Context) error {
			traceID := uuid.NewString()
			c.State()[StateTraceID] = traceID

			start := time.Now()
			err := next(c)

			rec := &storage.UpdateRecord{
				TraceID:    traceID,
				UpdateID:   c.Update().UpdateID,
				UpdateType: c.UpdateType(),
				SubType:    c.UpdateSubType(),
				ChatID:     chatIDOf(c),
				Status:     storage.StatusOK,
				Duration:   time.Since(start),
				CreatedAt:  start,
			}
			if from := c.From(); from != nil {
				rec.FromID = from.ID
			}
			switch {
			case err != nil:
				rec.Status = storage.StatusFailed
				rec.Error = errorText(sanitizer, err)
			case c.State()[StateRateLimited] == true:
				rec.Status = storage.StatusSkipped
			}

			if saveErr := store.SaveUpdate(rec); saveErr != nil {
				slog.Error("Failed to journal update", "trace_id", traceID, "error", saveErr)
			}

			return err
		}
	}
}

func chatIDOf(c *tgctx.Context) int64 {
	if chat := c.Chat(); chat != nil {
		return chat.ID
	}
	return 0
}

func errorText(sanitizer *security.Sanitizer, err error) string {
	if sanitizer == nil {
		return err.Error()
	}
	return sanitizer.Error(err)
}
