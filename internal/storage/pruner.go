package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Pruner periodically drops journal entries older than the retention window.
type Pruner struct {
	storage   *Storage
	retention time.Duration
	interval  time.Duration
	now       func() time.Time
}

func NewPruner(storage *Storage, retention, interval time.Duration) *Pruner {
	return &Pruner{
		storage:   storage,
		retention: retention,
		interval:  interval,
		now:       time.Now,
	}
}

// Start prunes on every tick until ctx is cancelled. A non-positive
// interval disables the pruner.
func (p *Pruner) Start(ctx context.Context) {
	if p.interval <= 0 {
		slog.Error("Journal pruner disabled", "interval", p.interval)
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	slog.Info("Starting journal pruner", "interval", p.interval, "retention", p.retention)

	for {
		select {
		case <-ticker.C:
			if _, err := p.Prune(); err != nil {
				slog.Error("Error during journal prune", "error", err)
			}
		case <-ctx.Done():
			slog.Info("Journal pruner stopped")
			return
		}
	}
}

// Prune runs one pass and returns the number of deleted entries.
func (p *Pruner) Prune() (int64, error) {
	if p.retention < 0 {
		return 0, fmt.Errorf("invalid retention %v: must not be negative", p.retention)
	}
	deleted, err := p.storage.DeleteUpdatesBefore(p.now().Add(-p.retention))
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		slog.Info("Pruned journal entries", "deleted", deleted)
	}
	return deleted, nil
}
