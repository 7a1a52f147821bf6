package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// UpdateRecord is one handled update in the journal.
type UpdateRecord struct {
	ID         int64
	TraceID    string
	UpdateID   int
	UpdateType string
	SubType    string
	ChatID     int64
	FromID     int64
	Status     string
	Error      string
	Duration   time.Duration
	CreatedAt  time.Time
}

// SaveUpdate inserts rec. A missing trace id or timestamp is filled in and
// written back to rec.
func (s *Storage) SaveUpdate(rec *UpdateRecord) error {
	if rec.TraceID == "" {
		rec.TraceID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.CreatedAt = rec.CreatedAt.UTC()

	result, err := s.db.Exec(`
		INSERT INTO update_journal (trace_id, update_id, update_type, sub_type, chat_id, from_id, status, error, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.TraceID, rec.UpdateID, rec.UpdateType, rec.SubType, rec.ChatID, rec.FromID,
		rec.Status, rec.Error, rec.Duration.Milliseconds(), rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save update: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	rec.ID = id

	return nil
}

// GetRecentUpdates returns up to limit of the newest entries, oldest first.
func (s *Storage) GetRecentUpdates(limit int) ([]*UpdateRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, trace_id, update_id, update_type, sub_type, chat_id, from_id, status, error, duration_ms, created_at
		FROM update_journal
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent updates: %w", err)
	}
	defer rows.Close()

	var records []*UpdateRecord
	for rows.Next() {
		var rec UpdateRecord
		var durationMS int64
		if err := rows.Scan(
			&rec.ID,
			&rec.TraceID,
			&rec.UpdateID,
			&rec.UpdateType,
			&rec.SubType,
			&rec.ChatID,
			&rec.FromID,
			&rec.Status,
			&rec.Error,
			&durationMS,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan update: %w", err)
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating updates: %w", err)
	}

	// Reverse to get chronological order
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	return records, nil
}

func (s *Storage) CountByType() (map[string]int, error) {
	rows, err := s.db.Query(`
		SELECT update_type, COUNT(*) FROM update_journal GROUP BY update_type
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count updates: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var updateType string
		var count int
		if err := rows.Scan(&updateType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan update count: %w", err)
		}
		counts[updateType] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating update counts: %w", err)
	}

	return counts, nil
}

// DeleteUpdatesBefore removes entries created before cutoff and reports how
// many were removed.
func (s *Storage) DeleteUpdatesBefore(cutoff time.Time) (int64, error) {
	result, err := s.db.Exec(`
		DELETE FROM update_journal WHERE created_at < ?
	`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete updates: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
