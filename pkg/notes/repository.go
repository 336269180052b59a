package notes

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProcessedEvent is one audit-log entry for a successfully created calendar
// event. The log is informational only: the in-text completion marker, not
// this table, decides whether a line is reprocessed.
type ProcessedEvent struct {
	Uid           uuid.UUID
	NotePath      string
	Summary       string
	StartTime     string
	EndTime       string
	GoogleEventId string
	CreatedAt     time.Time
}

type Repository interface {
	StoreProcessedEvent(ctx context.Context, event ProcessedEvent) (uuid.UUID, error)
	GetRecent(ctx context.Context, limit int) ([]ProcessedEvent, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StoreProcessedEvent(ctx context.Context, event ProcessedEvent) (uuid.UUID, error) {
	if event.Uid == uuid.Nil {
		event.Uid = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO processed_event (uid, note_path, summary, start_time, end_time, google_event_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.Uid.String(), event.NotePath, event.Summary, event.StartTime, event.EndTime,
		event.GoogleEventId, event.CreatedAt.UnixMilli())
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to store processed event: %w", err)
	}
	return event.Uid, nil
}

func (r *RepositoryImpl) GetRecent(ctx context.Context, limit int) ([]ProcessedEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT uid, note_path, summary, start_time, end_time, google_event_id, created_at
		FROM processed_event ORDER BY created_at DESC, uid LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query processed events: %w", err)
	}
	defer rows.Close()

	var events []ProcessedEvent
	for rows.Next() {
		var event ProcessedEvent
		var uid string
		var createdAtMs int64
		err := rows.Scan(&uid, &event.NotePath, &event.Summary, &event.StartTime,
			&event.EndTime, &event.GoogleEventId, &createdAtMs)
		if err != nil {
			return nil, fmt.Errorf("failed to scan processed event: %w", err)
		}
		event.Uid, err = uuid.Parse(uid)
		if err != nil {
			return nil, fmt.Errorf("invalid processed event uid %q: %w", uid, err)
		}
		event.CreatedAt = time.UnixMilli(createdAtMs)
		events = append(events, event)
	}
	return events, rows.Err()
}
