// Package audit records bulk-import history.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/protonsvc/rasa-nlg/internal/db"
)

// Store persists import records.
type Store struct {
	db *db.DB
}

// NewStore creates an audit store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts a new import record. If rec.ID is empty a UUID is generated.
func (s *Store) Record(ctx context.Context, rec Record) (*Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO imports (id, bot_id, source, item_count, created_at) VALUES (?, ?, ?, ?, ?)",
		rec.ID, rec.BotID, string(rec.Source), rec.ItemCount,
		rec.CreatedAt.Format(time.DateTime),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting import record: %w", err)
	}
	return &rec, nil
}

// List returns the most recent import records, newest first. An empty botID
// matches all bots; a limit of 0 means no limit.
func (s *Store) List(ctx context.Context, botID string, limit int) ([]Record, error) {
	query := "SELECT id, bot_id, source, item_count, created_at FROM imports"
	args := []any{}
	if botID != "" {
		query += " WHERE bot_id = ?"
		args = append(args, botID)
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing import records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec     Record
			source  string
			created string
		)
		if err := rows.Scan(&rec.ID, &rec.BotID, &source, &rec.ItemCount, &created); err != nil {
			return nil, fmt.Errorf("scanning import record: %w", err)
		}
		rec.Source = Source(source)
		if t, err := time.Parse(time.DateTime, created); err == nil {
			rec.CreatedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
