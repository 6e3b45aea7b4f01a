package responses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/protonsvc/rasa-nlg/internal/api"
	"github.com/protonsvc/rasa-nlg/internal/db"
)

// Store manages persistence of response variation sets, keyed by
// (bot id, response id).
type Store struct {
	db *db.DB
}

// NewStore creates a response store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Get retrieves one response. Returns a typed 404 failure if no row matches.
func (s *Store) Get(ctx context.Context, botID, respID string) (*Response, error) {
	var (
		resp         Response
		data         string
		lastModified int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT resp_id, data, last_modified FROM responses WHERE bot_id = ? AND resp_id = ?",
		botID, respID,
	).Scan(&resp.ID, &data, &lastModified)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, api.NotFoundf("No response found for '%s'", respID)
	}
	if err != nil {
		return nil, fmt.Errorf("getting response: %w", err)
	}

	resp.Data = json.RawMessage(data)
	resp.UpdatedOn = db.FormatTimestamp(lastModified)
	return &resp, nil
}

// Upsert inserts or fully replaces the payload for (botID, respID). The
// referenced bot is not checked for existence; orphaned responses are
// currently allowed.
func (s *Store) Upsert(ctx context.Context, botID, respID string, data json.RawMessage) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO responses (bot_id, resp_id, data, last_modified) VALUES (?, ?, ?, ?)",
		botID, respID, string(data), time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upserting response: %w", err)
	}
	return nil
}

// Remove deletes one response. Removing a response that does not exist is
// not an error.
func (s *Store) Remove(ctx context.Context, botID, respID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM responses WHERE bot_id = ? AND resp_id = ?",
		botID, respID,
	)
	if err != nil {
		return fmt.Errorf("removing response: %w", err)
	}
	return nil
}

// Load upserts every response in the document inside a single transaction:
// either all entries commit or none do. The optional onItem callback fires
// once per entry, in identifier order. Returns the number of entries written.
func (s *Store) Load(ctx context.Context, botID string, doc *Document, onItem func(respID string)) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UnixMilli()
	count := 0
	for _, respID := range doc.ids() {
		_, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO responses (bot_id, resp_id, data, last_modified) VALUES (?, ?, ?, ?)",
			botID, respID, string(doc.Responses[respID]), now,
		)
		if err != nil {
			return 0, fmt.Errorf("importing response %q: %w", respID, err)
		}
		count++
		if onItem != nil {
			onItem(respID)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return count, nil
}
