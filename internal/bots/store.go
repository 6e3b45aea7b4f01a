package bots

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/protonsvc/rasa-nlg/internal/api"
	"github.com/protonsvc/rasa-nlg/internal/db"
	"github.com/protonsvc/rasa-nlg/internal/responses"
)

// Store manages persistence of bot metadata. It also owns the cascade that
// keeps a response from outliving its bot.
type Store struct {
	db *db.DB
}

// NewStore creates a bot store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// List returns a summary of every bot. An empty store yields an empty slice,
// never an error.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT bot_id, name, description, rasa_version, last_modified FROM bots",
	)
	if err != nil {
		return nil, fmt.Errorf("listing bots: %w", err)
	}
	defer rows.Close()

	items := []Summary{}
	for rows.Next() {
		var (
			item         Summary
			description  sql.NullString
			lastModified int64
		)
		if err := rows.Scan(&item.ID, &item.Name, &description, &item.RasaVersion, &lastModified); err != nil {
			return nil, fmt.Errorf("scanning bot: %w", err)
		}
		item.Description = description.String
		item.UpdatedOn = db.FormatTimestamp(lastModified)
		items = append(items, item)
	}
	return items, rows.Err()
}

// Get retrieves one bot with its nested responses. Returns a typed 404
// failure if no row matches.
func (s *Store) Get(ctx context.Context, botID string) (*Bot, error) {
	var (
		bot          Bot
		description  sql.NullString
		lastModified int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT name, description, rasa_version, last_modified FROM bots WHERE bot_id = ?",
		botID,
	).Scan(&bot.Name, &description, &bot.RasaVersion, &lastModified)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, api.NotFoundf("No bot found '%s'", botID)
	}
	if err != nil {
		return nil, fmt.Errorf("getting bot: %w", err)
	}

	bot.ID = botID
	bot.Description = description.String
	bot.UpdatedOn = db.FormatTimestamp(lastModified)

	rows, err := s.db.QueryContext(ctx,
		"SELECT resp_id, data, last_modified FROM responses WHERE bot_id = ?",
		botID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing bot responses: %w", err)
	}
	defer rows.Close()

	bot.Responses = []responses.Response{}
	for rows.Next() {
		var (
			resp     responses.Response
			data     string
			modified int64
		)
		if err := rows.Scan(&resp.ID, &data, &modified); err != nil {
			return nil, fmt.Errorf("scanning bot response: %w", err)
		}
		resp.Data = json.RawMessage(data)
		resp.UpdatedOn = db.FormatTimestamp(modified)
		bot.Responses = append(bot.Responses, resp)
	}
	return &bot, rows.Err()
}

// Upsert inserts or fully replaces a bot row.
func (s *Store) Upsert(ctx context.Context, botID string, req UpsertRequest) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO bots (bot_id, name, description, rasa_version, last_modified) VALUES (?, ?, ?, ?, ?)",
		botID, req.Name, req.Description, req.RasaVersion, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upserting bot: %w", err)
	}
	return nil
}

// Remove deletes the bot and every response scoped to it in one transaction.
// Removing a bot that does not exist is not an error.
func (s *Store) Remove(ctx context.Context, botID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning delete tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM responses WHERE bot_id = ?", botID); err != nil {
		return fmt.Errorf("deleting bot responses: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM bots WHERE bot_id = ?", botID); err != nil {
		return fmt.Errorf("deleting bot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	return nil
}
