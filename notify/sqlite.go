package notify

import (
	"database/sql"
	"fmt"

	"github.com/crosscheck-ai/crosscheck"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS responses (
	id         TEXT PRIMARY KEY,
	provider   TEXT NOT NULL,
	model      TEXT,
	prompt     TEXT NOT NULL,
	text       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_responses_provider ON responses (provider);
`

// SQLiteSink inserts each response into a sqlite database, giving the archive
// a queryable form alongside the JSONL file.
type SQLiteSink struct {
	db *sql.DB
}

func NewSQLiteSink(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite database %s: %w", path, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating responses table: %w", err)
	}
	return &SQLiteSink{db: db}, nil
}

func (s *SQLiteSink) OnNewResponse(r *crosscheck.Response) error {
	_, err := s.db.Exec(
		`INSERT INTO responses (id, provider, model, prompt, text, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Provider, r.Model, r.Prompt, r.Text, r.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("error inserting response: %w", err)
	}
	return nil
}

// Count returns the number of archived responses, optionally filtered by
// provider (empty matches all).
func (s *SQLiteSink) Count(provider string) (int, error) {
	var count int
	var err error
	if provider == "" {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM responses`).Scan(&count)
	} else {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM responses WHERE provider = ?`, provider).Scan(&count)
	}
	return count, err
}

func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
