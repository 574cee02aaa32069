// Package database keeps an append-only sqlite log of counted word
// occurrences. The JSON store stays the source of truth for counters; the
// log only feeds the stats command.
package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Occurrence is one counted word occurrence.
type Occurrence struct {
	ID        int64     `db:"id"`
	GuildID   string    `db:"guild_id"`
	UserID    string    `db:"user_id"`
	Word      string    `db:"word"`
	CountedAt time.Time `db:"counted_at"`
}

// WordCount is an aggregated per-word row for the stats command.
type WordCount struct {
	Word  string `db:"word"`
	Count int    `db:"count"`
}

// OccurrenceDB wraps the sqlite connection for the occurrence log.
type OccurrenceDB struct {
	db *sqlx.DB
}

// InitOccurrenceDB opens the database and ensures the table exists.
func InitOccurrenceDB(dbPath string) (*OccurrenceDB, error) {
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to occurrence database: %w", err)
	}

	schema := `
    CREATE TABLE IF NOT EXISTS occurrences (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        guild_id TEXT NOT NULL,
        user_id TEXT NOT NULL,
        word TEXT NOT NULL,
        counted_at DATETIME NOT NULL
    );
    CREATE INDEX IF NOT EXISTS idx_occurrences_guild ON occurrences(guild_id);`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create occurrences table: %w", err)
	}

	return &OccurrenceDB{db: db}, nil
}

// RecordOccurrence appends one counted occurrence.
func (d *OccurrenceDB) RecordOccurrence(guildID, userID, word string, at time.Time) error {
	occ := Occurrence{GuildID: guildID, UserID: userID, Word: word, CountedAt: at}
	query := `INSERT INTO occurrences (guild_id, user_id, word, counted_at)
              VALUES (:guild_id, :user_id, :word, :counted_at)`
	if _, err := d.db.NamedExec(query, occ); err != nil {
		return fmt.Errorf("failed to insert occurrence: %w", err)
	}
	return nil
}

// GuildOccurrenceCount returns how many occurrences were logged for a guild.
func (d *OccurrenceDB) GuildOccurrenceCount(guildID string) (int, error) {
	var count int
	if err := d.db.Get(&count, "SELECT COUNT(*) FROM occurrences WHERE guild_id = ?", guildID); err != nil {
		return 0, fmt.Errorf("failed to count occurrences for guild %s: %w", guildID, err)
	}
	return count, nil
}

// TotalOccurrenceCount returns the number of logged occurrences overall.
func (d *OccurrenceDB) TotalOccurrenceCount() (int, error) {
	var count int
	if err := d.db.Get(&count, "SELECT COUNT(*) FROM occurrences"); err != nil {
		return 0, fmt.Errorf("failed to count occurrences: %w", err)
	}
	return count, nil
}

// TopWords returns the most counted words of a guild.
func (d *OccurrenceDB) TopWords(guildID string, limit int) ([]WordCount, error) {
	var rows []WordCount
	query := `SELECT word, COUNT(*) AS count FROM occurrences
              WHERE guild_id = ? GROUP BY word ORDER BY count DESC LIMIT ?`
	if err := d.db.Select(&rows, query, guildID, limit); err != nil {
		return nil, fmt.Errorf("failed to query top words for guild %s: %w", guildID, err)
	}
	return rows, nil
}

// Close closes the underlying connection.
func (d *OccurrenceDB) Close() error {
	return d.db.Close()
}
