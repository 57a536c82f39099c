// package journal persists a local, append-only record of store syncs.
//
// Every fetch and commit against the remote dataset gets one row, giving a
// session an auditable history of what was pushed and when. The journal is
// observability only: the remote file stays the sole durable copy of the
// dataset, and journal failures never block a save.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/avolette/jobtrack/internal/shared"
)

// Journal operations.
const (
	OpFetch  = "fetch"
	OpCommit = "commit"
)

// Entry records one interaction with the remote record store.
type Entry struct {
	ID        string    `json:"id"`
	Operation string    `json:"operation"`
	Revision  string    `json:"revision,omitempty"`
	Message   string    `json:"message,omitempty"`
	RowCount  int       `json:"row_count"`
	CreatedAt time.Time `json:"created_at"`
}

// Journal writes and reads sync entries in the local SQLite database.
type Journal struct {
	db *sql.DB
}

// New creates a Journal backed by the given database connection.
// The schema is managed by shared.RunMigrations.
func New(db *sql.DB) *Journal {
	return &Journal{db: db}
}

// Record inserts a sync entry, generating the id and timestamp when absent.
func (j *Journal) Record(entry Entry) error {
	if entry.Operation != OpFetch && entry.Operation != OpCommit {
		return fmt.Errorf("%w: unknown operation %q", shared.ErrValidation, entry.Operation)
	}

	if entry.ID == "" {
		entry.ID = shared.GenerateID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO journal (id, operation, revision, message, row_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := j.db.Exec(query,
		entry.ID,
		entry.Operation,
		entry.Revision,
		entry.Message,
		entry.RowCount,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}

	return nil
}

// Recent returns the most recent entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, operation, revision, message, row_count, created_at
		FROM journal
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`
	rows, err := j.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.Operation, &entry.Revision, &entry.Message, &entry.RowCount, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	return entries, nil
}
