// package store defines the record store client for the remote CSV dataset
//
// The dataset lives as a single file in a private version-controlled
// repository; every read returns a revision token and every write presents
// the previous one, giving last-write-wins optimistic concurrency.
package store

import (
	"context"

	"github.com/avolette/jobtrack/internal/models"
)

// Revision is the opaque token identifying the remote file's current version.
//
// The zero value means the file does not exist yet; a commit with a zero
// revision creates it.
type Revision string

// Snapshot is a full read of the remote dataset together with its revision.
type Snapshot struct {
	Applications []models.Application
	Revision     Revision
}

// Store reads and writes the versioned remote dataset.
type Store interface {
	// Fetch retrieves the current remote content and decodes it into records.
	// Fails with shared.ErrNotFound when the remote file does not exist,
	// shared.ErrAuth on invalid credentials and shared.ErrTransient on
	// network or service failure.
	Fetch(ctx context.Context) (*Snapshot, error)

	// Commit serializes rows, uploads them with the prior revision token and
	// returns the new token. Fails with shared.ErrConflict when the remote
	// revision advanced since Fetch; the caller must re-fetch and reapply.
	// No retry or merge is attempted.
	Commit(ctx context.Context, rows []models.Application, rev Revision, message string) (Revision, error)
}
