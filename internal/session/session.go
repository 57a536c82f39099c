// package session owns the read-modify-write cycle against the record store.
//
// A Session bundles the loaded table with the revision token it was read at,
// so handlers receive explicit state instead of ambient globals. Every
// mutating operation edits the in-memory table and then attempts a full
// commit; when the commit fails the table keeps the change, the session is
// marked dirty, and the caller decides whether to retry the save or reload.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/avolette/jobtrack/internal/journal"
	"github.com/avolette/jobtrack/internal/models"
	"github.com/avolette/jobtrack/internal/shared"
	"github.com/avolette/jobtrack/internal/store"
	"github.com/avolette/jobtrack/internal/table"
)

// Session is the single-owner working state for one editing session.
type Session struct {
	store    store.Store
	journal  *journal.Journal
	logger   *log.Logger
	table    *table.Table
	revision store.Revision
	dirty    bool
}

// New creates a Session over the given store.
// The journal is optional; a nil logger discards log output.
func New(st store.Store, jnl *journal.Journal, logger *log.Logger) *Session {
	if logger == nil {
		logger = shared.NewLogger(io.Discard)
	}

	return &Session{
		store:   st,
		journal: jnl,
		logger:  logger,
		table:   table.New(),
	}
}

// Table exposes the in-memory working copy.
func (s *Session) Table() *table.Table {
	return s.table
}

// Revision returns the revision token the table was last synced at.
func (s *Session) Revision() store.Revision {
	return s.revision
}

// Dirty reports whether the table holds changes that failed to persist.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Load fetches the remote dataset and replaces the working copy.
//
// A missing remote file is first-run territory: it becomes an empty table
// with a zero revision, so the next commit creates the file.
func (s *Session) Load(ctx context.Context) error {
	snap, err := s.store.Fetch(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Info("remote dataset not found, starting empty")
			s.table = table.New()
			s.revision = ""
			s.dirty = false
			return nil
		}
		return fmt.Errorf("failed to fetch dataset: %w", err)
	}

	tbl, err := table.Load(snap.Applications)
	if err != nil {
		return fmt.Errorf("remote dataset is inconsistent: %w", err)
	}
	tbl.SortByDate()

	s.table = tbl
	s.revision = snap.Revision
	s.dirty = false

	s.recordSync(journal.OpFetch, string(snap.Revision), "", tbl.Len())
	s.logger.Info("dataset loaded", "rows", tbl.Len(), "revision", snap.Revision)
	return nil
}

// Add creates a record and persists the table.
func (s *Session) Add(ctx context.Context, app models.Application) error {
	if err := s.table.Add(app); err != nil {
		return err
	}
	s.table.SortByDate()
	return s.Save(ctx, fmt.Sprintf("feat: add %s %s", app.Company, app.Position))
}

// Update edits a record in place and persists the table.
func (s *Session) Update(ctx context.Context, id string, fields table.Fields) error {
	if err := s.table.Update(id, fields); err != nil {
		return err
	}
	s.table.SortByDate()

	app, _ := s.table.Get(id)
	return s.Save(ctx, fmt.Sprintf("chore: update %s", app.Company))
}

// Delete removes a record and persists the table.
func (s *Session) Delete(ctx context.Context, id string) error {
	app, ok := s.table.Get(id)
	if !ok {
		return fmt.Errorf("%w: no record with id %q", shared.ErrNotFound, id)
	}

	if err := s.table.Delete(id); err != nil {
		return err
	}
	return s.Save(ctx, fmt.Sprintf("chore: delete %s", app.Company))
}

// ToggleRejected flips a record's rejected flag and persists the table.
func (s *Session) ToggleRejected(ctx context.Context, id string) error {
	if err := s.table.ToggleRejected(id); err != nil {
		return err
	}

	app, _ := s.table.Get(id)
	message := fmt.Sprintf("chore: mark rejected %s", app.Company)
	if !app.Rejected {
		message = fmt.Sprintf("chore: reopen %s", app.Company)
	}
	return s.Save(ctx, message)
}

// Save commits the whole table against the current revision token.
//
// On conflict or failure the in-memory state is untouched and stays dirty;
// the user retries explicitly. No automatic retry, no merge.
func (s *Session) Save(ctx context.Context, message string) error {
	rev, err := s.store.Commit(ctx, s.table.Rows(), s.revision, message)
	if err != nil {
		s.dirty = true
		s.logger.Warn("save failed", "error", err)
		return err
	}

	s.revision = rev
	s.dirty = false

	s.recordSync(journal.OpCommit, string(rev), message, s.table.Len())
	s.logger.Info("dataset saved", "message", message, "revision", rev)
	return nil
}

// recordSync appends a journal entry; journal trouble is logged, never fatal.
func (s *Session) recordSync(op, revision, message string, rows int) {
	if s.journal == nil {
		return
	}
	err := s.journal.Record(journal.Entry{
		Operation: op,
		Revision:  revision,
		Message:   message,
		RowCount:  rows,
	})
	if err != nil {
		s.logger.Warn("failed to record sync journal entry", "error", err)
	}
}
