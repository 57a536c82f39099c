package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/avolette/jobtrack/internal/journal"
	"github.com/avolette/jobtrack/internal/shared"
)

// SyncLog prints recent sync journal entries, newest first.
func (r *Runner) SyncLog(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	jnl := r.syncJournal()
	if jnl == nil {
		return fmt.Errorf("%w: sync journal database unavailable, run 'jobtrack setup'", shared.ErrInvalidConfig)
	}

	entries, err := jnl.Recent(limit)
	if err != nil {
		return fmt.Errorf("failed to read sync journal: %w", err)
	}

	if useJSON {
		return r.writeJSON(entries, pretty)
	}

	if len(entries) == 0 {
		r.writePlain("No sync history recorded yet.\n")
		return nil
	}

	r.writePlain("Last %d sync operations:\n\n", len(entries))
	for i, entry := range entries {
		r.writePlain("%d. %s at %s\n", i+1, entry.Operation, entry.CreatedAt.Format("2006-01-02 15:04:05"))
		if entry.Operation == journal.OpCommit && entry.Message != "" {
			r.writePlain("   Message: %s\n", entry.Message)
		}
		r.writePlain("   Rows: %d\n", entry.RowCount)
		if entry.Revision != "" {
			r.writePlain("   Revision: %s\n", entry.Revision)
		}
		r.writePlain("\n")
	}

	return nil
}
