package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/avolette/jobtrack/internal/session"
	"github.com/avolette/jobtrack/internal/shared"
	"github.com/avolette/jobtrack/internal/ui"
)

// TUI launches the interactive terminal UI for application tracking.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	st, err := r.recordStore()
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.Log.Path)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	sess := session.New(st, r.syncJournal(), fileLogger)

	model := ui.NewModel(ctx, sess)
	p := tea.NewProgram(model)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if m, ok := final.(*ui.Model); ok && m.Err() != nil {
		return m.Err()
	}

	return nil
}
