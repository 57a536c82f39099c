package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/avolette/jobtrack/internal/formatter"
	"github.com/avolette/jobtrack/internal/models"
	"github.com/avolette/jobtrack/internal/shared"
)

// AppsList prints the tracked applications, newest first.
func (r *Runner) AppsList(ctx context.Context, cmd *cli.Command) error {
	hideRejected := cmd.Bool("hide-rejected")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	sess, err := r.openSession(ctx)
	if err != nil {
		return err
	}

	apps := []models.Application{}
	for app := range sess.Table().Visible(!hideRejected) {
		apps = append(apps, app)
	}

	if useJSON {
		return r.writeJSON(apps, pretty)
	}

	if len(apps) == 0 {
		r.writePlain("No applications tracked yet. Add one with 'jobtrack apps add'.\n")
		return nil
	}

	r.writePlain("Tracking %d applications:\n\n", len(apps))
	for i, app := range apps {
		r.printApplication(i+1, app)
	}

	return nil
}

// AppsAdd creates a new application record and commits it upstream.
func (r *Runner) AppsAdd(ctx context.Context, cmd *cli.Command) error {
	company := cmd.String("company")
	position := cmd.String("position")
	location := cmd.String("location")
	notes := cmd.String("notes")
	date := cmd.String("date")

	submitted := time.Now()
	if date != "" {
		var err error
		if submitted, err = models.ParseDate(date); err != nil {
			return err
		}
	}

	app, err := models.NewApplication(company, position, location, notes, submitted)
	if err != nil {
		return err
	}

	sess, err := r.openSession(ctx)
	if err != nil {
		return err
	}

	r.logger.Info("adding application", "company", app.Company, "position", app.Position)

	if err := sess.Add(ctx, *app); err != nil {
		return err
	}

	r.writePlain("✓ Added %s — %s\n", app.Company, app.Position)
	r.writePlain("  ID: %s\n", app.ID)
	r.writePlain("  Submitted: %s\n", app.SubmittedOn())
	return nil
}

// AppsReject toggles the rejected flag on a record and commits the change.
func (r *Runner) AppsReject(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: an application id is required", shared.ErrMissingArgument)
	}

	sess, err := r.openSession(ctx)
	if err != nil {
		return err
	}

	if err := sess.ToggleRejected(ctx, id); err != nil {
		return err
	}

	app, _ := sess.Table().Get(id)
	if app.Rejected {
		r.writePlain("✓ Marked %s — %s as rejected\n", app.Company, app.Position)
	} else {
		r.writePlain("✓ Reopened %s — %s\n", app.Company, app.Position)
	}
	return nil
}

// AppsDelete removes a record and commits the removal.
func (r *Runner) AppsDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	force := cmd.Bool("force")

	if id == "" {
		return fmt.Errorf("%w: an application id is required", shared.ErrMissingArgument)
	}

	sess, err := r.openSession(ctx)
	if err != nil {
		return err
	}

	app, ok := sess.Table().Get(id)
	if !ok {
		return fmt.Errorf("%w: no record with id %q", shared.ErrNotFound, id)
	}

	if !force {
		r.writePlain("Delete %s — %s? Re-run with --force to confirm.\n", app.Company, app.Position)
		return nil
	}

	if err := sess.Delete(ctx, id); err != nil {
		return err
	}

	r.writePlain("✓ Deleted %s — %s\n", app.Company, app.Position)
	return nil
}

// AppsExport writes the tracked applications to a local file.
func (r *Runner) AppsExport(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	output := cmd.String("output")
	hideRejected := cmd.Bool("hide-rejected")

	sess, err := r.openSession(ctx)
	if err != nil {
		return err
	}

	apps := []models.Application{}
	for app := range sess.Table().Visible(!hideRejected) {
		apps = append(apps, app)
	}

	result, err := formatter.WriteExport(apps, format, output)
	if err != nil {
		return err
	}

	r.logger.Info("applications exported", "file", result.File, "format", result.Format, "rows", len(apps))
	r.writePlain("✓ Exported %d applications to %s\n", len(apps), result.File)
	return nil
}

// AppsSearch filters applications by company name, case-insensitively.
func (r *Runner) AppsSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if query == "" {
		return fmt.Errorf("%w: a search query is required", shared.ErrMissingArgument)
	}

	sess, err := r.openSession(ctx)
	if err != nil {
		return err
	}

	matches := []models.Application{}
	for app := range sess.Table().Search(query) {
		matches = append(matches, app)
	}

	if useJSON {
		return r.writeJSON(matches, pretty)
	}

	if len(matches) == 0 {
		r.writePlain("No applications match %q.\n", query)
		return nil
	}

	r.writePlain("Found %d applications matching %q:\n\n", len(matches), query)
	for i, app := range matches {
		r.printApplication(i+1, app)
	}

	return nil
}

func (r *Runner) printApplication(n int, app models.Application) {
	r.writePlain("%d. %s — %s\n", n, app.Company, app.Position)
	r.writePlain("   ID: %s\n", app.ID)
	r.writePlain("   Submitted: %s\n", app.DisplayDate())
	if app.Location != "" {
		r.writePlain("   Location: %s\n", app.Location)
	}
	if app.Notes != "" {
		r.writePlain("   Notes: %s\n", app.Notes)
	}
	if app.Rejected {
		r.writePlain("   Status: Rejected\n")
	} else {
		r.writePlain("   Status: Open\n")
	}
	r.writePlain("\n")
}
