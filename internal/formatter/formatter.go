// package formatter provides functions to export application data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avolette/jobtrack/internal/models"
	"github.com/avolette/jobtrack/internal/store"
)

// ExportToCSV converts applications to the same CSV layout the remote dataset uses.
func ExportToCSV(apps []models.Application) ([]byte, error) {
	data, err := store.EncodeCSV(apps)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}
	return data, nil
}

// ExportToMarkdown converts applications to a Markdown summary table.
func ExportToMarkdown(apps []models.Application, title string) ([]byte, error) {
	var buf bytes.Buffer

	if title == "" {
		title = "Job Applications"
	}

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Applications**: %d\n", len(apps)))
	buf.WriteString(fmt.Sprintf("**Open**: %d\n\n", countOpen(apps)))

	buf.WriteString("| Company | Position | Location | Submitted | Status | Notes |\n")
	buf.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, app := range apps {
		buf.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
			app.Company,
			app.Position,
			app.Location,
			app.SubmittedOn(),
			statusString(app.Rejected),
			app.Notes,
		))
	}

	return buf.Bytes(), nil
}

// ExportToText converts applications to plain text format
func ExportToText(apps []models.Application) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Applications: %d (%d open)\n\n", len(apps), countOpen(apps)))

	for i, app := range apps {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, app.Company, app.Position))
		buf.WriteString(fmt.Sprintf("   Submitted: %s\n", app.DisplayDate()))
		if app.Location != "" {
			buf.WriteString(fmt.Sprintf("   Location: %s\n", app.Location))
		}
		if app.Notes != "" {
			buf.WriteString(fmt.Sprintf("   Notes: %s\n", app.Notes))
		}
		buf.WriteString(fmt.Sprintf("   Status: %s\n", statusString(app.Rejected)))
	}

	return buf.Bytes(), nil
}

// ExportResult contains the path of the file created by WriteExport.
type ExportResult struct {
	File   string
	Format string
}

// WriteExport renders applications in the requested format and writes them to path.
//
// Supported formats are "csv", "markdown" (or "md") and "text" (or "txt").
// An empty path defaults to applications.<ext> in the working directory.
func WriteExport(apps []models.Application, format, path string) (*ExportResult, error) {
	var data []byte
	var ext string
	var err error

	switch format {
	case "csv":
		data, err = ExportToCSV(apps)
		ext = "csv"
	case "markdown", "md":
		data, err = ExportToMarkdown(apps, "")
		ext = "md"
	case "text", "txt":
		data, err = ExportToText(apps)
		ext = "txt"
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = "applications." + ext
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write export file: %w", err)
	}

	return &ExportResult{File: path, Format: format}, nil
}

func countOpen(apps []models.Application) int {
	open := 0
	for _, app := range apps {
		if !app.Rejected {
			open++
		}
	}
	return open
}

func statusString(rejected bool) string {
	if rejected {
		return "Rejected"
	}
	return "Open"
}
