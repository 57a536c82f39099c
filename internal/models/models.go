// package models defines the data model for the job application tracker
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/avolette/jobtrack/internal/shared"
)

// DateFormat is the fixed, unambiguous format submission dates are stored in.
const DateFormat = "2006-01-02"

// displayFormat is how submission dates are rendered in listings and detail views.
const displayFormat = "02 Jan 2006"

// Application represents one job-application record.
//
// The ID is generated at creation time and never changes afterwards.
type Application struct {
	ID             string    `json:"id"`
	Company        string    `json:"company"`
	Position       string    `json:"position"`
	Location       string    `json:"location,omitempty"`
	SubmissionDate time.Time `json:"submission_date"`
	Notes          string    `json:"notes,omitempty"`
	Rejected       bool      `json:"rejected"`
}

// NewApplication creates a validated Application with a freshly generated identifier.
func NewApplication(company, position, location, notes string, submitted time.Time) (*Application, error) {
	app := &Application{
		ID:             shared.GenerateID(),
		Company:        strings.TrimSpace(company),
		Position:       strings.TrimSpace(position),
		Location:       strings.TrimSpace(location),
		SubmissionDate: submitted,
		Notes:          strings.TrimSpace(notes),
	}

	if err := app.Validate(); err != nil {
		return nil, err
	}
	return app, nil
}

// Validate checks the record invariants: non-empty id, company and position,
// and a usable submission date.
func (a *Application) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("%w: id is required", shared.ErrValidation)
	}
	if strings.TrimSpace(a.Company) == "" {
		return fmt.Errorf("%w: company is required", shared.ErrValidation)
	}
	if strings.TrimSpace(a.Position) == "" {
		return fmt.Errorf("%w: position is required", shared.ErrValidation)
	}
	if a.SubmissionDate.IsZero() {
		return fmt.Errorf("%w: submission date is required", shared.ErrValidation)
	}
	return nil
}

// MatchesCompany reports whether the company name contains substr, ignoring case.
func (a *Application) MatchesCompany(substr string) bool {
	return strings.Contains(strings.ToLower(a.Company), strings.ToLower(substr))
}

// SubmittedOn returns the submission date in the storage format (YYYY-MM-DD).
func (a *Application) SubmittedOn() string {
	return a.SubmissionDate.Format(DateFormat)
}

// DisplayDate returns the submission date formatted for human-facing output.
func (a *Application) DisplayDate() string {
	return a.SubmissionDate.Format(displayFormat)
}

// ParseDate parses a date in the storage format, wrapping failures as validation errors.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q (want YYYY-MM-DD)", shared.ErrValidation, value)
	}
	return t, nil
}
