// package table holds the in-memory working copy of the dataset
//
// Operations are synchronous and single-threaded; they mutate only the
// loaded copy. Durability requires an explicit commit through the store
// client, so a failed save leaves the table changed but unpersisted.
package table

import (
	"fmt"
	"iter"
	"sort"
	"time"

	"github.com/avolette/jobtrack/internal/models"
	"github.com/avolette/jobtrack/internal/shared"
)

// Table is a mutable ordered collection of job applications indexed by id.
type Table struct {
	rows  []models.Application
	index map[string]int
}

// New creates an empty Table.
func New() *Table {
	return &Table{index: make(map[string]int)}
}

// Load builds a Table from an ordered record sequence.
// Fails when two rows share an id.
func Load(rows []models.Application) (*Table, error) {
	t := &Table{
		rows:  make([]models.Application, len(rows)),
		index: make(map[string]int, len(rows)),
	}
	copy(t.rows, rows)

	for i, app := range t.rows {
		if _, ok := t.index[app.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate id %q", shared.ErrValidation, app.ID)
		}
		t.index[app.ID] = i
	}

	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the ordered record sequence.
func (t *Table) Rows() []models.Application {
	out := make([]models.Application, len(t.rows))
	copy(out, t.rows)
	return out
}

// Get retrieves a record by id.
func (t *Table) Get(id string) (models.Application, bool) {
	i, ok := t.index[id]
	if !ok {
		return models.Application{}, false
	}
	return t.rows[i], true
}

// Add appends a validated record.
// Fails when the id is already present.
func (t *Table) Add(app models.Application) error {
	if err := app.Validate(); err != nil {
		return err
	}
	if _, ok := t.index[app.ID]; ok {
		return fmt.Errorf("%w: duplicate id %q", shared.ErrValidation, app.ID)
	}

	t.index[app.ID] = len(t.rows)
	t.rows = append(t.rows, app)
	return nil
}

// Fields carries the optional field updates for [Table.Update].
// Nil members leave the current value untouched; the id is immutable.
type Fields struct {
	Company        *string
	Position       *string
	Location       *string
	Notes          *string
	SubmissionDate *time.Time
}

// Update applies fields to the record with the given id.
// Fails with shared.ErrNotFound when the id is absent; an update that would
// break the record invariants is rejected and leaves the row unchanged.
func (t *Table) Update(id string, fields Fields) error {
	i, ok := t.index[id]
	if !ok {
		return fmt.Errorf("%w: no record with id %q", shared.ErrNotFound, id)
	}

	updated := t.rows[i]
	if fields.Company != nil {
		updated.Company = *fields.Company
	}
	if fields.Position != nil {
		updated.Position = *fields.Position
	}
	if fields.Location != nil {
		updated.Location = *fields.Location
	}
	if fields.Notes != nil {
		updated.Notes = *fields.Notes
	}
	if fields.SubmissionDate != nil {
		updated.SubmissionDate = *fields.SubmissionDate
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	t.rows[i] = updated
	return nil
}

// Delete removes the record with the given id.
// Fails with shared.ErrNotFound when the id is absent.
func (t *Table) Delete(id string) error {
	i, ok := t.index[id]
	if !ok {
		return fmt.Errorf("%w: no record with id %q", shared.ErrNotFound, id)
	}

	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	delete(t.index, id)
	for j := i; j < len(t.rows); j++ {
		t.index[t.rows[j].ID] = j
	}
	return nil
}

// ToggleRejected flips the rejected flag on the record with the given id.
func (t *Table) ToggleRejected(id string) error {
	i, ok := t.index[id]
	if !ok {
		return fmt.Errorf("%w: no record with id %q", shared.ErrNotFound, id)
	}

	t.rows[i].Rejected = !t.rows[i].Rejected
	return nil
}

// Search yields rows whose company contains substr, ignoring case.
// The sequence is lazy and can be ranged over repeatedly.
func (t *Table) Search(substr string) iter.Seq[models.Application] {
	return func(yield func(models.Application) bool) {
		for _, app := range t.rows {
			if app.MatchesCompany(substr) && !yield(app) {
				return
			}
		}
	}
}

// Visible yields the rows shown under the rejected-row filter:
// all rows when showRejected is true, otherwise only active ones.
func (t *Table) Visible(showRejected bool) iter.Seq[models.Application] {
	return func(yield func(models.Application) bool) {
		for _, app := range t.rows {
			if !showRejected && app.Rejected {
				continue
			}
			if !yield(app) {
				return
			}
		}
	}
}

// SortByDate orders rows newest submission first, keeping the relative
// order of rows submitted on the same day.
func (t *Table) SortByDate() {
	sort.SliceStable(t.rows, func(i, j int) bool {
		return t.rows[i].SubmissionDate.After(t.rows[j].SubmissionDate)
	})
	for i, app := range t.rows {
		t.index[app.ID] = i
	}
}
