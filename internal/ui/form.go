package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolette/jobtrack/internal/models"
)

// form field order
const (
	fieldCompany = iota
	fieldPosition
	fieldLocation
	fieldDate
	fieldNotes
	fieldCount
)

type formMode int

const (
	formAdd formMode = iota
	formEdit
)

// form is the add/edit sub-model built from [textinput.Model] fields.
type form struct {
	mode   formMode
	id     string
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newForm() form {
	labels := []string{"Company", "Position", "Location (optional)", "Submission date (YYYY-MM-DD)", "Notes (optional)"}

	inputs := make([]textinput.Model, fieldCount)
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		in.CharLimit = 120
		in.Width = 40
		inputs[i] = in
	}
	inputs[fieldCompany].Focus()

	return form{inputs: inputs}
}

// newAddForm creates an empty form with the submission date defaulting to today.
func newAddForm() form {
	f := newForm()
	f.mode = formAdd
	f.inputs[fieldDate].SetValue(time.Now().Format(models.DateFormat))
	return f
}

// newEditForm creates a form prefilled from an existing record.
func newEditForm(app models.Application) form {
	f := newForm()
	f.mode = formEdit
	f.id = app.ID
	f.inputs[fieldCompany].SetValue(app.Company)
	f.inputs[fieldPosition].SetValue(app.Position)
	f.inputs[fieldLocation].SetValue(app.Location)
	f.inputs[fieldDate].SetValue(app.SubmittedOn())
	f.inputs[fieldNotes].SetValue(app.Notes)
	return f
}

func (f form) title() string {
	if f.mode == formEdit {
		return "Edit application"
	}
	return "Add new application"
}

func (f *form) setFocus(i int) {
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f *form) next() { f.setFocus((f.focus + 1) % fieldCount) }
func (f *form) prev() { f.setFocus((f.focus + fieldCount - 1) % fieldCount) }

// onLastField reports whether enter should submit instead of advancing.
func (f form) onLastField() bool { return f.focus == fieldCount-1 }

func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f form) view() string {
	var b strings.Builder
	b.WriteString(styles.title.Render(f.title()))
	b.WriteString("\n\n")
	for _, in := range f.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.err.Render(f.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}

// date parses and validates the submission date field.
func (f form) date() (time.Time, error) {
	return models.ParseDate(f.inputs[fieldDate].Value())
}

func (f form) value(field int) string {
	return strings.TrimSpace(f.inputs[field].Value())
}

// application builds a new validated record from the form (add mode).
func (f form) application() (*models.Application, error) {
	submitted, err := f.date()
	if err != nil {
		return nil, err
	}
	return models.NewApplication(
		f.value(fieldCompany),
		f.value(fieldPosition),
		f.value(fieldLocation),
		f.value(fieldNotes),
		submitted,
	)
}
