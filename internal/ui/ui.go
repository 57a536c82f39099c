package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolette/jobtrack/internal/models"
	"github.com/avolette/jobtrack/internal/session"
	"github.com/avolette/jobtrack/internal/table"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ListView ViewState = iota
	DetailView
	FormView
	ConfirmDeleteView
	SavingView
)

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	sess         *session.Session
	width        int
	height       int
	appList      list.Model
	listReady    bool
	form         form
	selectedID   string
	showRejected bool
	status       string
	statusErr    bool
	err          error
	help         help.Model
	keys         keyMap
}

type snapshotLoadedMsg struct {
	err error
}

type saveDoneMsg struct {
	err error
}

// NewModel creates a new TUI model over a session.
func NewModel(ctx context.Context, sess *session.Session) *Model {
	return &Model{
		ctx:          ctx,
		view:         ListView,
		sess:         sess,
		showRejected: true,
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Err returns the fatal error the TUI exited with, if any.
func (m *Model) Err() error {
	return m.err
}

// Init initializes the TUI by loading the remote dataset.
func (m *Model) Init() tea.Cmd {
	return m.loadSnapshot()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.listReady {
			m.appList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ListView:
			return m.handleListKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case FormView:
			return m.handleFormKeys(msg)
		case ConfirmDeleteView:
			return m.handleConfirmKeys(msg)
		}

	case snapshotLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.view = ListView
		m.appList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
		m.appList.Title = "Job Applications"
		m.appList.SetSize(m.width-4, m.height-8)
		m.listReady = true
		m.refreshItems()
		m.setStatus(fmt.Sprintf("loaded %d applications", m.sess.Table().Len()), false)
		return m, nil

	case saveDoneMsg:
		m.refreshItems()
		m.view = ListView
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("save failed: %v (press s to retry)", msg.err), true)
			return m, nil
		}
		m.setStatus("saved", false)
		return m, nil
	}

	return m.updateList(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}
	if !m.listReady {
		return "Loading applications..."
	}

	switch m.view {
	case ListView:
		return m.renderList()
	case DetailView:
		return m.renderDetail()
	case FormView:
		return m.renderForm()
	case ConfirmDeleteView:
		return m.renderConfirm()
	case SavingView:
		return styles.title.Render("Saving changes...")
	default:
		return ""
	}
}

// saving switches to [SavingView] while a store call is in flight, so no
// second mutation can start before the commit resolves.
func (m *Model) saving(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.view = SavingView
	return m, cmd
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// while the list filter is active, every keystroke belongs to it
	if m.appList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.appList, cmd = m.appList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.enter):
		if id, ok := m.selectedItemID(); ok {
			m.selectedID = id
			m.view = DetailView
		}
		return m, nil
	case key.Matches(msg, m.keys.add):
		m.form = newAddForm()
		m.view = FormView
		return m, nil
	case key.Matches(msg, m.keys.edit):
		if id, ok := m.selectedItemID(); ok {
			if app, found := m.sess.Table().Get(id); found {
				m.form = newEditForm(app)
				m.view = FormView
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.reject):
		if id, ok := m.selectedItemID(); ok {
			return m.saving(m.toggleRejected(id))
		}
		return m, nil
	case key.Matches(msg, m.keys.delete):
		if id, ok := m.selectedItemID(); ok {
			m.selectedID = id
			m.view = ConfirmDeleteView
		}
		return m, nil
	case key.Matches(msg, m.keys.hide):
		m.showRejected = !m.showRejected
		m.refreshItems()
		return m, nil
	case key.Matches(msg, m.keys.save):
		if m.sess.Dirty() {
			return m.saving(m.retrySave())
		}
		m.setStatus("nothing to save", false)
		return m, nil
	case key.Matches(msg, m.keys.reload):
		return m.saving(m.loadSnapshot())
	}

	var cmd tea.Cmd
	m.appList, cmd = m.appList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = ListView
		return m, nil
	case key.Matches(msg, m.keys.edit):
		if app, found := m.sess.Table().Get(m.selectedID); found {
			m.form = newEditForm(app)
			m.view = FormView
		}
		return m, nil
	case key.Matches(msg, m.keys.reject):
		return m.saving(m.toggleRejected(m.selectedID))
	case key.Matches(msg, m.keys.delete):
		m.view = ConfirmDeleteView
		return m, nil
	}
	return m, nil
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = ListView
		return m, nil
	case "tab", "down":
		m.form.next()
		return m, nil
	case "shift+tab", "up":
		m.form.prev()
		return m, nil
	case "enter":
		if !m.form.onLastField() {
			m.form.next()
			return m, nil
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit), key.Matches(msg, m.keys.no), key.Matches(msg, m.keys.back):
		m.view = ListView
		return m, nil
	case key.Matches(msg, m.keys.yes):
		return m.saving(m.deleteApplication(m.selectedID))
	}
	return m, nil
}

// submitForm validates the form and dispatches the add or update command.
// Validation problems stay inline in the form instead of leaving the view.
func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	if m.form.mode == formEdit {
		submitted, err := m.form.date()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		company := m.form.value(fieldCompany)
		position := m.form.value(fieldPosition)
		location := m.form.value(fieldLocation)
		notes := m.form.value(fieldNotes)
		fields := table.Fields{
			Company:        &company,
			Position:       &position,
			Location:       &location,
			Notes:          &notes,
			SubmissionDate: &submitted,
		}
		return m.saving(m.updateApplication(m.form.id, fields))
	}

	app, err := m.form.application()
	if err != nil {
		m.form.errMsg = err.Error()
		return m, nil
	}
	return m.saving(m.addApplication(*app))
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.view != ListView || !m.listReady {
		return m, nil
	}
	var cmd tea.Cmd
	m.appList, cmd = m.appList.Update(msg)
	return m, cmd
}

func (m *Model) selectedItemID() (string, bool) {
	selected := m.appList.SelectedItem()
	if selected == nil {
		return "", false
	}
	item, ok := selected.(applicationItem)
	if !ok {
		return "", false
	}
	return item.app.ID, true
}

// refreshItems repopulates the list from the working copy, honoring the
// rejected filter.
func (m *Model) refreshItems() {
	if !m.listReady {
		return
	}
	items := []list.Item{}
	for app := range m.sess.Table().Visible(m.showRejected) {
		items = append(items, applicationItem{app: app})
	}
	m.appList.SetItems(items)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) loadSnapshot() tea.Cmd {
	return func() tea.Msg {
		return snapshotLoadedMsg{err: m.sess.Load(m.ctx)}
	}
}

func (m *Model) addApplication(app models.Application) tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{err: m.sess.Add(m.ctx, app)}
	}
}

func (m *Model) updateApplication(id string, fields table.Fields) tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{err: m.sess.Update(m.ctx, id, fields)}
	}
}

func (m *Model) deleteApplication(id string) tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{err: m.sess.Delete(m.ctx, id)}
	}
}

func (m *Model) toggleRejected(id string) tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{err: m.sess.ToggleRejected(m.ctx, id)}
	}
}

func (m *Model) retrySave() tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{err: m.sess.Save(m.ctx, "chore: sync dataset")}
	}
}

func (m *Model) renderList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.add, m.keys.hide, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", m.appList.View(), m.renderStatus(), helpView)
}

func (m *Model) renderDetail() string {
	app, found := m.sess.Table().Get(m.selectedID)
	if !found {
		return styles.err.Render("Application no longer exists\n\nPress esc to go back")
	}

	title := styles.title.Render(fmt.Sprintf("%s — %s", app.Company, app.Position))
	state := "open"
	if app.Rejected {
		state = styles.warn.Render("rejected")
	}
	info := fmt.Sprintf(
		"\nSubmitted: %s\nLocation: %s\nStatus: %s\nNotes: %s\n",
		app.DisplayDate(), app.Location, state, app.Notes,
	)

	helpKeys := []key.Binding{m.keys.edit, m.keys.reject, m.keys.delete, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderForm() string {
	hint := styles.help.Render("tab: next field • enter: submit • esc: cancel")
	return fmt.Sprintf("%s\n%s", m.form.view(), hint)
}

func (m *Model) renderConfirm() string {
	app, found := m.sess.Table().Get(m.selectedID)
	if !found {
		return styles.err.Render("Application no longer exists\n\nPress esc to go back")
	}

	title := styles.title.Render(fmt.Sprintf("Delete application at '%s'?", app.Company))
	helpKeys := []key.Binding{m.keys.yes, m.keys.no}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n\n%s", title, helpView)
}

func (m *Model) renderStatus() string {
	status := m.status
	if m.statusErr {
		status = styles.err.Render(status)
	} else if status != "" {
		status = styles.ok.Render(status)
	}
	if m.sess.Dirty() {
		status = fmt.Sprintf("%s %s", styles.warn.Render("[unsaved changes]"), status)
	}
	return status
}
