package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/avolette/jobtrack/internal/models"
)

var _ list.Item = applicationItem{}

// applicationItem wraps [models.Application] to implement [list.Item].
type applicationItem struct {
	app models.Application
}

func (i applicationItem) FilterValue() string { return i.app.Company }
func (i applicationItem) Title() string {
	title := fmt.Sprintf("%s — %s", i.app.Company, i.app.Position)
	if i.app.Rejected {
		title = fmt.Sprintf("%s ✗", title)
	}
	return title
}

func (i applicationItem) Description() string {
	desc := i.app.DisplayDate()
	if i.app.Location != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.app.Location)
	}
	if i.app.Rejected {
		desc = fmt.Sprintf("%s • rejected", desc)
	}
	return desc
}
