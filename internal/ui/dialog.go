package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/revue/internal/theme"
)

// Dialog wraps any tea.Model content and prepends a header with a title.
//
// Usage:
//
//	form := NewSettingsForm(...)
//	dialog := NewDialog("Settings", form, styles, devMode)
//	dialog.Update(msg)
//	if f, ok := dialog.Content().(*SettingsForm); ok && f.Completed { ... }
type Dialog struct {
	content tea.Model
	devMode bool
	styles  *theme.Styles
	title   string
}

// NewDialog creates a new dialog wrapper
func NewDialog(title string, content tea.Model, styles *theme.Styles, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		styles:  styles,
		title:   title,
	}
}

// Init delegates to the wrapped content
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to the wrapped content and returns the dialog itself
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := d.content.Update(msg)
	d.content = updated
	return d, cmd
}

// View prepends the dialog header to the content view
func (d *Dialog) View() string {
	return renderDialogHeader(d.styles, d.devMode, d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion
func (d *Dialog) Content() tea.Model {
	return d.content
}
