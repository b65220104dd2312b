package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/revue/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	styles      *theme.Styles
	viewport    viewport.Model
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap, styles *theme.Styles) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys, styles),
		keys:     keys,
		styles:   styles,
		viewport: viewport.New(0, 0),
	}
}

func buildHelpContent(keys *KeyMap, s *theme.Styles) string {
	var b strings.Builder
	binding := func(kb KeyWithTip) {
		h := kb.Binding.Help()
		b.WriteString(s.HelpKey.Render(h.Key) + s.HelpDesc.Render(h.Desc) + "\n")
	}
	shortcut := func(k, desc string) {
		b.WriteString(s.HelpKey.Render(k) + s.HelpDesc.Render(desc) + "\n")
	}

	b.WriteString(s.HelpGroup.Render("Navigation") + "\n")
	binding(keys.Navigation.Up)
	binding(keys.Navigation.Down)
	binding(keys.Navigation.NextTab)
	binding(keys.Navigation.PRsTab)
	binding(keys.Navigation.BuildsTab)
	binding(keys.Navigation.Search)
	binding(keys.Navigation.ClearSearch)

	b.WriteString("\n" + s.HelpGroup.Render("Actions") + "\n")
	binding(keys.Actions.Open)
	binding(keys.Actions.CopyURL)
	binding(keys.Actions.OpenNotion)
	binding(keys.Actions.OpenArtifact)

	b.WriteString("\n" + s.HelpGroup.Render("Application") + "\n")
	binding(keys.Application.Refresh)
	binding(keys.Application.Settings)
	binding(keys.Application.ToggleTheme)
	binding(keys.Application.Help)
	binding(keys.Application.Quit)
	binding(keys.Application.ForceQuit)

	b.WriteString("\n" + s.HelpGroup.Render("Indicators (read-only)") + "\n")
	shortcut(s.Dot(s.Palette.Fresh)+" < 1d", "waiting less than a day")
	shortcut(s.Dot(s.Palette.Aging)+" 1-2d", "waiting one to two days")
	shortcut(s.Dot(s.Palette.Stale)+" > 2d", "waiting more than two days")
	shortcut("draft", "pull request is a draft")
	shortcut("+N -N", "lines added and deleted")

	return b.String()
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	footer := h.styles.Help.Render("Press esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
