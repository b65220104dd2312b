package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/revue/internal/domain"
)

// Styles are the rendered styles of one appearance.
// They are bound to a renderer so SSH sessions get their own color profile.
type Styles struct {
	Palette Palette

	// Header
	AppName     lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	Tagline     lipgloss.Style
	Updated     lipgloss.Style
	Version     lipgloss.Style
	DialogTitle lipgloss.Style

	// Lists
	Author        lipgloss.Style
	Badge         lipgloss.Style
	Empty         lipgloss.Style
	Link          lipgloss.Style
	Normal        lipgloss.Style
	Repo          lipgloss.Style
	SectionCount  lipgloss.Style
	SectionTitle  lipgloss.Style
	Selected      lipgloss.Style
	SelectedTitle lipgloss.Style

	// Diff stats
	Additions lipgloss.Style
	Deletions lipgloss.Style

	// Search, help and errors
	Banner      lipgloss.Style
	Error       lipgloss.Style
	HelpDesc    lipgloss.Style
	HelpGroup   lipgloss.Style
	HelpKey     lipgloss.Style
	Help        lipgloss.Style
	SearchHint  lipgloss.Style
	SearchLabel lipgloss.Style
	Spinner     lipgloss.Style
	TipKey      lipgloss.Style
	TipText     lipgloss.Style
}

// New builds the styles for an appearance. A nil renderer uses the default one.
func New(r *lipgloss.Renderer, darkMode bool) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := PaletteFor(darkMode)
	fg := func(c Color) lipgloss.Style { return r.NewStyle().Foreground(c) }

	return &Styles{
		Palette: p,

		AppName:     fg(p.Accent).Bold(true),
		Tab:         fg(p.Muted).Padding(0, 1),
		TabActive:   fg(p.Highlight).Background(p.Accent).Bold(true).Padding(0, 1),
		Tagline:     fg(p.Normal),
		Updated:     fg(p.Muted),
		Version:     fg(p.Version),
		DialogTitle: fg(p.Accent).Bold(true),

		Author:        fg(p.Muted),
		Badge:         fg(p.Subtle),
		Empty:         fg(p.Muted).Italic(true).PaddingLeft(4),
		Link:          fg(p.Accent).Underline(true),
		Normal:        fg(p.Normal),
		Repo:          fg(p.Subtle),
		SectionCount:  fg(p.Subtle),
		SectionTitle:  fg(p.Subtle).Bold(true).MarginTop(1),
		Selected:      fg(p.Highlight).Background(p.Selected),
		SelectedTitle: fg(p.Highlight).Bold(true),

		Additions: fg(p.Fresh),
		Deletions: fg(p.Stale),

		Banner:      fg(p.Stale).Bold(true),
		Error:       fg(p.Error).Bold(true),
		HelpDesc:    fg(p.Subtle),
		HelpGroup:   fg(p.Accent).Bold(true).MarginTop(1),
		HelpKey:     fg(p.Highlight).Bold(true).Width(25),
		Help:        fg(p.Muted).Padding(1, 0),
		SearchHint:  fg(p.Muted),
		SearchLabel: fg(p.Accent),
		Spinner:     fg(p.Accent),
		TipKey:      fg(p.Highlight).Bold(true),
		TipText:     fg(p.Subtle),
	}
}

// Dot renders a colored status dot
func (s *Styles) Dot(c Color) string {
	return s.Badge.Foreground(c).Render("●")
}

// AgeColor maps an age category to its color
func (s *Styles) AgeColor(age domain.AgeCategory) Color {
	switch age {
	case domain.AgeFresh:
		return s.Palette.Fresh
	case domain.AgeAging:
		return s.Palette.Aging
	default:
		return s.Palette.Stale
	}
}

// CIColor maps a CI status to its color
func (s *Styles) CIColor(status domain.CIStatus) Color {
	switch status {
	case domain.CISuccess:
		return s.Palette.Fresh
	case domain.CIFailure:
		return s.Palette.Stale
	case domain.CIPending:
		return s.Palette.Aging
	default:
		return s.Palette.Muted
	}
}

// BuildColor maps a build status to its color
func (s *Styles) BuildColor(status domain.BuildStatus) Color {
	switch status {
	case domain.BuildFinished:
		return s.Palette.Fresh
	case domain.BuildErrored:
		return s.Palette.Stale
	case domain.BuildInProgress, domain.BuildInQueue, domain.BuildNew:
		return s.Palette.Aging
	default:
		return s.Palette.Muted
	}
}
