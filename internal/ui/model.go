package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/revue/internal/config"
	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ports"
	"github.com/renato0307/revue/internal/services"
	"github.com/renato0307/revue/internal/theme"
)

type uiState int

const (
	stateDashboard uiState = iota
	stateHelp
	stateSearching
	stateSettings
)

// ModelConfig holds the dependencies of one dashboard UI
type ModelConfig struct {
	Clipboard       ports.Clipboard
	Clock           ports.Clock
	Dashboard       *services.Dashboard
	DevMode         bool
	ErrorClearDelay time.Duration
	Keys            config.KeyBindingsConfig
	Opener          ports.URLOpener // nil when no browser is reachable
	Renderer        *lipgloss.Renderer
	Settings        *services.SettingsService
	Verifier        *services.CredentialVerifier
}

// Model is the dashboard UI. One Model owns one Dashboard.
type Model struct {
	builds       domain.QueueState[[]domain.BuildGroup]
	cfg          ModelConfig
	changes      chan struct{}
	closeOnce    sync.Once
	done         chan struct{}
	errorManager *ErrorManager
	help         help.Model
	helpScreen   *Dialog
	height       int
	keys         KeyMap
	loadErr      error
	notice       string
	pane         listPane
	prs          domain.QueueState[domain.PRQueue]
	query        string
	search       textinput.Model
	settings     domain.Settings
	settingsForm *Dialog
	spinner      spinner.Model
	state        uiState
	styles       *theme.Styles
	tipIndex     int
	unsubscribe  []func()
	width        int
}

// NewModel creates the dashboard UI and loads the stored settings
func NewModel(cfg ModelConfig) *Model {
	settings, err := cfg.Settings.Load(context.Background())
	if err != nil {
		logging.Logger.Warn("Failed to load settings", "error", err)
	}

	styles := theme.New(cfg.Renderer, settings.DarkMode)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "title, repository or author"
	search.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		cfg:          cfg,
		changes:      make(chan struct{}, 1),
		done:         make(chan struct{}),
		errorManager: NewErrorManager(cfg.ErrorClearDelay),
		help:         help.New(),
		keys:         NewKeyMap(cfg.Keys),
		loadErr:      err,
		pane:         newListPane(),
		search:       search,
		settings:     settings,
		spinner:      sp,
		state:        stateDashboard,
		styles:       styles,
	}
}

// Init subscribes to the pollers and starts them
func (m *Model) Init() tea.Cmd {
	notify := func() {
		select {
		case m.changes <- struct{}{}:
		default:
		}
	}
	m.unsubscribe = []func(){
		m.cfg.Dashboard.PRs.Subscribe(func(domain.QueueState[domain.PRQueue]) { notify() }),
		m.cfg.Dashboard.Builds.Subscribe(func(domain.QueueState[[]domain.BuildGroup]) { notify() }),
	}
	m.cfg.Dashboard.Apply(m.settings)

	cmds := []tea.Cmd{
		waitForChange(m.changes, m.done),
		m.spinner.Tick,
		clockTick(),
	}
	if m.loadErr != nil {
		cmds = append(cmds, m.errorManager.SetError(m.loadErr))
	}
	if !m.settings.IsConfigured() {
		cmds = append(cmds, m.openSettings())
	}
	return tea.Batch(cmds...)
}

// Close stops the pollers. Safe to call more than once.
func (m *Model) Close() {
	m.closeOnce.Do(func() {
		for _, unsubscribe := range m.unsubscribe {
			unsubscribe()
		}
		m.cfg.Dashboard.Stop()
		close(m.done)
	})
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Messages handled regardless of state
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(msg.Width-4, 10)
	case dashboardChangedMsg:
		m.syncSnapshots()
		return m, waitForChange(m.changes, m.done)
	case clockTickMsg:
		m.tipIndex++
		return m, clockTick()
	case clearErrorMsg:
		m.errorManager.HandleClear(msg)
		return m, nil
	case actionDoneMsg:
		if msg.err != nil {
			logging.Logger.Warn("Action failed", "error", msg.err)
			return m, m.errorManager.SetError(msg.err)
		}
		m.notice = msg.notice
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.state {
	case stateHelp:
		return m.updateHelp(msg)
	case stateSearching:
		return m.updateSearching(msg)
	case stateSettings:
		return m.updateSettings(msg)
	default:
		return m.updateDashboard(msg)
	}
}

func (m *Model) syncSnapshots() {
	m.prs = m.cfg.Dashboard.PRs.Snapshot()
	m.builds = m.cfg.Dashboard.Builds.Snapshot()
	m.pane.Clamp(m.itemCount())
}

func (m *Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.notice = ""

	nav := m.keys.Navigation
	app := m.keys.Application
	actions := m.keys.Actions

	switch {
	case key.Matches(keyMsg, app.ForceQuit.Binding, app.Quit.Binding):
		m.Close()
		return m, tea.Quit

	case key.Matches(keyMsg, app.Help.Binding):
		return m, m.openHelp()

	case key.Matches(keyMsg, app.Settings.Binding):
		return m, m.openSettings()

	case key.Matches(keyMsg, app.ToggleTheme.Binding):
		settings, err := m.cfg.Settings.ToggleDarkMode(context.Background(), m.settings)
		m.settings = settings
		m.styles = theme.New(m.cfg.Renderer, settings.DarkMode)
		if err != nil {
			return m, m.errorManager.SetError(err)
		}
		return m, nil

	case key.Matches(keyMsg, app.Refresh.Binding):
		m.cfg.Dashboard.Refresh(m.activeTab())
		return m, nil

	case key.Matches(keyMsg, nav.Up.Binding):
		m.pane.MoveUp()
		return m, nil

	case key.Matches(keyMsg, nav.Down.Binding):
		m.pane.MoveDown(m.itemCount())
		return m, nil

	case key.Matches(keyMsg, nav.NextTab.Binding):
		if m.activeTab() == domain.TabPRs {
			return m, m.switchTab(domain.TabBuilds)
		}
		return m, m.switchTab(domain.TabPRs)

	case key.Matches(keyMsg, nav.PRsTab.Binding):
		return m, m.switchTab(domain.TabPRs)

	case key.Matches(keyMsg, nav.BuildsTab.Binding):
		return m, m.switchTab(domain.TabBuilds)

	case key.Matches(keyMsg, nav.Search.Binding):
		if m.activeTab() != domain.TabPRs {
			return m, nil
		}
		m.state = stateSearching
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(keyMsg, nav.ClearSearch.Binding):
		m.setQuery("")
		return m, nil

	case key.Matches(keyMsg, actions.Open.Binding):
		if url := m.selectedURL(); url != "" {
			return m, m.openURL(url)
		}

	case key.Matches(keyMsg, actions.CopyURL.Binding):
		if pr, ok := m.selectedPR(); ok && m.settings.ShowCopyButton {
			return m, m.copyURL(pr.HTMLURL)
		}

	case key.Matches(keyMsg, actions.OpenNotion.Binding):
		if pr, ok := m.selectedPR(); ok && m.settings.ShowNotionLink && pr.NotionLink != nil {
			return m, m.openURL(pr.NotionLink.URL)
		}

	case key.Matches(keyMsg, actions.OpenArtifact.Binding):
		if b, ok := m.selectedBuild(); ok && b.ArtifactURL() != "" {
			return m, m.openURL(b.ArtifactURL())
		}
	}

	return m, nil
}

func (m *Model) updateSearching(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.Close()
			return m, tea.Quit
		case "esc":
			m.search.Blur()
			m.setQuery("")
			m.state = stateDashboard
			return m, nil
		case "enter":
			m.search.Blur()
			m.state = stateDashboard
			return m, nil
		case "up", "down":
			m.search.Blur()
			m.state = stateDashboard
			return m.updateDashboard(msg)
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.setQuery(m.search.Value())
	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.helpScreen.Update(msg)
	if screen, ok := m.helpScreen.Content().(*HelpScreen); ok && screen.Completed {
		m.helpScreen = nil
		m.state = stateDashboard
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.settingsForm.Update(msg)

	form, ok := m.settingsForm.Content().(*SettingsForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	m.settingsForm = nil
	m.state = stateDashboard

	result := form.Result()
	if result.Cancelled {
		logging.Logger.Debug("Settings dialog cancelled")
		return m, nil
	}

	m.settings = result.Settings
	m.styles = theme.New(m.cfg.Renderer, m.settings.DarkMode)
	m.cfg.Dashboard.Apply(m.settings)
	m.notice = "Settings saved"
	return m, nil
}

func (m *Model) openHelp() tea.Cmd {
	m.helpScreen = NewDialog("Keyboard shortcuts", NewHelpScreen(&m.keys, m.styles), m.styles, m.cfg.DevMode)
	m.state = stateHelp
	cmd := m.helpScreen.Init()
	m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return cmd
}

func (m *Model) openSettings() tea.Cmd {
	form := NewSettingsForm(m.cfg.Settings, m.cfg.Verifier, m.styles, m.settings)
	m.settingsForm = NewDialog("Settings", form, m.styles, m.cfg.DevMode)
	m.state = stateSettings
	return m.settingsForm.Init()
}

// activeTab is the tab shown; builds fall back to pull requests until Expo is configured
func (m *Model) activeTab() domain.Tab {
	if m.settings.ActiveTab == domain.TabBuilds && m.settings.IsExpoConfigured() {
		return domain.TabBuilds
	}
	return domain.TabPRs
}

func (m *Model) switchTab(tab domain.Tab) tea.Cmd {
	if tab == domain.TabBuilds && !m.settings.IsExpoConfigured() {
		m.notice = expoNotConfigured
		return nil
	}
	if tab == m.activeTab() {
		return nil
	}

	settings, err := m.cfg.Settings.SetActiveTab(context.Background(), m.settings, tab)
	m.settings = settings
	m.pane.Reset()
	m.cfg.Dashboard.Apply(m.settings)
	m.syncSnapshots()

	if err != nil {
		return m.errorManager.SetError(err)
	}
	return nil
}

func (m *Model) setQuery(query string) {
	if query == m.query {
		return
	}
	m.query = query
	m.pane.Reset()
}

func (m *Model) prView() services.PRView {
	return services.BuildPRView(m.prs.Items, m.query)
}

func (m *Model) itemCount() int {
	if m.activeTab() == domain.TabBuilds {
		return len(buildItems(m.builds.Items))
	}
	return len(prItems(m.prView()))
}

func (m *Model) selectedPR() (domain.ReviewRequest, bool) {
	if m.activeTab() != domain.TabPRs {
		return domain.ReviewRequest{}, false
	}
	items := prItems(m.prView())
	if m.pane.cursor < 0 || m.pane.cursor >= len(items) {
		return domain.ReviewRequest{}, false
	}
	return items[m.pane.cursor], true
}

func (m *Model) selectedBuild() (domain.Build, bool) {
	if m.activeTab() != domain.TabBuilds {
		return domain.Build{}, false
	}
	items := buildItems(m.builds.Items)
	if m.pane.cursor < 0 || m.pane.cursor >= len(items) {
		return domain.Build{}, false
	}
	return items[m.pane.cursor], true
}

// selectedURL is the pull request page or the expo.dev page of the selected build
func (m *Model) selectedURL() string {
	if pr, ok := m.selectedPR(); ok {
		return pr.HTMLURL
	}
	if b, ok := m.selectedBuild(); ok {
		account, project := services.SplitProjectSlug(m.settings.ExpoProjectSlug)
		return services.BuildDetailsURL(account, project, b.ID)
	}
	return ""
}

func (m *Model) openURL(url string) tea.Cmd {
	opener := m.cfg.Opener
	return func() tea.Msg {
		if opener == nil {
			return actionDoneMsg{err: errOpenUnavailable}
		}
		if err := opener.Open(url); err != nil {
			return actionDoneMsg{err: fmt.Errorf("failed to open %s: %w", url, err)}
		}
		return actionDoneMsg{notice: "Opened " + url}
	}
}

func (m *Model) copyURL(url string) tea.Cmd {
	clipboard := m.cfg.Clipboard
	return func() tea.Msg {
		if err := clipboard.Copy(url); err != nil {
			return actionDoneMsg{err: fmt.Errorf("failed to copy link: %w", err)}
		}
		return actionDoneMsg{notice: "Copied " + url}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		return m.helpScreen.View()
	case stateSettings:
		return m.settingsForm.View()
	}

	header := m.renderHeader()
	top := []string{header, ""}

	if m.activeTab() == domain.TabPRs {
		top = append(top, m.renderSearchBar(), "")
	}
	if banner := m.renderBanner(); banner != "" {
		top = append(top, banner, "")
	}

	bottom := m.renderBottomBar()
	used := lipgloss.Height(strings.Join(top, "\n")) + lipgloss.Height(bottom) + 1
	m.pane.SetSize(m.width, m.height-used)

	var blocks []listBlock
	if m.activeTab() == domain.TabBuilds {
		blocks = renderBuildList(m.styles, m.builds.Items, m.cfg.Clock.Now(), m.pane.cursor)
	} else {
		blocks = renderPRList(m.styles, m.prView(), m.settings, m.cfg.Clock.Now(), m.width, m.pane.cursor)
	}

	return strings.Join(top, "\n") + "\n" + m.pane.Render(blocks) + "\n" + bottom
}

func (m *Model) renderHeader() string {
	s := m.styles
	left := renderAppName(s, m.cfg.DevMode) + "  "

	tab := func(t domain.Tab, label string) string {
		if m.activeTab() == t {
			return s.TabActive.Render(label)
		}
		return s.Tab.Render(label)
	}
	left += tab(domain.TabPRs, "Pull requests")
	if m.settings.IsExpoConfigured() {
		left += tab(domain.TabBuilds, "Builds")
	}

	loading, updated := m.prs.IsLoading, m.prs.LastUpdated
	if m.activeTab() == domain.TabBuilds {
		loading, updated = m.builds.IsLoading, m.builds.LastUpdated
	}

	var right string
	switch {
	case loading:
		right = s.Spinner.Render(m.spinner.View()) + s.Updated.Render(" refreshing")
	case !updated.IsZero():
		right = s.Updated.Render("updated " + formatRelativeTime(updated, m.cfg.Clock.Now()))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderSearchBar() string {
	if m.state == stateSearching {
		return m.search.View()
	}
	if m.query != "" {
		return m.styles.SearchLabel.Render("/ "+m.query) +
			m.styles.SearchHint.Render(fmt.Sprintf("  (%s to clear)", m.keys.Navigation.ClearSearch.Binding.Help().Key))
	}

	view := m.prView()
	return m.styles.SearchHint.Render(fmt.Sprintf("%s Search %d pull requests",
		m.keys.Navigation.Search.Binding.Help().Key, view.TotalReviews+view.TotalMyPRs))
}

func (m *Model) renderBanner() string {
	if m.activeTab() == domain.TabBuilds {
		if m.builds.HasError() {
			return m.styles.Banner.Render("⚠ " + m.builds.Error)
		}
		return ""
	}

	if !m.settings.IsConfigured() {
		return m.styles.Banner.Render(fmt.Sprintf("Press %s to add your GitHub token",
			m.keys.Application.Settings.Binding.Help().Key))
	}
	if m.prs.HasError() {
		return m.styles.Banner.Render("⚠ " + m.prs.Error)
	}
	return ""
}

func (m *Model) renderBottomBar() string {
	if err := m.errorManager.GetError(); err != nil {
		return m.styles.Error.Render(formatErrorForDisplay(err, m.width))
	}
	if m.notice != "" {
		return m.styles.TipText.Render(m.notice)
	}

	bar := m.help.ShortHelpView(m.keys.ShortHelp())
	if tips := m.keys.Tips(); len(tips) > 0 {
		bar = RenderTip(m.styles, tips[m.tipIndex%len(tips)]) + "\n" + bar
	}
	return bar
}
