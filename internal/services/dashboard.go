package services

import (
	"time"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ports"
)

type (
	PRPoller    = Poller[domain.GitHubCredentials, domain.PRQueue]
	BuildPoller = Poller[domain.ExpoCredentials, []domain.BuildGroup]
)

// Dashboard owns the pull request and build pollers of one UI instance
type Dashboard struct {
	Builds *BuildPoller
	PRs    *PRPoller
}

// NewDashboard creates idle pollers backed by the given services
func NewDashboard(prService *PRService, buildService *BuildService, clock ports.Clock) *Dashboard {
	return &Dashboard{
		Builds: NewPoller("builds", buildService.FetchBuilds, clock),
		PRs:    NewPoller("prs", prService.FetchQueue, clock),
	}
}

// Apply reconfigures both pollers from a settings snapshot.
// The build poller only runs while the builds tab is shown.
func (d *Dashboard) Apply(s domain.Settings) {
	interval := PollingInterval(s.PollingInterval)

	logging.Logger.Debug("Applying dashboard settings",
		"configured", s.IsConfigured(),
		"expo_configured", s.IsExpoConfigured(),
		"active_tab", s.ActiveTab,
		"interval", interval)

	d.PRs.Configure(s.GitHub(), s.IsConfigured(), interval)
	d.Builds.Configure(s.Expo(), s.IsExpoConfigured() && s.ActiveTab == domain.TabBuilds, interval)
}

// Refresh triggers the poller behind the given tab
func (d *Dashboard) Refresh(tab domain.Tab) {
	if tab == domain.TabBuilds {
		d.Builds.Refresh()
		return
	}
	d.PRs.Refresh()
}

// Stop stops both pollers
func (d *Dashboard) Stop() {
	d.PRs.Stop()
	d.Builds.Stop()
}

// PollingInterval converts a minutes setting into a clamped duration
func PollingInterval(minutes int) time.Duration {
	return time.Duration(domain.ClampPollingInterval(minutes)) * time.Minute
}
