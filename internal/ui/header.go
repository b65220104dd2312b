package ui

import (
	"fmt"

	"github.com/renato0307/revue/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "Pull requests waiting on you, and the builds that shipped them",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderAppName renders the app name, followed by build info in dev mode
func renderAppName(s *theme.Styles, devMode bool) string {
	line := s.AppName.Render("revue")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		line += s.Version.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version, commit, versionInfo.Date, versionInfo.GoVersion))
	}
	return line
}

// renderDialogHeader renders the header of dialogs. Only Dialog should call it.
func renderDialogHeader(s *theme.Styles, devMode bool, title string) string {
	result := renderAppName(s, devMode) + "\n"
	result += s.Tagline.Render(versionInfo.Tagline)
	if title != "" {
		result += "\n\n" + s.DialogTitle.Render(title)
	}
	return result + "\n"
}
