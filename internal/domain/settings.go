package domain

// Tab is the active dashboard tab
type Tab string

const (
	TabPRs    Tab = "prs"
	TabBuilds Tab = "builds"
)

const (
	DefaultPollingInterval = 5
	MaxPollingInterval     = 60
	MinPollingInterval     = 1
)

// Settings is the dashboard preferences snapshot read once per poll cycle
type Settings struct {
	ActiveTab       Tab
	DarkMode        bool
	ExpoProjectSlug string // "account/project"
	ExpoToken       string
	PollingInterval int // minutes
	ShowCIBadge     bool
	ShowCopyButton  bool
	ShowNotionLink  bool
	Token           string
	Username        string
}

// DefaultSettings returns the settings used before anything is stored
func DefaultSettings() Settings {
	return Settings{
		ActiveTab:       TabPRs,
		DarkMode:        true,
		PollingInterval: DefaultPollingInterval,
		ShowCIBadge:     true,
		ShowCopyButton:  true,
		ShowNotionLink:  true,
	}
}

// ClampPollingInterval bounds a polling interval to 1..60 minutes
func ClampPollingInterval(minutes int) int {
	if minutes < MinPollingInterval {
		return MinPollingInterval
	}
	if minutes > MaxPollingInterval {
		return MaxPollingInterval
	}
	return minutes
}

// IsConfigured reports whether GitHub credentials are present
func (s Settings) IsConfigured() bool {
	return s.GitHub().Configured()
}

// IsExpoConfigured reports whether Expo credentials are present
func (s Settings) IsExpoConfigured() bool {
	return s.Expo().Configured()
}

// GitHub returns the pull request poller credentials
func (s Settings) GitHub() GitHubCredentials {
	return GitHubCredentials{Token: s.Token, Username: s.Username}
}

// Expo returns the build poller credentials
func (s Settings) Expo() ExpoCredentials {
	return ExpoCredentials{ProjectSlug: s.ExpoProjectSlug, Token: s.ExpoToken}
}
