package domain

import "time"

// BuildStatus is the lifecycle state of an EAS build
type BuildStatus string

const (
	BuildFinished      BuildStatus = "FINISHED"
	BuildErrored       BuildStatus = "ERRORED"
	BuildInProgress    BuildStatus = "IN_PROGRESS"
	BuildInQueue       BuildStatus = "IN_QUEUE"
	BuildNew           BuildStatus = "NEW"
	BuildCanceled      BuildStatus = "CANCELED"
	BuildPendingCancel BuildStatus = "PENDING_CANCEL"
)

// IsActive reports whether the build has not reached a terminal state
func (s BuildStatus) IsActive() bool {
	switch s {
	case BuildInProgress, BuildInQueue, BuildNew, BuildPendingCancel:
		return true
	}
	return false
}

// Platform is the target mobile platform of a build
type Platform string

const (
	PlatformAndroid Platform = "ANDROID"
	PlatformIOS     Platform = "IOS"
)

// DefaultBuildProfile is used for builds without a profile (local builds)
const DefaultBuildProfile = "local"

const shortCommitLength = 7

// BuildArtifacts holds downloadable outputs of a build
type BuildArtifacts struct {
	BuildURL *string `json:"buildUrl"`
}

// BuildError describes why a build failed
type BuildError struct {
	Message string `json:"message"`
}

// BuildActor is who started a build
type BuildActor struct {
	DisplayName string `json:"displayName"`
	ID          string `json:"id"`
	Typename    string `json:"__typename"`
}

// Build is an EAS build as returned by the GraphQL API
type Build struct {
	AppBuildVersion *string         `json:"appBuildVersion"`
	AppVersion      *string         `json:"appVersion"`
	Artifacts       *BuildArtifacts `json:"artifacts"`
	BuildProfile    *string         `json:"buildProfile"`
	Channel         *string         `json:"channel"`
	CompletedAt     *time.Time      `json:"completedAt"`
	CreatedAt       time.Time       `json:"createdAt"`
	Distribution    *string         `json:"distribution"`
	Error           *BuildError     `json:"error"`
	GitCommitHash   *string         `json:"gitCommitHash"`
	ID              string          `json:"id"`
	InitiatingActor *BuildActor     `json:"initiatingActor"`
	Platform        Platform        `json:"platform"`
	Status          BuildStatus     `json:"status"`
}

// Profile returns the build profile name, defaulting to "local"
func (b Build) Profile() string {
	if b.BuildProfile == nil || *b.BuildProfile == "" {
		return DefaultBuildProfile
	}
	return *b.BuildProfile
}

// ArtifactURL returns the download URL of the build artifact, or ""
func (b Build) ArtifactURL() string {
	if b.Artifacts == nil || b.Artifacts.BuildURL == nil {
		return ""
	}
	return *b.Artifacts.BuildURL
}

// ShortCommit returns the abbreviated git commit hash, or ""
func (b Build) ShortCommit() string {
	if b.GitCommitHash == nil {
		return ""
	}
	hash := *b.GitCommitHash
	if len(hash) > shortCommitLength {
		return hash[:shortCommitLength]
	}
	return hash
}

// Version renders "1.2.0 (42)", or whichever part is known
func (b Build) Version() string {
	var version, build string
	if b.AppVersion != nil {
		version = *b.AppVersion
	}
	if b.AppBuildVersion != nil {
		build = *b.AppBuildVersion
	}
	switch {
	case version != "" && build != "":
		return version + " (" + build + ")"
	case build != "":
		return "(" + build + ")"
	}
	return version
}

// ErrorMessage returns the build error message, or ""
func (b Build) ErrorMessage() string {
	if b.Error == nil {
		return ""
	}
	return b.Error.Message
}

// BuildGroup holds the latest build per platform of one build profile
type BuildGroup struct {
	Builds  []Build `json:"builds"`
	Profile string  `json:"profile"`
}

// ExpoApp is an EAS project resolved from its "account/project" slug
type ExpoApp struct {
	AccountName string
	ID          string
	Slug        string
}

// ExpoCredentials is the config tuple of the build poller
type ExpoCredentials struct {
	ProjectSlug string
	Token       string
}

// Configured reports whether both token and project slug are set
func (c ExpoCredentials) Configured() bool {
	return c.Token != "" && c.ProjectSlug != ""
}
