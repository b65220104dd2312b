package domain

import "time"

// AgeCategory classifies how long a pull request has been waiting
type AgeCategory string

const (
	AgeFresh AgeCategory = "fresh"
	AgeAging AgeCategory = "aging"
	AgeStale AgeCategory = "stale"
)

const (
	agingThreshold = 24 * time.Hour
	staleThreshold = 48 * time.Hour
)

// AgeOf returns the age category of something created at createdAt, seen at now
func AgeOf(createdAt, now time.Time) AgeCategory {
	elapsed := now.Sub(createdAt)
	switch {
	case elapsed < agingThreshold:
		return AgeFresh
	case elapsed < staleThreshold:
		return AgeAging
	default:
		return AgeStale
	}
}

// CIStatus is the aggregated check-run state of a commit
type CIStatus string

const (
	CISuccess CIStatus = "success"
	CIFailure CIStatus = "failure"
	CIPending CIStatus = "pending"
	CINeutral CIStatus = "neutral"
)

// Author is the user who opened a pull request
type Author struct {
	AvatarURL string `json:"avatar_url"`
	Login     string `json:"login"`
}

// Label is a GitHub issue label
type Label struct {
	Color string `json:"color"`
	Name  string `json:"name"`
}

// PullRequest is a pull request as returned by the issue search endpoint
type PullRequest struct {
	Author        Author    `json:"user"`
	CreatedAt     time.Time `json:"created_at"`
	Draft         bool      `json:"draft"`
	HTMLURL       string    `json:"html_url"`
	ID            int64     `json:"id"`
	Labels        []Label   `json:"labels"`
	Number        int       `json:"number"`
	RepoName      string    `json:"repo_name"`      // owner/name
	RepositoryURL string    `json:"repository_url"` // API URL of the owning repository
	Title         string    `json:"title"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NotionLink is a documentation link found in the PR discussion
type NotionLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// DiffStats holds line counts of a pull request diff
type DiffStats struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}

// ReviewRequest is a pull request plus best-effort enrichment.
// A nil enrichment field means the value could not be (or was not) resolved.
type ReviewRequest struct {
	PullRequest
	CIStatus   *CIStatus   `json:"ci_status"`
	DiffStats  *DiffStats  `json:"diff_stats"`
	NotionLink *NotionLink `json:"notion_link"`
}

// Age returns the age category at the given instant
func (r ReviewRequest) Age(now time.Time) AgeCategory {
	return AgeOf(r.CreatedAt, now)
}

// PRQueue is the result of one pull request poll cycle
type PRQueue struct {
	MyPRs          []ReviewRequest `json:"my_prs"`
	ReviewRequests []ReviewRequest `json:"review_requests"`
}

// PullRequestDetail holds the fields of a full pull request used for enrichment
type PullRequestDetail struct {
	DiffStats *DiffStats
	HeadSHA   string
}

// CheckRun is a single CI check run attached to a commit
type CheckRun struct {
	Conclusion string // empty while not completed
	Status     string // queued, in_progress, completed
}

// IssueComment is a comment on the PR conversation, rendered as HTML
type IssueComment struct {
	AuthorLogin string
	BodyHTML    string
}

// GitHubCredentials is the config tuple of the pull request poller
type GitHubCredentials struct {
	Token    string
	Username string
}

// Configured reports whether both username and token are set
func (c GitHubCredentials) Configured() bool {
	return c.Token != "" && c.Username != ""
}
