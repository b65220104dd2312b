package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/services"
)

// PRsCmd prints the pull request queue once
type PRsCmd struct {
	Filter string `help:"Keep pull requests whose title, repository or author contains this text" short:"f"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// prsOutput is the JSON shape of the prs command
type prsOutput struct {
	MyPRs        []domain.ReviewRequest `json:"my_prs"`
	Reviews      []domain.ReviewRequest `json:"reviews"`
	TotalMyPRs   int                    `json:"total_my_prs"`
	TotalReviews int                    `json:"total_reviews"`
}

// Run executes the prs command
func (p *PRsCmd) Run(cli *CLI) error {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	settings, err := cli.Container.SettingsService.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	creds, err := resolveGitHubCredentials(ctx, cli.Container, settings)
	if err != nil {
		return err
	}

	logging.Logger.Info("Fetching pull request queue", "username", creds.Username)
	queue, err := cli.Container.PRService.FetchQueue(ctx, creds)
	if err != nil {
		return fmt.Errorf("failed to fetch pull requests: %w", err)
	}

	view := services.BuildPRView(queue, p.Filter)
	if p.Format == "json" {
		return writeJSON(os.Stdout, prsOutput{
			MyPRs:        view.MyPRs,
			Reviews:      view.Reviews,
			TotalMyPRs:   view.TotalMyPRs,
			TotalReviews: view.TotalReviews,
		})
	}
	return writePRTable(os.Stdout, view, cli.Container.Clock.Now())
}

// resolveGitHubCredentials asks GitHub for the username when only a token is known
func resolveGitHubCredentials(ctx context.Context, c *Container, settings domain.Settings) (domain.GitHubCredentials, error) {
	creds := settings.GitHub()
	if creds.Token == "" {
		return creds, fmt.Errorf("GitHub token not configured: run 'revue settings set token <value>' or set %s", services.EnvGitHubToken)
	}
	if creds.Username != "" {
		return creds, nil
	}

	login, err := c.GitHub.CurrentUser(ctx, creds.Token)
	if err != nil {
		return creds, fmt.Errorf("failed to resolve GitHub username: %w", err)
	}
	creds.Username = login
	return creds, nil
}

// writePRTable prints both sections of the queue as one table
func writePRTable(out io.Writer, view services.PRView, now time.Time) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SECTION\tREPO\tNUMBER\tTITLE\tAUTHOR\tAGE\tCI\tURL")

	rows := func(section string, prs []domain.ReviewRequest) {
		for _, pr := range prs {
			ci := "-"
			if pr.CIStatus != nil {
				ci = string(*pr.CIStatus)
			}
			fmt.Fprintf(w, "%s\t%s\t#%d\t%s\t%s\t%s\t%s\t%s\n",
				section,
				pr.RepoName,
				pr.Number,
				pr.Title,
				orDash(pr.Author.Login),
				pr.Age(now),
				ci,
				pr.HTMLURL,
			)
		}
	}
	rows("review", view.Reviews)
	rows("mine", view.MyPRs)

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d of %d review requests, %d of %d of your pull requests\n",
		len(view.Reviews), view.TotalReviews, len(view.MyPRs), view.TotalMyPRs)
	return nil
}
