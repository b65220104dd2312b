package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/services"
)

// BuildsCmd prints the latest EAS builds once
type BuildsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the builds command
func (b *BuildsCmd) Run(cli *CLI) error {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	settings, err := cli.Container.SettingsService.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	creds := settings.Expo()
	if !creds.Configured() {
		return fmt.Errorf("Expo not configured: set %s and %s, or use 'revue settings set'",
			services.EnvExpoToken, services.EnvExpoProject)
	}

	logging.Logger.Info("Fetching builds", "project", creds.ProjectSlug)
	groups, err := cli.Container.BuildService.FetchBuilds(ctx, creds)
	if err != nil {
		return fmt.Errorf("failed to fetch builds: %w", err)
	}

	if b.Format == "json" {
		return writeJSON(os.Stdout, groups)
	}
	return writeBuildTable(os.Stdout, groups, creds.ProjectSlug)
}

// writeBuildTable prints one row per build, grouped by profile
func writeBuildTable(out io.Writer, groups []domain.BuildGroup, projectSlug string) error {
	if len(groups) == 0 {
		fmt.Fprintln(out, "No builds found.")
		return nil
	}

	account, project := services.SplitProjectSlug(projectSlug)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROFILE\tPLATFORM\tSTATUS\tCREATED\tCOMMIT\tVERSION\tURL")
	for _, g := range groups {
		for _, build := range g.Builds {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				g.Profile,
				build.Platform,
				build.Status,
				build.CreatedAt.Local().Format("2006-01-02 15:04"),
				orDash(build.ShortCommit()),
				orDash(build.Version()),
				services.BuildDetailsURL(account, project, build.ID),
			)
		}
	}
	return w.Flush()
}
