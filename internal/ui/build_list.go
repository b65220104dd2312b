package ui

import (
	"time"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/theme"
)

const (
	emptyBuilds       = "No builds found for this project"
	expoNotConfigured = "Set an Expo token and project in settings to see builds"
)

// buildItems returns the selectable builds in display order
func buildItems(groups []domain.BuildGroup) []domain.Build {
	var items []domain.Build
	for _, g := range groups {
		items = append(items, g.Builds...)
	}
	return items
}

// renderBuildList renders one section per build profile. cursor indexes buildItems(groups).
func renderBuildList(s *theme.Styles, groups []domain.BuildGroup, now time.Time, cursor int) []listBlock {
	if len(groups) == 0 {
		return []listBlock{{content: "\n" + s.Empty.Render(emptyBuilds)}}
	}

	var blocks []listBlock
	index := 0
	for _, g := range groups {
		blocks = append(blocks, listBlock{content: s.SectionTitle.Render(g.Profile)})
		for _, b := range g.Builds {
			blocks = append(blocks, listBlock{
				content:    renderBuildRow(s, b, now, index == cursor),
				selectable: true,
			})
			index++
		}
	}
	return blocks
}

func renderBuildRow(s *theme.Styles, b domain.Build, now time.Time, selected bool) string {
	marker := "  "
	titleStyle := s.Normal
	if selected {
		marker = s.SelectedTitle.Render("▌ ")
		titleStyle = s.SelectedTitle
	}

	color := s.BuildColor(b.Status)
	line := marker + s.Dot(color) + " " + titleStyle.Render(platformLabel(b.Platform))
	if b.Distribution != nil && *b.Distribution != "" {
		line += " " + s.Badge.Render(*b.Distribution)
	}
	line += "  " + s.Badge.Foreground(color).Render(buildStatusLabel(b.Status))

	details := s.Author.Render(formatRelativeTime(b.CreatedAt, now))
	if hash := b.ShortCommit(); hash != "" {
		details += s.Badge.Render(" · ") + s.Repo.Render(hash)
	}
	if version := b.Version(); version != "" {
		details += s.Badge.Render(" · ") + s.Badge.Render(version)
	}

	row := line + "\n" + rowIndent + details
	if msg := b.ErrorMessage(); msg != "" && b.Status == domain.BuildErrored {
		row += "\n" + rowIndent + s.Error.Render(msg)
	}
	return row
}
