package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/services"
	"github.com/renato0307/revue/internal/theme"
)

const (
	emptyMyPRs   = "You have no open pull requests"
	emptyReviews = "No pull requests waiting for your review"
	rowIndent    = "    "
)

// prRowOptions are the display toggles that affect a pull request row
type prRowOptions struct {
	showAge    bool
	showCI     bool
	showNotion bool
}

// prItems returns the selectable pull requests in display order
func prItems(view services.PRView) []domain.ReviewRequest {
	items := make([]domain.ReviewRequest, 0, len(view.Reviews)+len(view.MyPRs))
	items = append(items, view.Reviews...)
	return append(items, view.MyPRs...)
}

// renderPRList renders both pull request sections. cursor indexes prItems(view).
func renderPRList(s *theme.Styles, view services.PRView, settings domain.Settings, now time.Time, width, cursor int) []listBlock {
	blocks := []listBlock{{content: renderSectionTitle(s, "REVIEWS", len(view.Reviews))}}

	index := 0
	opts := prRowOptions{showAge: true, showCI: settings.ShowCIBadge, showNotion: settings.ShowNotionLink}
	if len(view.Reviews) == 0 {
		blocks = append(blocks, listBlock{content: s.Empty.Render(emptyReviews)})
	}
	for _, pr := range view.Reviews {
		blocks = append(blocks, listBlock{
			content:    renderPRRow(s, pr, opts, now, width, index == cursor),
			selectable: true,
		})
		index++
	}

	blocks = append(blocks, listBlock{content: renderSectionTitle(s, "MY PRS", len(view.MyPRs))})

	opts.showAge = false
	if len(view.MyPRs) == 0 {
		blocks = append(blocks, listBlock{content: s.Empty.Render(emptyMyPRs)})
	}
	for _, pr := range view.MyPRs {
		blocks = append(blocks, listBlock{
			content:    renderPRRow(s, pr, opts, now, width, index == cursor),
			selectable: true,
		})
		index++
	}

	return blocks
}

func renderSectionTitle(s *theme.Styles, title string, count int) string {
	return s.SectionTitle.Render(title) + " " + s.SectionCount.Render(fmt.Sprintf("(%d)", count))
}

func renderPRRow(s *theme.Styles, pr domain.ReviewRequest, opts prRowOptions, now time.Time, width int, selected bool) string {
	marker := "  "
	titleStyle := s.Normal
	if selected {
		marker = s.SelectedTitle.Render("▌ ")
		titleStyle = s.SelectedTitle
	}

	dot := s.Dot(s.Palette.Muted)
	if opts.showAge {
		dot = s.Dot(s.AgeColor(pr.Age(now)))
	}

	title := pr.Title
	if width > 0 {
		title = ansi.Truncate(title, max(width-12, 10), "…")
	}
	line := marker + dot + " " + titleStyle.Render(title)
	if pr.Draft {
		line += " " + s.Badge.Render("draft")
	}

	details := []string{
		s.Repo.Render(fmt.Sprintf("%s #%d", pr.RepoName, pr.Number)),
		s.Author.Render(pr.Author.Login),
	}
	if opts.showAge {
		details = append(details, s.Badge.Foreground(s.AgeColor(pr.Age(now))).Render(ageLabel(pr.Age(now))))
	}
	if opts.showCI && pr.CIStatus != nil {
		details = append(details, s.Dot(s.CIColor(*pr.CIStatus))+" "+s.Badge.Render(ciLabel(*pr.CIStatus)))
	}
	if pr.DiffStats != nil {
		details = append(details,
			s.Additions.Render(fmt.Sprintf("+%d", pr.DiffStats.Additions))+" "+
				s.Deletions.Render(fmt.Sprintf("-%d", pr.DiffStats.Deletions)))
	}
	if len(pr.Labels) > 0 {
		names := make([]string, len(pr.Labels))
		for i, l := range pr.Labels {
			names[i] = l.Name
		}
		details = append(details, s.Badge.Render(strings.Join(names, ", ")))
	}

	row := line + "\n" + rowIndent + strings.Join(details, s.Badge.Render(" · "))
	if opts.showNotion && pr.NotionLink != nil {
		row += "\n" + rowIndent + s.Badge.Render("Notion: ") + s.Link.Render(pr.NotionLink.Title)
	}
	return row
}
