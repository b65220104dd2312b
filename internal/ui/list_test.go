package ui

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/services"
	"github.com/renato0307/revue/internal/theme"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func testStyles() *theme.Styles {
	return theme.New(lipgloss.NewRenderer(io.Discard), true)
}

func strPtr(s string) *string { return &s }

func testPR(id int64, title string, age time.Duration) domain.ReviewRequest {
	return domain.ReviewRequest{PullRequest: domain.PullRequest{
		Author:    domain.Author{Login: "alice"},
		CreatedAt: testNow.Add(-age),
		HTMLURL:   "https://github.com/acme/app/pull/" + title,
		ID:        id,
		Number:    int(id),
		RepoName:  "acme/app",
		Title:     title,
	}}
}

func renderBlocks(blocks []listBlock) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.content
	}
	return ansi.Strip(strings.Join(parts, "\n"))
}

func TestRenderPRList_Sections(t *testing.T) {
	ci := domain.CIFailure
	review := testPR(1, "Add login", 30*time.Hour)
	review.CIStatus = &ci
	review.DiffStats = &domain.DiffStats{Additions: 10, Deletions: 3}
	review.Labels = []domain.Label{{Name: "feature"}, {Name: "ui"}}
	review.NotionLink = &domain.NotionLink{Title: "Login spec", URL: "https://notion.so/x"}
	mine := testPR(2, "Fix crash", time.Hour)
	mine.Draft = true

	view := services.PRView{MyPRs: []domain.ReviewRequest{mine}, Reviews: []domain.ReviewRequest{review}}
	settings := domain.DefaultSettings()

	out := renderBlocks(renderPRList(testStyles(), view, settings, testNow, 120, 0))

	assert.Contains(t, out, "REVIEWS (1)")
	assert.Contains(t, out, "MY PRS (1)")
	assert.Contains(t, out, "Add login")
	assert.Contains(t, out, "acme/app #1")
	assert.Contains(t, out, "1-2d")
	assert.Contains(t, out, "CI failed")
	assert.Contains(t, out, "+10 -3")
	assert.Contains(t, out, "feature, ui")
	assert.Contains(t, out, "Notion: Login spec")
	assert.Contains(t, out, "Fix crash draft")
	assert.NotContains(t, out, "< 1d", "own pull requests have no age badge")
}

func TestRenderPRList_Toggles(t *testing.T) {
	ci := domain.CISuccess
	review := testPR(1, "Add login", time.Hour)
	review.CIStatus = &ci
	review.NotionLink = &domain.NotionLink{Title: "Login spec", URL: "https://notion.so/x"}

	settings := domain.DefaultSettings()
	settings.ShowCIBadge = false
	settings.ShowNotionLink = false

	out := renderBlocks(renderPRList(testStyles(), services.PRView{Reviews: []domain.ReviewRequest{review}}, settings, testNow, 120, 0))

	assert.NotContains(t, out, "CI passed")
	assert.NotContains(t, out, "Notion")
}

func TestRenderPRList_Empty(t *testing.T) {
	blocks := renderPRList(testStyles(), services.PRView{}, domain.DefaultSettings(), testNow, 80, 0)

	out := renderBlocks(blocks)
	assert.Contains(t, out, emptyReviews)
	assert.Contains(t, out, emptyMyPRs)
	for _, b := range blocks {
		assert.False(t, b.selectable)
	}
}

func TestRenderPRList_TruncatesTitle(t *testing.T) {
	long := testPR(1, strings.Repeat("x", 200), time.Hour)

	out := renderBlocks(renderPRList(testStyles(), services.PRView{Reviews: []domain.ReviewRequest{long}}, domain.DefaultSettings(), testNow, 60, 0))

	assert.Contains(t, out, "…")
	assert.NotContains(t, out, strings.Repeat("x", 100))
}

func TestPRItems_Order(t *testing.T) {
	view := services.PRView{
		MyPRs:   []domain.ReviewRequest{testPR(3, "c", 0)},
		Reviews: []domain.ReviewRequest{testPR(1, "a", 0), testPR(2, "b", 0)},
	}

	items := prItems(view)
	require.Len(t, items, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{items[0].ID, items[1].ID, items[2].ID})
}

func TestRenderBuildList(t *testing.T) {
	groups := []domain.BuildGroup{
		{Profile: "preview", Builds: []domain.Build{{
			AppBuildVersion: strPtr("42"),
			AppVersion:      strPtr("1.2.0"),
			CreatedAt:       testNow.Add(-2 * time.Hour),
			Distribution:    strPtr("internal"),
			Error:           &domain.BuildError{Message: "Gradle failed"},
			GitCommitHash:   strPtr("abcdef1234567"),
			ID:              "b1",
			Platform:        domain.PlatformAndroid,
			Status:          domain.BuildErrored,
		}}},
		{Profile: "production", Builds: []domain.Build{{
			CreatedAt: testNow.Add(-time.Minute * 5),
			ID:        "b2",
			Platform:  domain.PlatformIOS,
			Status:    domain.BuildInProgress,
		}}},
	}

	out := renderBlocks(renderBuildList(testStyles(), groups, testNow, 1))

	assert.Contains(t, out, "preview")
	assert.Contains(t, out, "Android internal  Error")
	assert.Contains(t, out, "2h ago · abcdef1 · 1.2.0 (42)")
	assert.Contains(t, out, "Gradle failed")
	assert.Contains(t, out, "production")
	assert.Contains(t, out, "iOS  In progress")
	assert.Len(t, buildItems(groups), 2)
}

func TestRenderBuildList_Empty(t *testing.T) {
	out := renderBlocks(renderBuildList(testStyles(), nil, testNow, 0))
	assert.Contains(t, out, emptyBuilds)
}

func TestListPane_ScrollsToSelection(t *testing.T) {
	p := newListPane()
	p.SetSize(40, 3)

	var blocks []listBlock
	for i := range 10 {
		blocks = append(blocks, listBlock{content: string(rune('a'+i)) + "\n-", selectable: true})
	}

	for range 5 {
		p.MoveDown(len(blocks))
	}
	view := p.Render(blocks)

	// Item f spans lines 10-11; the viewport shows lines 9-11
	assert.Contains(t, view, "f")
	assert.Equal(t, 9, p.viewport.YOffset)

	p.Reset()
	assert.Equal(t, 0, p.cursor)
	p.Render(blocks)
	assert.Equal(t, 0, p.viewport.YOffset)
}

func TestListPane_Clamp(t *testing.T) {
	p := newListPane()
	p.cursor = 7

	p.Clamp(3)
	assert.Equal(t, 2, p.cursor)

	p.Clamp(0)
	assert.Equal(t, 0, p.cursor)

	p.MoveUp()
	assert.Equal(t, 0, p.cursor)
}
