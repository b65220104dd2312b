package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/revue/internal/domain"
)

func TestExtractNotionLink_PrefersBot(t *testing.T) {
	comments := []domain.IssueComment{
		{AuthorLogin: "alice", BodyHTML: `<a href="https://www.notion.so/acme/Other-1">Other</a>`},
		{AuthorLogin: "Notion-Workspace[bot]", BodyHTML: `<p><a class="x" href="https://www.notion.so/acme/Spec-2" rel="nofollow">Checkout spec</a></p>`},
	}

	link := ExtractNotionLink(comments)
	require.NotNil(t, link)
	assert.Equal(t, "Checkout spec", link.Title)
	assert.Equal(t, "https://www.notion.so/acme/Spec-2", link.URL)
}

func TestExtractNotionLink_FallsBackToFirstMatch(t *testing.T) {
	comments := []domain.IssueComment{
		{AuthorLogin: "notion-workspace[bot]", BodyHTML: "<p>Linked to a page</p>"},
		{AuthorLogin: "bob", BodyHTML: `<a href="https://github.com/acme">not notion</a>`},
		{AuthorLogin: "carol", BodyHTML: `<a href="https://acme.notion.so/Design-3">Design</a>`},
		{AuthorLogin: "dave", BodyHTML: `<a href="https://www.notion.so/Later-4">Later</a>`},
	}

	link := ExtractNotionLink(comments)
	require.NotNil(t, link)
	assert.Equal(t, "Design", link.Title)
	assert.Equal(t, "https://acme.notion.so/Design-3", link.URL)
}

func TestExtractNotionLink_URLTitleBecomesNotion(t *testing.T) {
	comments := []domain.IssueComment{
		{AuthorLogin: "alice", BodyHTML: `<a href="https://www.notion.so/x">https://www.notion.so/x</a>`},
	}

	link := ExtractNotionLink(comments)
	require.NotNil(t, link)
	assert.Equal(t, "Notion", link.Title)
}

func TestExtractNotionLink_None(t *testing.T) {
	assert.Nil(t, ExtractNotionLink(nil))
	assert.Nil(t, ExtractNotionLink([]domain.IssueComment{
		{AuthorLogin: "alice", BodyHTML: ""},
		{AuthorLogin: "bob", BodyHTML: "<p>LGTM</p>"},
	}))
}

func TestExtractNotionLink_HostMustBeNotion(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected *domain.NotionLink
	}{
		{
			name: "redirect mentioning notion.so",
			html: `<a href="https://evil.example.com/redirect?to=notion.so">click</a>`,
		},
		{
			name: "lookalike host",
			html: `<a href="https://notion.so.evil.example.com/page">Spec</a>`,
		},
		{
			name: "suffix without dot",
			html: `<a href="https://fakenotion.so/page">Spec</a>`,
		},
		{
			name:     "apex domain",
			html:     `<a href="https://notion.so/acme/Spec-1">Spec</a>`,
			expected: &domain.NotionLink{Title: "Spec", URL: "https://notion.so/acme/Spec-1"},
		},
		{
			name: "skips other anchors in the same comment",
			html: `<a href="https://evil.example.com/?q=notion.so">first</a> and <a href="https://www.notion.so/acme/Spec-2">Spec</a>`,
			expected: &domain.NotionLink{Title: "Spec", URL: "https://www.notion.so/acme/Spec-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := ExtractNotionLink([]domain.IssueComment{{AuthorLogin: "alice", BodyHTML: tt.html}})
			assert.Equal(t, tt.expected, link)
		})
	}
}
