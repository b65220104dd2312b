package services

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/renato0307/revue/internal/domain"
)

// notionBotMarker identifies the Notion integration account
const notionBotMarker = "notion-workspace"

const (
	notionDefaultTitle = "Notion"
	notionHost         = "notion.so"
)

var anchorTag = regexp.MustCompile(`<a[^>]+href="(https?://[^"]+)"[^>]*>([^<]+)</a>`)

// ExtractNotionLink finds the Notion document linked from a PR conversation.
// A comment from the Notion bot wins; otherwise the first comment with a link is used.
func ExtractNotionLink(comments []domain.IssueComment) *domain.NotionLink {
	for _, c := range comments {
		if !strings.Contains(strings.ToLower(c.AuthorLogin), notionBotMarker) {
			continue
		}
		if link := notionLinkFromHTML(c.BodyHTML); link != nil {
			return link
		}
		// Only the first bot comment is considered
		break
	}

	for _, c := range comments {
		if link := notionLinkFromHTML(c.BodyHTML); link != nil {
			return link
		}
	}
	return nil
}

func notionLinkFromHTML(html string) *domain.NotionLink {
	if html == "" {
		return nil
	}

	for _, match := range anchorTag.FindAllStringSubmatch(html, -1) {
		if !isNotionURL(match[1]) {
			continue
		}
		title := match[2]
		if strings.HasPrefix(title, "http") {
			title = notionDefaultTitle
		}
		return &domain.NotionLink{Title: title, URL: match[1]}
	}
	return nil
}

// isNotionURL reports whether href points at notion.so or one of its subdomains
func isNotionURL(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == notionHost || strings.HasSuffix(host, "."+notionHost)
}
