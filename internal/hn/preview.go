package hn

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
)

// previewLimit caps how much article text is carried into the bulletin.
const previewLimit = 300

var spacesRe = regexp.MustCompile(`\s+`)

// ContentPreview fetches an article and extracts the opening of its main
// content as clean, sanitized text. Links into Hacker News itself (Ask HN,
// comment pages) carry no article to extract.
func (c *Client) ContentPreview(ctx context.Context, rawURL string) (string, error) {
	if strings.HasPrefix(rawURL, "https://news.ycombinator.com") {
		return "", nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch article: status code %d", resp.StatusCode)
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse URL: %w", err)
	}

	article, err := readability.FromReader(resp.Body, parsedURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse article: %w", err)
	}

	// Sanitize output (remove any remaining HTML tags or scripts)
	p := bluemonday.StrictPolicy()
	text := p.Sanitize(article.TextContent)
	text = strings.TrimSpace(spacesRe.ReplaceAllString(text, " "))

	if len(text) > previewLimit {
		text = text[:previewLimit] + "..."
	}
	return text, nil
}
