package hn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Story is a ranked Hacker News item.
type Story struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Score int    `json:"score"`
	By    string `json:"by"`
}

// Client talks to the Hacker News Firebase API.
type Client struct {
	BaseURL   string
	UserAgent string
	HTTP      *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:   "https://hacker-news.firebaseio.com/v0",
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch %s: status code %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", url, err)
	}
	return nil
}

// TopStories returns up to limit of the current top-ranked stories.
// Individual items that fail to fetch are skipped; only a failure to get
// the ranking itself is an error.
func (c *Client) TopStories(ctx context.Context, limit int) ([]Story, error) {
	var ids []int
	if err := c.getJSON(ctx, c.BaseURL+"/topstories.json", &ids); err != nil {
		return nil, err
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}

	var stories []Story
	for _, id := range ids {
		var story Story
		if err := c.getJSON(ctx, fmt.Sprintf("%s/item/%d.json", c.BaseURL, id), &story); err != nil {
			continue
		}
		if story.Title == "" {
			continue
		}
		story.ID = id
		if story.URL == "" {
			story.URL = fmt.Sprintf("https://news.ycombinator.com/item?id=%d", id)
		}
		if story.By == "" {
			story.By = "an unknown author"
		}
		stories = append(stories, story)
	}
	return stories, nil
}
