package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/rohan/vaani/internal/hn"
	"github.com/rohan/vaani/internal/llm"
	lcllms "github.com/tmc/langchaingo/llms"
)

// newsCount is how many top stories a bulletin covers.
const newsCount = 5

// Chatter is the slice of the LLM client the workflows need.
type Chatter interface {
	Chat(ctx context.Context, workflow, system string, history []lcllms.MessageContent, user string) (string, error)
}

// NewsFetcher is the slice of the Hacker News client the workflow needs.
type NewsFetcher interface {
	TopStories(ctx context.Context, limit int) ([]hn.Story, error)
	ContentPreview(ctx context.Context, url string) (string, error)
}

// News reads the top Hacker News stories as a spoken bulletin.
type News struct {
	base
	fetcher NewsFetcher
	chat    Chatter
}

func NewNews(fetcher NewsFetcher, chat Chatter) *News {
	return &News{
		base: base{
			name:        "news",
			description: "Read the top Hacker News stories like a news bulletin",
			triggers: []string{
				"news", "hacker news", "hn", "top articles", "news bulletin",
				"read news", "latest news", "tech news",
			},
		},
		fetcher: fetcher,
		chat:    chat,
	}
}

const newsSystemPrompt = "You are a tech news podcast host. Create an engaging, " +
	"conversational summary of these Hacker News stories. Write exactly as you " +
	"would speak: no numbered lists, no bullet points, no formatting symbols. " +
	"Introduce stories with words like 'first' and 'next'. Mention who posted " +
	"each story and give context from the content excerpts where available. " +
	"Keep each story brief."

// Run fetches the ranking, pulls a short content excerpt per article, and
// narrates the result. Every external failure degrades to a spoken apology;
// the caller never sees an error from a fetch problem.
func (n *News) Run(ctx context.Context, utterance string) (string, error) {
	stories, err := n.fetcher.TopStories(ctx, newsCount)
	if err != nil {
		return "Sorry, I couldn't reach Hacker News just now. Let's try again in a little while.", nil
	}
	if len(stories) == 0 {
		return "It looks like there are no stories to read right now.", nil
	}

	previews := make([]string, len(stories))
	for i, story := range stories {
		preview, err := n.fetcher.ContentPreview(ctx, story.URL)
		if err != nil {
			continue
		}
		previews[i] = preview
	}

	if summary := n.podcastSummary(ctx, stories, previews); summary != "" {
		return summary, nil
	}
	return bulletin(stories, previews), nil
}

// podcastSummary asks the model for a narrated take on the stories. Returns
// empty on any failure so the caller can fall back to the plain bulletin.
func (n *News) podcastSummary(ctx context.Context, stories []hn.Story, previews []string) string {
	if n.chat == nil {
		return ""
	}

	var sb strings.Builder
	for i, story := range stories {
		fmt.Fprintf(&sb, "%s story: %s, posted by %s, %d points.", rankWord(i), story.Title, story.By, story.Score)
		if previews[i] != "" {
			fmt.Fprintf(&sb, " Excerpt: %s", previews[i])
		}
		sb.WriteString("\n")
	}

	summary, err := n.chat.Chat(ctx, n.name, newsSystemPrompt, nil, sb.String())
	if err != nil {
		return ""
	}
	return llm.CleanForSpeech(summary)
}

// bulletin is the deterministic narration used when no model is reachable.
func bulletin(stories []hn.Story, previews []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Here are the top %s stories from Hacker News. ", countWord(len(stories)))
	for i, story := range stories {
		fmt.Fprintf(&sb, "%s: %s, posted by %s with %d points.", rankWord(i), story.Title, story.By, story.Score)
		if previews[i] != "" {
			fmt.Fprintf(&sb, " %s", previews[i])
		}
		sb.WriteString(" ")
	}
	sb.WriteString("That's all for now.")
	return sb.String()
}
