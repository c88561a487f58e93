package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"cgtsc/website/internal/model"
)

// FeedSource reads notices from an RSS or Atom feed.
type FeedSource struct {
	url    string
	client *http.Client
}

func NewFeedSource(url string, client *http.Client) *FeedSource {
	return &FeedSource{url: url, client: client}
}

func (s *FeedSource) Name() string { return "feed" }

func (s *FeedSource) Fetch(ctx context.Context) ([]Item, error) {
	resp, err := get(ctx, s.client, s.url, "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		if it == nil {
			continue
		}
		items = append(items, Item{
			Title:       strings.TrimSpace(it.Title),
			Date:        feedItemDate(it),
			Description: firstNonEmpty(it.Description, it.Content, it.Link),
		})
	}
	return items, nil
}

func feedItemDate(it *gofeed.Item) string {
	switch {
	case it.PublishedParsed != nil:
		return it.PublishedParsed.Format(model.DateLayout)
	case it.UpdatedParsed != nil:
		return it.UpdatedParsed.Format(model.DateLayout)
	case it.Published != "":
		return it.Published
	default:
		return it.Updated
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
