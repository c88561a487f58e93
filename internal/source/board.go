package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BoardSelectors locate notice fields on an HTML notice board page.
// Title, date and description selectors are evaluated inside each item.
type BoardSelectors struct {
	Item        string
	Title       string
	Date        string
	Description string
}

// BoardSource scrapes notices from the institution's HTML notice board.
type BoardSource struct {
	url       string
	client    *http.Client
	selectors BoardSelectors
}

func NewBoardSource(url string, client *http.Client, selectors BoardSelectors) *BoardSource {
	return &BoardSource{url: url, client: client, selectors: selectors}
}

func (s *BoardSource) Name() string { return "board" }

func (s *BoardSource) Fetch(ctx context.Context) ([]Item, error) {
	resp, err := get(ctx, s.client, s.url, "text/html")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse board: %w", err)
	}
	return s.scrape(doc), nil
}

func (s *BoardSource) scrape(doc *goquery.Document) []Item {
	base, _ := url.Parse(s.url)

	var items []Item
	doc.Find(s.selectors.Item).Each(func(_ int, sel *goquery.Selection) {
		titleSel := sel.Find(s.selectors.Title).First()
		title := collapse(titleSel.Text())
		date := collapse(sel.Find(s.selectors.Date).First().Text())

		description := ""
		if s.selectors.Description != "" {
			description = collapse(sel.Find(s.selectors.Description).First().Text())
		}
		if description == "" {
			description = resolveLink(base, titleSel)
		}

		items = append(items, Item{Title: title, Date: date, Description: description})
	})
	return items
}

func resolveLink(base *url.URL, sel *goquery.Selection) string {
	href, ok := sel.Attr("href")
	if !ok {
		href, ok = sel.Find("a").First().Attr("href")
	}
	href = strings.TrimSpace(href)
	if !ok || href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil || base == nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
