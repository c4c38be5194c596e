// Package search queries a search engine and scrapes its result page.
package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/go2web/go2web/internal/client"
)

// endpoint is the HTML (non-JavaScript) DuckDuckGo search page.
const endpoint = "https://html.duckduckgo.com/html/?q="

// maxResults caps the number of results returned per query.
const maxResults = 10

// Result is a single search hit.
type Result struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Engine issues search queries through the HTTP client.
type Engine struct {
	client *client.Client
	log    zerolog.Logger
}

// NewEngine creates a search engine backed by c.
func NewEngine(c *client.Client, log zerolog.Logger) *Engine {
	return &Engine{client: c, log: log}
}

// Search queries the engine for term and returns up to 10 results in page
// order. The query goes through the normal request pipeline, including the
// cache, with no explicit Accept value.
func (e *Engine) Search(ctx context.Context, term string) ([]Result, error) {
	searchURL := endpoint + url.QueryEscape(term)
	e.log.Debug().Str("url", searchURL).Msg("searching")

	resp, err := e.client.Get(ctx, searchURL, "")
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	return parseResults(resp.Body)
}

// parseResults extracts result titles and destinations from the search page.
func parseResults(body string) ([]Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse search page: %w", err)
	}

	results := make([]Result, 0, maxResults)
	doc.Find("div.result__body").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		anchor := sel.Find("a.result__a").First()
		href, ok := anchor.Attr("href")
		if !ok {
			return true
		}

		target := unwrapTrackingURL(href)
		if target == "" {
			return true
		}

		results = append(results, Result{
			Title: strings.TrimSpace(anchor.Text()),
			URL:   target,
		})
		return len(results) < maxResults
	})

	return results, nil
}

// unwrapTrackingURL extracts the real destination from DuckDuckGo's redirect
// wrapper. This is a substring extraction for the one known "uddg=" format,
// not a general URL-parameter decoder.
func unwrapTrackingURL(href string) string {
	idx := strings.Index(href, "uddg=")
	if idx == -1 {
		return ""
	}

	target := href[idx+len("uddg="):]
	if amp := strings.Index(target, "&"); amp != -1 {
		target = target[:amp]
	}

	target = strings.ReplaceAll(target, "%3A", ":")
	target = strings.ReplaceAll(target, "%2F", "/")
	return target
}
