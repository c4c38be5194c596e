// Package storage provides persistence for cached responses and the
// last-results slot.
package storage

import "time"

// CachedResponse is a stored GET response.
type CachedResponse struct {
	URL       string            `json:"url"`
	Accept    string            `json:"accept"`
	Body      string            `json:"body"`
	Headers   map[string]string `json:"headers"`
	FetchedAt time.Time         `json:"fetched_at"`
}

// Age returns how long ago the response was fetched.
func (r *CachedResponse) Age() time.Duration {
	return time.Since(r.FetchedAt)
}

// ResultLink is one entry of the last-results list.
type ResultLink struct {
	// 1-based position within the list
	Position int `json:"position"`

	// Anchor text or result title
	Label string `json:"label"`

	// Link target
	URL string `json:"url"`
}

// ResultStore persists the most recent list of links produced by a fetch or
// search. A single slot: each save overwrites the previous list wholesale.
type ResultStore interface {
	SaveResults(links []ResultLink) error
	LoadResults() ([]ResultLink, error)
}
