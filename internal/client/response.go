// Package client implements a raw HTTP/1.1 client over plain and TLS sockets.
package client

import (
	"strings"
	"time"
)

// Response represents the result of an HTTP exchange.
type Response struct {
	// Original requested URL
	RequestURL string

	// Final URL after redirects
	FinalURL string

	// HTTP status code
	StatusCode int

	// Raw status line (e.g., "HTTP/1.1 200 OK")
	Status string

	// Response headers, last occurrence wins, name case preserved
	Headers map[string]string

	// Decoded body text
	Body string

	// Body bytes before content decoding
	RawBody []byte

	// Redirect chain in hop order
	RedirectChain []RedirectHop

	// Whether the response was served from the cache without network I/O
	FromCache bool

	// Total exchange time, zero for cache hits
	ResponseTime time.Duration
}

// RedirectHop represents a single redirect in the chain.
type RedirectHop struct {
	URL        string
	StatusCode int
	Location   string
}

// IsSuccess returns true if the response was successful (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsRedirect returns true if the response was a redirect (3xx).
func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// HasRedirects returns true if any redirects were followed.
func (r *Response) HasRedirects() bool {
	return len(r.RedirectChain) > 0
}

// Header returns a header value by case-insensitive name lookup.
func (r *Response) Header(name string) string {
	for key, value := range r.Headers {
		if strings.EqualFold(key, name) {
			return value
		}
	}
	return ""
}

// ContentType returns the media type without parameters.
func (r *Response) ContentType() string {
	ct := r.Header("Content-Type")
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = ct[:idx]
	}
	return strings.TrimSpace(ct)
}

// IsJSON returns true if the content type is JSON.
func (r *Response) IsJSON() bool {
	return strings.Contains(strings.ToLower(r.Header("Content-Type")), "application/json")
}

// IsHTML returns true if the content type is HTML.
func (r *Response) IsHTML() bool {
	return strings.HasPrefix(strings.ToLower(r.ContentType()), "text/html")
}

// redirectStatuses are the statuses whose Location header is followed.
var redirectStatuses = map[int]bool{
	301: true,
	302: true,
	303: true,
	307: true,
	308: true,
}
