package testing

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// TestServer provides a configurable test HTTP server. The raw client dials
// it as a real TCP peer.
type TestServer struct {
	Server    *httptest.Server
	mu        sync.RWMutex
	pages     map[string]*TestPage
	errors    map[string]int // path -> status code
	hits      map[string]int
	redirects map[string]string
}

// TestPage represents a canned response.
type TestPage struct {
	Content     string
	ContentType string
	StatusCode  int
	Headers     map[string]string
}

// NewTestServer creates a new test server.
func NewTestServer() *TestServer {
	ts := &TestServer{
		pages:     make(map[string]*TestPage),
		errors:    make(map[string]int),
		hits:      make(map[string]int),
		redirects: make(map[string]string),
	}

	ts.Server = httptest.NewServer(http.HandlerFunc(ts.handler))
	return ts
}

func (ts *TestServer) handler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	ts.mu.Lock()
	ts.hits[path]++
	ts.mu.Unlock()

	ts.mu.RLock()
	errorCode := ts.errors[path]
	redirect := ts.redirects[path]
	page := ts.pages[path]
	ts.mu.RUnlock()

	if redirect != "" {
		http.Redirect(w, r, redirect, http.StatusMovedPermanently)
		return
	}

	if errorCode > 0 {
		w.WriteHeader(errorCode)
		return
	}

	if page != nil {
		for k, v := range page.Headers {
			w.Header().Set(k, v)
		}
		if page.ContentType != "" {
			w.Header().Set("Content-Type", page.ContentType)
		} else {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
		}
		if page.StatusCode > 0 {
			w.WriteHeader(page.StatusCode)
		}
		io.WriteString(w, page.Content)
		return
	}

	w.WriteHeader(http.StatusNotFound)
}

// AddPage adds an HTML page at path.
func (ts *TestServer) AddPage(path, content string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.pages[path] = &TestPage{Content: content}
}

// AddPageWithType adds a page with an explicit content type.
func (ts *TestServer) AddPageWithType(path, content, contentType string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.pages[path] = &TestPage{Content: content, ContentType: contentType}
}

// AddPageWithStatus adds a page served with a specific status code.
func (ts *TestServer) AddPageWithStatus(path, content string, status int) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.pages[path] = &TestPage{Content: content, StatusCode: status}
}

// AddRawPage adds a page with full control over headers.
func (ts *TestServer) AddRawPage(path string, page *TestPage) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.pages[path] = page
}

// SetError makes path respond with the given status code and no body.
func (ts *TestServer) SetError(path string, statusCode int) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.errors[path] = statusCode
}

// SetRedirect makes from respond with a 301 to to.
func (ts *TestServer) SetRedirect(from, to string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.redirects[from] = to
}

// GetHits returns how many requests path has received.
func (ts *TestServer) GetHits(path string) int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.hits[path]
}

// URL returns the server's base URL.
func (ts *TestServer) URL() string {
	return ts.Server.URL
}

// Close shuts down the server.
func (ts *TestServer) Close() {
	ts.Server.Close()
}
