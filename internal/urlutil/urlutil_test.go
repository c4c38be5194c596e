package urlutil

import (
	"testing"

	ast "github.com/go2web/go2web/internal/testing"
)

func TestParseTargetDefaults(t *testing.T) {
	tests := []struct {
		name   string
		rawURL string
		scheme string
		host   string
		port   int
		path   string
	}{
		{"http default port", "http://example.com", "http", "example.com", 80, "/"},
		{"https default port", "https://example.com", "https", "example.com", 443, "/"},
		{"explicit port", "http://example.com:8080/index", "http", "example.com", 8080, "/index"},
		{"query preserved", "https://example.com/search?q=go&page=2", "https", "example.com", 443, "/search?q=go&page=2"},
		{"host lowercased", "http://EXAMPLE.com/A/B", "http", "example.com", 80, "/A/B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := ParseTarget(tt.rawURL)
			ast.MustNotFail(t, err)
			ast.Assert(t, target.Scheme).Named("scheme").Equals(tt.scheme)
			ast.Assert(t, target.Host).Named("host").Equals(tt.host)
			ast.Assert(t, target.Port).Named("port").Equals(tt.port)
			ast.Assert(t, target.Path).Named("path").Equals(tt.path)
		})
	}
}

func TestParseTargetRejectsBadURLs(t *testing.T) {
	for _, rawURL := range []string{"ftp://example.com", "example.com/path", "http://"} {
		_, err := ParseTarget(rawURL)
		ast.MustFail(t, err)
	}
}

func TestHostPort(t *testing.T) {
	target, err := ParseTarget("http://example.com")
	ast.MustNotFail(t, err)
	ast.Assert(t, target.HostPort()).Equals("example.com")
	ast.Assert(t, target.Address()).Equals("example.com:80")

	target, err = ParseTarget("https://example.com:8443/x")
	ast.MustNotFail(t, err)
	ast.Assert(t, target.HostPort()).Equals("example.com:8443")
	ast.Assert(t, target.String()).Equals("https://example.com:8443/x")
}

func TestResolveRedirect(t *testing.T) {
	base, err := ParseTarget("https://example.com/a/b?x=1")
	ast.MustNotFail(t, err)

	tests := []struct {
		name     string
		location string
		expected string
	}{
		{"absolute passthrough", "http://other.com/else", "http://other.com/else"},
		{"rooted path", "/login", "https://example.com/login"},
		{"bare relative joined at root", "next.html", "https://example.com/next.html"},
		{"dot segments untouched", "/a/../b", "https://example.com/a/../b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ast.Assert(t, ResolveRedirect(base, tt.location)).Equals(tt.expected)
		})
	}
}

func TestResolveRedirectKeepsExplicitPort(t *testing.T) {
	base, err := ParseTarget("http://example.com:8080/page")
	ast.MustNotFail(t, err)
	ast.Assert(t, ResolveRedirect(base, "/next")).Equals("http://example.com:8080/next")
}

func TestIsAbsoluteURL(t *testing.T) {
	ast.Assert(t, IsAbsoluteURL("https://example.com")).IsTrue()
	ast.Assert(t, IsAbsoluteURL("/relative/path")).IsFalse()
}
