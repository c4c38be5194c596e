package search

import (
	"fmt"
	"strings"
	"testing"

	ast "github.com/go2web/go2web/internal/testing"
)

func resultDiv(title, target string) string {
	href := "//duckduckgo.com/l/?uddg=" + strings.ReplaceAll(strings.ReplaceAll(target, ":", "%3A"), "/", "%2F") + "&rut=abc123"
	return fmt.Sprintf(`<div class="result__body"><a class="result__a" href=%q>%s</a></div>`, href, title)
}

func TestParseResults(t *testing.T) {
	page := "<html><body>" +
		resultDiv("Go Documentation", "https://go.dev/doc/") +
		resultDiv("Go Blog", "https://go.dev/blog/") +
		"</body></html>"

	results, err := parseResults(page)
	ast.MustNotFail(t, err)

	ast.Assert(t, results).HasLength(2)
	ast.Assert(t, results[0].Title).Equals("Go Documentation")
	ast.Assert(t, results[0].URL).Equals("https://go.dev/doc/")
	ast.Assert(t, results[1].URL).Equals("https://go.dev/blog/")
}

func TestParseResultsCapsAtTen(t *testing.T) {
	var page strings.Builder
	page.WriteString("<html><body>")
	for i := 0; i < 15; i++ {
		page.WriteString(resultDiv(fmt.Sprintf("Result %d", i+1), fmt.Sprintf("https://example.com/%d", i+1)))
	}
	page.WriteString("</body></html>")

	results, err := parseResults(page.String())
	ast.MustNotFail(t, err)
	ast.Assert(t, results).HasLength(10)
	ast.Assert(t, results[9].Title).Equals("Result 10")
}

func TestParseResultsSkipsNonTrackingLinks(t *testing.T) {
	page := `<html><body>
<div class="result__body"><a class="result__a" href="https://direct.example.com/">Direct</a></div>
` + resultDiv("Wrapped", "https://wrapped.example.com/") + `
</body></html>`

	results, err := parseResults(page)
	ast.MustNotFail(t, err)
	ast.Assert(t, results).HasLength(1)
	ast.Assert(t, results[0].Title).Equals("Wrapped")
}

func TestUnwrapTrackingURL(t *testing.T) {
	tests := []struct {
		href     string
		expected string
	}{
		{"//duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2F&rut=xyz", "https://go.dev/"},
		{"//duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2Fdoc", "https://go.dev/doc"},
		{"https://direct.example.com/", ""},
	}

	for _, tt := range tests {
		ast.Assert(t, unwrapTrackingURL(tt.href)).Named(tt.href).Equals(tt.expected)
	}
}
