package parser

import (
	"testing"

	ast "github.com/go2web/go2web/internal/testing"
)

const samplePage = `<html>
<head><title>Sample Page</title><style>.x{color:red}</style></head>
<body>
<h1>Welcome</h1>
<script>var hidden = "secret";</script>
<p>Some visible text.</p>
<a href="https://example.com/one">First</a>
<a href="/two">Second</a>
<a href="javascript:void(0)">Skipped</a>
<a href="mailto:someone@example.com">Mail</a>
<a href="#section">Anchor</a>
<a href="three.html">Third</a>
</body>
</html>`

func TestParseExtractsLinksInOrder(t *testing.T) {
	doc, err := Parse(samplePage)
	ast.MustNotFail(t, err)

	ast.Assert(t, doc.Links).HasLength(3)
	ast.Assert(t, doc.Links[0]).Equals(Link{Text: "First", Href: "https://example.com/one"})
	ast.Assert(t, doc.Links[1]).Equals(Link{Text: "Second", Href: "/two"})
	ast.Assert(t, doc.Links[2]).Equals(Link{Text: "Third", Href: "three.html"})
}

func TestParseExtractsTitle(t *testing.T) {
	title, ok := Title(samplePage)
	ast.Assert(t, ok).IsTrue()
	ast.Assert(t, title).Equals("Sample Page")

	_, ok = Title("<html><body>no title</body></html>")
	ast.Assert(t, ok).IsFalse()
}

func TestParseVisibleTextSkipsScriptAndStyle(t *testing.T) {
	doc, err := Parse(samplePage)
	ast.MustNotFail(t, err)

	joined := ""
	for _, text := range doc.Text {
		joined += text + "\n"
	}

	ast.Assert(t, joined).Contains("Welcome")
	ast.Assert(t, joined).Contains("Some visible text.")
	if contains(doc.Text, "secret") || contains(doc.Text, `var hidden = "secret";`) {
		t.Errorf("script content leaked into visible text")
	}
	if contains(doc.Text, ".x{color:red}") {
		t.Errorf("style content leaked into visible text")
	}
}

func TestParseToleratesMalformedMarkup(t *testing.T) {
	doc, err := Parse("<p>unclosed <a href='/x'>link")
	ast.MustNotFail(t, err)
	ast.Assert(t, doc.Links).HasLength(1)
	ast.Assert(t, doc.Links[0].Href).Equals("/x")
}

func TestExtractLinks(t *testing.T) {
	links, err := ExtractLinks(`<a href="/only">Only</a>`)
	ast.MustNotFail(t, err)
	ast.Assert(t, links).HasLength(1)
	ast.Assert(t, links[0].Text).Equals("Only")
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
