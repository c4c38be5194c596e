// Package renderer turns fetched documents into terminal output.
package renderer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/pretty"

	"github.com/go2web/go2web/internal/parser"
)

// excessiveNewlines matches runs of three or more newlines.
var excessiveNewlines = regexp.MustCompile(`\n{3,}`)

// Page is the rendered form of an HTML document.
type Page struct {
	// Rendered text, ready to print
	Output string

	// Links found in the document, in order
	Links []parser.Link
}

// RenderHTML renders an HTML body as plain text: title banner, visible text
// with excessive blank lines collapsed, and a numbered link list.
func RenderHTML(body string) (*Page, error) {
	doc, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var out strings.Builder

	title := doc.Title
	if title == "" {
		title = "No title"
	}
	fmt.Fprintf(&out, "\n=== %s ===\n\n", title)

	text := strings.Join(doc.Text, "\n")
	out.WriteString(excessiveNewlines.ReplaceAllString(text, "\n\n"))
	out.WriteString("\n")

	if len(doc.Links) > 0 {
		out.WriteString("\n=== Links ===\n\n")
		for i, link := range doc.Links {
			fmt.Fprintf(&out, "%d. %s: %s\n", i+1, link.Text, link.Href)
		}
	}

	return &Page{Output: out.String(), Links: doc.Links}, nil
}

// RenderJSON pretty-prints a JSON body. Invalid JSON passes through
// untouched.
func RenderJSON(body string) string {
	if !json.Valid([]byte(body)) {
		return body
	}
	return string(pretty.Pretty([]byte(body)))
}
