// Package parser handles HTML parsing and link extraction.
package parser

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Link represents an anchor found on the page.
type Link struct {
	// Anchor text
	Text string

	// href attribute as written in the document
	Href string
}

// Document contains the data extracted from an HTML page.
type Document struct {
	// Title tag content, empty when absent
	Title string

	// Anchor links in document order
	Links []Link

	// Visible text nodes in document order, whitespace-trimmed
	Text []string
}

// Parse parses HTML content and extracts title, links and visible text.
// Malformed markup never fails: the tokenizer repairs what it can.
func Parse(content string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Links: make([]Link, 0),
		Text:  make([]string, 0),
	}
	traverse(root, doc)
	return doc, nil
}

// ExtractLinks extracts only the anchors from HTML content.
func ExtractLinks(content string) ([]Link, error) {
	doc, err := Parse(content)
	if err != nil {
		return nil, err
	}
	return doc.Links, nil
}

// Title extracts the page title. The second return is false when the page
// has no title element.
func Title(content string) (string, bool) {
	doc, err := Parse(content)
	if err != nil || doc.Title == "" {
		return "", false
	}
	return doc.Title, true
}

func traverse(n *html.Node, doc *Document) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "title":
			if doc.Title == "" {
				doc.Title = strings.TrimSpace(textContent(n))
			}
		case "a":
			if link, ok := parseAnchor(n); ok {
				doc.Links = append(doc.Links, link)
			}
		}
	}

	// Collect visible text (skip script/style; the title is rendered separately)
	if n.Type == html.TextNode {
		parent := n.Parent
		if parent != nil && parent.Data != "script" && parent.Data != "style" && parent.Data != "title" {
			if text := strings.TrimSpace(n.Data); text != "" {
				doc.Text = append(doc.Text, text)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		traverse(c, doc)
	}
}

// parseAnchor reads an anchor element, skipping non-navigable hrefs.
func parseAnchor(n *html.Node) (Link, bool) {
	href := getAttr(n, "href")
	if href == "" || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "#") {
		return Link{}, false
	}

	return Link{
		Text: strings.TrimSpace(textContent(n)),
		Href: href,
	}, true
}

// Helper functions

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var buf bytes.Buffer
	collectText(n, &buf)
	return buf.String()
}

func collectText(n *html.Node, buf *bytes.Buffer) {
	if n.Type == html.TextNode {
		buf.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, buf)
	}
}
