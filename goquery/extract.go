// Package goquery implements cdpagent.Extractor using CSS selection over
// parsed HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
	"golang.org/x/net/html"
)

// contentSelectors are tried in priority order; the first selector whose
// element yields visible text supplies the content. The document body is
// the final fallback.
var contentSelectors = []string{
	"main",
	"article",
	"div.documentation",
	"div.content",
	"div#content",
	"div.docs-content",
}

// Ensure Extractor implements cdpagent.Extractor at compile time.
var _ cdpagent.Extractor = (*Extractor)(nil)

// Extractor extracts the main textual content from documentation pages,
// skipping navigation, scripts and styling.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the visible text of the page's main content element:
// one trimmed line per text block, blank lines dropped.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", cdpagent.Errorf(cdpagent.EINTERNAL, "Unexpected error: %v", err)
	}

	for _, selector := range contentSelectors {
		if found := doc.Find(selector); found.Length() > 0 {
			if text := visibleText(found.First()); text != "" {
				return text, nil
			}
		}
	}

	if text := visibleText(doc.Find("body")); text != "" {
		return text, nil
	}
	return "", cdpagent.Errorf(cdpagent.ENOCONTENT, "No content found on the page")
}

// visibleText gathers the text nodes under sel in document order.
func visibleText(sel *goquery.Selection) string {
	var lines []string
	for _, node := range sel.Nodes {
		collectText(node, &lines)
	}
	return strings.Join(lines, "\n")
}

func collectText(n *html.Node, lines *[]string) {
	switch n.Type {
	case html.TextNode:
		if s := strings.TrimSpace(n.Data); s != "" {
			*lines = append(*lines, s)
		}
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, lines)
	}
}
