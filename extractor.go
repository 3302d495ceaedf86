package cdpagent

// Extractor extracts the main textual content from an HTML page.
type Extractor interface {
	// Extract returns the visible text of the page's main content
	// element, one trimmed line per text block, blank lines dropped.
	// Returns ENOCONTENT if the page has no extractable content.
	Extract(html string) (string, error)
}
