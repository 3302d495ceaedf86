package cdpagent

// DocumentCache stores extracted documentation text keyed by URL with a
// fixed time-to-live. Get skips stale entries without deleting them; the
// next successful fetch overwrites in place. Growth is unbounded by
// design: the key space is the finite set of catalog and root URLs.
type DocumentCache interface {
	// Get returns the cached text for url if present and fresh.
	Get(url string) (text string, ok bool)

	// Set stores text under url, resetting its age.
	Set(url, text string)
}
