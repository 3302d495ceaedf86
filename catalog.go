package cdpagent

import (
	"encoding/json"
	"sort"
)

// TaskDescriptor describes a documented operation within a CDP's
// documentation. In catalog JSON a descriptor is either a bare URL string
// or an object with at least a "url" field; additional object fields are
// reserved and ignored.
type TaskDescriptor struct {
	URL string `json:"url"`
}

// UnmarshalJSON accepts both the bare-string and the structured form.
func (d *TaskDescriptor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.URL = s
		return nil
	}

	type alias TaskDescriptor
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*d = TaskDescriptor(a)
	return nil
}

// Catalog maps CDP display names to their documented tasks. It is loaded
// once at startup and immutable afterwards. The set of valid CDPs
// everywhere in the system is derived from its key set.
type Catalog struct {
	entries map[string]map[string]TaskDescriptor
}

// NewCatalog creates a Catalog from the given entries. A nil map yields an
// empty catalog that recognizes no CDPs.
func NewCatalog(entries map[string]map[string]TaskDescriptor) *Catalog {
	if entries == nil {
		entries = map[string]map[string]TaskDescriptor{}
	}
	return &Catalog{entries: entries}
}

// CDPs returns the CDP names in the catalog, sorted for stable output.
// Never returns nil.
func (c *Catalog) CDPs() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Valid reports whether cdp is a catalog key. Matching is case-sensitive:
// catalog keys are display names and the classifier is instructed to echo
// them verbatim.
func (c *Catalog) Valid(cdp string) bool {
	_, ok := c.entries[cdp]
	return ok
}

// TaskNames returns the task names registered for cdp, sorted.
func (c *Catalog) TaskNames(cdp string) []string {
	tasks := c.entries[cdp]
	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupURL returns the documentation URL registered for (cdp, task).
func (c *Catalog) LookupURL(cdp, task string) (string, bool) {
	d, ok := c.entries[cdp][task]
	if !ok || d.URL == "" {
		return "", false
	}
	return d.URL, true
}

// RootDocumentationURLs maps each known CDP to its documentation root,
// used as a fallback when a question has no matching task entry.
var RootDocumentationURLs = map[string]string{
	"Segment":     "https://segment.com/docs/",
	"mParticle":   "https://docs.mparticle.com/",
	"Lytics":      "https://docs.lytics.com/",
	"Zeotap":      "https://docs.zeotap.com/home/en-us/",
	"Tealium":     "https://docs.tealium.com/",
	"RudderStack": "https://www.rudderstack.com/docs/",
}
