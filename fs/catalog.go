// Package fs loads the CDP task catalog from the local filesystem.
package fs

import (
	"encoding/json"
	"log/slog"
	"os"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

// LoadCatalog reads a CDP task catalog from path.
//
// A missing or malformed file degrades to an empty catalog rather than
// failing startup: the service stays up but recognizes no CDPs.
func LoadCatalog(path string, logger *slog.Logger) *cdpagent.Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("error loading CDP task catalog", "path", path, "error", err)
		return cdpagent.NewCatalog(nil)
	}

	var entries map[string]map[string]cdpagent.TaskDescriptor
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Error("error parsing CDP task catalog", "path", path, "error", err)
		return cdpagent.NewCatalog(nil)
	}

	catalog := cdpagent.NewCatalog(entries)
	logger.Info("loaded CDP task catalog", "path", path, "platforms", len(catalog.CDPs()))
	return catalog
}
