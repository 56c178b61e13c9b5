// Package catalog holds the tool catalog: static loading, aggregation
// with the proxy listing, and relevance ranking.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mcpscout/mcpscout/internal/common"
	"github.com/mcpscout/mcpscout/internal/models"
)

// DefaultDataFile is the ranked static catalog read at process start.
const DefaultDataFile = "ranked_mcp_data.enriched.json"

// LoadStatic reads the static catalog from a JSON array file. A missing
// or malformed file is fatal to startup, so the error propagates.
// Entries with empty names and duplicate names are dropped with a warning.
func LoadStatic(path string, logger *common.Logger) ([]models.Tool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var tools []models.Tool
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	return validate(tools, logger), nil
}

// validate filters catalog entries, logging warnings for invalid or
// duplicate tools.
func validate(tools []models.Tool, logger *common.Logger) []models.Tool {
	seen := make(map[string]bool, len(tools))
	valid := make([]models.Tool, 0, len(tools))
	for _, t := range tools {
		if t.Name == "" {
			logger.Warn().Msg("skipping catalog tool with empty name")
			continue
		}
		if seen[t.Name] {
			logger.Warn().Str("name", t.Name).Msg("skipping duplicate catalog tool")
			continue
		}
		seen[t.Name] = true
		valid = append(valid, t)
	}
	return valid
}
