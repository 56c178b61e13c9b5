package models

// Tool sources set by the catalog aggregator. The persisted static data
// never carries a source; it is stamped at aggregation time.
const (
	SourceStatic = "static"
	SourceProxy  = "proxy"
)

// Tool describes one MCP tool server: a capability an LLM-driven agent
// could invoke. Name is the identity key; on a merge collision the last
// source to write a name wins.
type Tool struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	MCPRank     float64  `json:"mcprank_score,omitempty"`
	Source      string   `json:"source,omitempty"`
}

// WithSource returns a copy of the tool stamped with the given source.
func (t Tool) WithSource(source string) Tool {
	t.Source = source
	return t
}
