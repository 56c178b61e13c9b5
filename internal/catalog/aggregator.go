package catalog

import (
	"context"

	"github.com/mcpscout/mcpscout/internal/common"
	"github.com/mcpscout/mcpscout/internal/models"
	"github.com/mcpscout/mcpscout/internal/proxy"
)

// Aggregator merges the immutable static catalog with the live proxy
// listing. The static catalog is injected at construction; no process-wide
// state is read at request time.
type Aggregator struct {
	static []models.Tool
	proxy  *proxy.Client
	logger *common.Logger
}

// NewAggregator creates an aggregator over the given static catalog and
// proxy client.
func NewAggregator(static []models.Tool, client *proxy.Client, logger *common.Logger) *Aggregator {
	return &Aggregator{
		static: static,
		proxy:  client,
		logger: logger,
	}
}

// Static returns the static catalog view, every entry stamped source="static".
func (a *Aggregator) Static() []models.Tool {
	out := make([]models.Tool, len(a.static))
	for i, t := range a.static {
		out[i] = t.WithSource(models.SourceStatic)
	}
	return out
}

// Aggregate returns the union of the static catalog and the proxy listing,
// de-duplicated by name. A proxy entry with a name already present replaces
// the static entry in place, so insertion order is preserved; new names are
// appended. Proxy failures degrade gracefully to the static-only view and
// are logged, never raised.
func (a *Aggregator) Aggregate(ctx context.Context) []models.Tool {
	merged := a.Static()
	index := make(map[string]int, len(merged))
	for i, t := range merged {
		index[t.Name] = i
	}

	remote, err := a.proxy.ListTools(ctx)
	if err != nil {
		a.logger.Warn().Str("error", err.Error()).Msg("proxy listing unavailable, serving static catalog only")
		return merged
	}

	for _, t := range remote {
		stamped := t.WithSource(models.SourceProxy)
		if i, ok := index[t.Name]; ok {
			merged[i] = stamped
			continue
		}
		index[t.Name] = len(merged)
		merged = append(merged, stamped)
	}
	return merged
}

// Prefilter aggregates the full catalog and returns the bounded candidate
// list for the LLM bridge.
func (a *Aggregator) Prefilter(ctx context.Context, task string) []models.Tool {
	return Prefilter(a.Aggregate(ctx), task)
}
