package catalog

import (
	"sort"
	"strings"

	"github.com/mcpscout/mcpscout/internal/models"
)

// DefaultTopK is the result count used when a request omits top_k.
const DefaultTopK = 5

// PrefilterLimit bounds the candidate list handed to the LLM, trading
// recall for prompt size.
const PrefilterLimit = 25

// DirectScore is the relevance formula for direct recommendation.
// Substring checks against the description and tags are case-insensitive;
// the name check keeps original case on both sides.
func DirectScore(t models.Tool, query string) float64 {
	lowerQuery := strings.ToLower(query)

	score := 0.0
	if lowerQuery != "" && strings.Contains(strings.ToLower(t.Description), lowerQuery) {
		score += 3
	}
	if anyTagTokenIn(t.Tags, lowerQuery) {
		score += 2
	}
	if t.Name != "" && strings.Contains(query, t.Name) {
		score += 5
	}
	score += t.MCPRank * 5
	return score
}

// PrefilterScore is the cheaper two-term formula used to pre-filter
// candidates before the LLM call. Kept separate from DirectScore: the
// weights differ and the two are distinct named strategies.
func PrefilterScore(t models.Tool, task string) float64 {
	lowerTask := strings.ToLower(task)

	score := 0.0
	if lowerTask != "" && strings.Contains(strings.ToLower(t.Description), lowerTask) {
		score += 2
	}
	if anyTagTokenIn(t.Tags, lowerTask) {
		score += 1
	}
	score += t.MCPRank * 2
	return score
}

// anyTagTokenIn reports whether any whitespace token of the joined,
// lowercased tag string is a substring of the lowercased query.
func anyTagTokenIn(tags []string, lowerQuery string) bool {
	if len(tags) == 0 || lowerQuery == "" {
		return false
	}
	for _, token := range strings.Fields(strings.ToLower(strings.Join(tags, " "))) {
		if strings.Contains(lowerQuery, token) {
			return true
		}
	}
	return false
}

// Rank sorts tools descending by the given score function. The sort is
// stable: ties preserve original catalog order.
func Rank(tools []models.Tool, score func(models.Tool) float64) []models.Tool {
	type scored struct {
		tool  models.Tool
		score float64
	}
	entries := make([]scored, len(tools))
	for i, t := range tools {
		entries[i] = scored{tool: t, score: score(t)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})

	ranked := make([]models.Tool, len(entries))
	for i, e := range entries {
		ranked[i] = e.tool
	}
	return ranked
}

// Recommend returns the top-K tools from the static catalog for a query.
// topK <= 0 yields an empty result.
func Recommend(static []models.Tool, query string, topK int) []models.Tool {
	if topK <= 0 {
		return []models.Tool{}
	}
	ranked := Rank(static, func(t models.Tool) float64 {
		return DirectScore(t, query)
	})
	if topK < len(ranked) {
		ranked = ranked[:topK]
	}
	return ranked
}

// Prefilter returns at most PrefilterLimit tools from the given catalog,
// most relevant to the task first.
func Prefilter(tools []models.Tool, task string) []models.Tool {
	ranked := Rank(tools, func(t models.Tool) float64 {
		return PrefilterScore(t, task)
	})
	if len(ranked) > PrefilterLimit {
		ranked = ranked[:PrefilterLimit]
	}
	return ranked
}
