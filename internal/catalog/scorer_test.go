package catalog

import (
	"fmt"
	"testing"

	"github.com/mcpscout/mcpscout/internal/models"
)

func toolFixture(n int) []models.Tool {
	tools := make([]models.Tool, n)
	for i := 0; i < n; i++ {
		tools[i] = models.Tool{
			Name:        fmt.Sprintf("tool-%d", i),
			Description: fmt.Sprintf("does thing number %d", i),
			Tags:        []string{"misc"},
			MCPRank:     float64(i) / float64(n+1),
		}
	}
	return tools
}

func TestDirectScore_DescriptionSubstring(t *testing.T) {
	tool := models.Tool{Name: "fetch-mcp", Description: "Fetches web pages and converts HTML"}

	if got := DirectScore(tool, "fetches web pages"); got != 3 {
		t.Errorf("expected score 3 for description substring, got %v", got)
	}
	if got := DirectScore(tool, "FETCHES WEB PAGES"); got != 3 {
		t.Errorf("expected case-insensitive description match, got %v", got)
	}
}

func TestDirectScore_TagToken(t *testing.T) {
	tool := models.Tool{Name: "fs", Tags: []string{"filesystem", "io"}}

	if got := DirectScore(tool, "some io heavy work"); got != 2 {
		t.Errorf("expected score 2 for tag token in query, got %v", got)
	}
	if got := DirectScore(tool, "nothing relevant"); got != 0 {
		t.Errorf("expected score 0 without tag match, got %v", got)
	}
}

func TestDirectScore_NameIsCaseSensitive(t *testing.T) {
	tool := models.Tool{Name: "GitHub-MCP"}

	if got := DirectScore(tool, "set up GitHub-MCP for me"); got != 5 {
		t.Errorf("expected score 5 for name in query, got %v", got)
	}
	// Name matching keeps original case on both sides.
	if got := DirectScore(tool, "set up github-mcp for me"); got != 0 {
		t.Errorf("expected score 0 for case-mismatched name, got %v", got)
	}
}

func TestDirectScore_MCPRankWeight(t *testing.T) {
	tool := models.Tool{Name: "x", MCPRank: 0.8}

	if got := DirectScore(tool, "unrelated"); got != 4.0 {
		t.Errorf("expected 0.8*5=4.0, got %v", got)
	}
}

// The worked example: neither description nor tags nor name match the
// query as substrings, so ranking is decided by mcprank_score alone.
func TestRecommend_WorkedExample(t *testing.T) {
	static := []models.Tool{
		{Name: "fs-tool", Description: "reads files from disk", Tags: []string{"filesystem", "io"}, MCPRank: 0.8},
		{Name: "web-tool", Description: "fetches web pages", Tags: []string{"http", "web"}, MCPRank: 0.1},
	}

	got := Recommend(static, "read files", 1)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Name != "fs-tool" {
		t.Errorf("expected fs-tool first, got %s", got[0].Name)
	}

	if score := DirectScore(static[0], "read files"); score != 4.0 {
		t.Errorf("expected fs-tool score 4.0 (mcprank only), got %v", score)
	}
	if score := DirectScore(static[1], "read files"); score != 0.5 {
		t.Errorf("expected web-tool score 0.5, got %v", score)
	}
}

func TestRecommend_TopKBound(t *testing.T) {
	static := toolFixture(10)

	tests := []struct {
		topK int
		want int
	}{
		{topK: 5, want: 5},
		{topK: 10, want: 10},
		{topK: 100, want: 10},
		{topK: 1, want: 1},
		{topK: 0, want: 0},
		{topK: -3, want: 0},
	}

	for _, tt := range tests {
		got := Recommend(static, "thing", tt.topK)
		if len(got) != tt.want {
			t.Errorf("topK=%d: expected %d results, got %d", tt.topK, tt.want, len(got))
		}
	}
}

func TestRank_StableOnTies(t *testing.T) {
	// All entries score identically; original catalog order must survive.
	static := []models.Tool{
		{Name: "alpha"},
		{Name: "bravo"},
		{Name: "charlie"},
		{Name: "delta"},
	}

	got := Rank(static, func(models.Tool) float64 { return 1.0 })
	for i, want := range []string{"alpha", "bravo", "charlie", "delta"} {
		if got[i].Name != want {
			t.Errorf("position %d: expected %s, got %s", i, want, got[i].Name)
		}
	}
}

func TestRank_SortedDescending(t *testing.T) {
	static := toolFixture(20)
	score := func(tool models.Tool) float64 { return DirectScore(tool, "thing number") }

	ranked := Rank(static, score)
	for i := 1; i < len(ranked); i++ {
		if score(ranked[i-1]) < score(ranked[i]) {
			t.Errorf("ranking not descending at position %d: %v < %v", i, score(ranked[i-1]), score(ranked[i]))
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	static := toolFixture(5)
	first := static[0].Name

	Rank(static, func(tool models.Tool) float64 { return -tool.MCPRank })

	if static[0].Name != first {
		t.Error("Rank mutated its input slice")
	}
}

func TestPrefilter_Cap(t *testing.T) {
	for _, size := range []int{0, 1, 25, 100} {
		got := Prefilter(toolFixture(size), "thing")
		want := size
		if want > PrefilterLimit {
			want = PrefilterLimit
		}
		if len(got) != want {
			t.Errorf("catalog size %d: expected %d candidates, got %d", size, want, len(got))
		}
	}
}

func TestPrefilterScore_Weights(t *testing.T) {
	tool := models.Tool{
		Name:        "db",
		Description: "runs sql queries",
		Tags:        []string{"database", "sql"},
		MCPRank:     0.5,
	}

	// Description (+2), tag token "sql" (+1), mcprank 0.5*2 (+1).
	if got := PrefilterScore(tool, "runs sql queries"); got != 4.0 {
		t.Errorf("expected prefilter score 4.0, got %v", got)
	}
}

// Raising mcprank_score for an otherwise-fixed descriptor never lowers its
// score or its rank relative to unchanged entries.
func TestScoreMonotonicity(t *testing.T) {
	query := "manage containers"
	base := models.Tool{Name: "docker-mcp", Description: "manages containers", Tags: []string{"docker"}}

	prev := -1.0
	for _, rank := range []float64{0, 0.1, 0.5, 0.9, 1.0} {
		tool := base
		tool.MCPRank = rank
		score := DirectScore(tool, query)
		if score < prev {
			t.Errorf("score decreased when mcprank rose to %v: %v < %v", rank, score, prev)
		}
		prev = score
	}

	// Rank position against a fixed competitor.
	competitor := models.Tool{Name: "other", Description: "unrelated", MCPRank: 0.4}
	low := base
	low.MCPRank = 0.1
	high := base
	high.MCPRank = 0.9

	posOf := func(catalog []models.Tool, name string) int {
		ranked := Rank(catalog, func(tool models.Tool) float64 { return DirectScore(tool, query) })
		for i, t := range ranked {
			if t.Name == name {
				return i
			}
		}
		return -1
	}

	lowPos := posOf([]models.Tool{low, competitor}, "docker-mcp")
	highPos := posOf([]models.Tool{high, competitor}, "docker-mcp")
	if highPos > lowPos {
		t.Errorf("raising mcprank worsened rank position: %d -> %d", lowPos, highPos)
	}
}
