package models

import (
	"encoding/json"
	"testing"
)

func TestWithSource_ReturnsStampedCopy(t *testing.T) {
	orig := Tool{Name: "fs-tool", MCPRank: 0.8}

	stamped := orig.WithSource(SourceProxy)
	if stamped.Source != SourceProxy {
		t.Errorf("expected proxy source, got %q", stamped.Source)
	}
	if orig.Source != "" {
		t.Errorf("expected original untouched, got %q", orig.Source)
	}
}

func TestTool_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Tool{Name: "fs-tool", Description: "reads files", Tags: []string{"io"}, MCPRank: 0.8, Source: SourceStatic})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{"name", "description", "tags", "mcprank_score", "source"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("expected field %q in %s", key, data)
		}
	}
}

func TestTool_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(Tool{Name: "bare"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"name":"bare"}` {
		t.Errorf("expected empty fields omitted, got %s", data)
	}
}
