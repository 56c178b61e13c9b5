package proxy

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mcpscout/mcpscout/internal/cache"
	"github.com/mcpscout/mcpscout/internal/common"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 0, common.NewSilentLogger())
}

func TestListTools_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/list_tools" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"name":"fs-tool","description":"reads files","tags":["io"],"mcprank_score":0.8}]`))
	})

	tools, err := client.ListTools(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tools) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(tools))
	}
	if tools[0].Name != "fs-tool" || tools[0].MCPRank != 0.8 {
		t.Errorf("unexpected tool: %+v", tools[0])
	}
}

func TestListTools_DropsNamelessEntries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"ok"},{"description":"nameless"}]`))
	})

	tools, err := client.ListTools(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "ok" {
		t.Errorf("expected only the named entry, got %+v", tools)
	}
}

func TestListTools_BadStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := client.ListTools(context.Background())
	var bad *BadStatusError
	if !errors.As(err, &bad) {
		t.Fatalf("expected BadStatusError, got %v", err)
	}
	if bad.Code != http.StatusBadGateway {
		t.Errorf("expected code 502, got %d", bad.Code)
	}
}

func TestListTools_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no key", http.StatusUnauthorized)
	})

	_, err := client.ListTools(context.Background())
	var bad *BadStatusError
	if !errors.As(err, &bad) {
		t.Fatalf("expected BadStatusError, got %v", err)
	}
	if !bad.Unauthorized() {
		t.Error("expected Unauthorized() for 401")
	}
}

func TestListTools_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	})

	_, err := client.ListTools(context.Background())
	var malformed *MalformedBodyError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedBodyError, got %v", err)
	}
}

func TestListTools_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := New(srv.URL, 0, common.NewSilentLogger())
	_, err := client.ListTools(context.Background())
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
}

func TestListTools_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	client := New(srv.URL, 20*time.Millisecond, common.NewSilentLogger())
	_, err := client.ListTools(context.Background())
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable on timeout, got %v", err)
	}
}

func TestListToolsRaw_PassesBodyThrough(t *testing.T) {
	raw := `[{"name":"fs-tool","extra_field":"preserved"}]`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(raw))
	})

	got, err := client.ListToolsRaw(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != raw {
		t.Errorf("expected raw body unchanged, got %s", got)
	}
}

func TestListTools_NoCacheByDefault(t *testing.T) {
	var calls atomic.Int64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`[]`))
	})

	for i := 0; i < 3; i++ {
		if _, err := client.ListTools(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 upstream calls without cache, got %d", calls.Load())
	}
}

func TestListTools_WithCache(t *testing.T) {
	var calls atomic.Int64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`[{"name":"fs-tool"}]`))
	})
	client.SetCache(cache.New(time.Minute, 8))

	for i := 0; i < 3; i++ {
		tools, err := client.ListTools(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tools) != 1 {
			t.Fatalf("expected 1 tool, got %d", len(tools))
		}
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 upstream call with cache, got %d", calls.Load())
	}
}
