// Package proxy talks to the remote MCP proxy service that enumerates
// live tool servers.
package proxy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mcpscout/mcpscout/internal/cache"
	"github.com/mcpscout/mcpscout/internal/common"
	"github.com/mcpscout/mcpscout/internal/models"
)

// maxResponseSize caps the proxy response body to prevent OOM from
// unexpectedly large responses.
const maxResponseSize = 1 << 20 // 1MB

// DefaultTimeout is the single timeout applied to every proxy call path.
const DefaultTimeout = 5 * time.Second

// listToolsPath is the enumeration endpoint exposed by the proxy.
const listToolsPath = "/list_tools"

// Client fetches tool listings from the MCP proxy.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	cache      *cache.ResponseCache
}

// New creates a proxy client targeting the given base URL. A zero or
// negative timeout falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration, logger *common.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SetCache enables response caching for tool listings. A nil cache
// disables caching, which is the default: every call re-fetches.
func (c *Client) SetCache(rc *cache.ResponseCache) {
	c.cache = rc
}

// BaseURL returns the configured proxy base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListTools fetches the tool listing from the proxy. Errors are typed:
// ErrUnreachable for transport failures, BadStatusError for non-2xx
// responses, MalformedBodyError for unparseable bodies.
func (c *Client) ListTools(ctx context.Context) ([]models.Tool, error) {
	if c.cache != nil {
		if cached, ok := c.cache.Get(listToolsPath); ok {
			return decodeTools(cached.Body)
		}
	}

	body, err := c.get(ctx, listToolsPath)
	if err != nil {
		return nil, err
	}

	tools, err := decodeTools(body)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(listToolsPath, &cache.CachedResponse{
			StatusCode: http.StatusOK,
			Body:       body,
		})
	}
	return tools, nil
}

// ListToolsRaw fetches the tool listing and returns the raw JSON body
// after shape validation. Used by the /list_tools passthrough endpoint,
// which forwards the proxy's JSON unchanged.
func (c *Client) ListToolsRaw(ctx context.Context) (json.RawMessage, error) {
	body, err := c.get(ctx, listToolsPath)
	if err != nil {
		return nil, err
	}
	if _, err := decodeTools(body); err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// get performs a GET request to the given path on the proxy.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	c.logger.Debug().Str("method", "GET").Str("path", path).Msg("proxy request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Warn().Str("method", "GET").Str("path", path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("proxy request failed")
		return nil, unreachable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, unreachable(fmt.Errorf("failed to read response: %w", err))
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("proxy response")

	if resp.StatusCode != http.StatusOK {
		return nil, &BadStatusError{Code: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// decodeTools parses a JSON array of tool descriptors, dropping entries
// with empty names. An unexpected shape surfaces as MalformedBodyError.
func decodeTools(body []byte) ([]models.Tool, error) {
	var tools []models.Tool
	if err := json.Unmarshal(body, &tools); err != nil {
		return nil, &MalformedBodyError{Err: err}
	}
	valid := make([]models.Tool, 0, len(tools))
	for _, t := range tools {
		if t.Name == "" {
			continue
		}
		valid = append(valid, t)
	}
	return valid, nil
}
