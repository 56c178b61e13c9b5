package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Catalog CatalogConfig `toml:"catalog"`
	Proxy   ProxyConfig   `toml:"proxy"`
	LLM     LLMConfig     `toml:"llm"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// CatalogConfig contains static catalog settings.
type CatalogConfig struct {
	DataFile string `toml:"data_file"`
}

// ProxyConfig contains MCP proxy client settings.
type ProxyConfig struct {
	URL             string `toml:"url"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
	CacheTTLSeconds int    `toml:"cache_ttl_seconds"`
	CacheMaxEntries int    `toml:"cache_max_entries"`
}

// Timeout returns the proxy call timeout as a duration.
func (p ProxyConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// CacheTTL returns the proxy cache TTL; zero disables caching.
func (p ProxyConfig) CacheTTL() time.Duration {
	return time.Duration(p.CacheTTLSeconds) * time.Second
}

// LLMConfig contains chat completion settings. APIKey is required only
// for the AI recommendation endpoint.
type LLMConfig struct {
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the chat completion timeout as a duration.
func (l LLMConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
// MCPSCOUT_* variables cover the general settings; GROQ_API_KEY and
// MCP_PROXY_URL keep their historical names.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("MCPSCOUT_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("MCPSCOUT_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if dataFile := os.Getenv("MCPSCOUT_DATA_FILE"); dataFile != "" {
		config.Catalog.DataFile = dataFile
	}
	if level := os.Getenv("MCPSCOUT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if model := os.Getenv("MCPSCOUT_LLM_MODEL"); model != "" {
		config.LLM.Model = model
	}
	if proxyURL := os.Getenv("MCP_PROXY_URL"); proxyURL != "" {
		config.Proxy.URL = proxyURL
	}
	if apiKey := os.Getenv("GROQ_API_KEY"); apiKey != "" {
		config.LLM.APIKey = apiKey
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks mandatory configuration, returning one message per issue.
func (c *Config) Validate() []string {
	var issues []string
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port must be between 1 and 65535 (got %d)", c.Server.Port))
	}
	if c.Catalog.DataFile == "" {
		issues = append(issues, "catalog.data_file is required (path to the ranked MCP data JSON)")
	}
	if c.Proxy.URL == "" {
		issues = append(issues, "proxy.url is required (MCP proxy base URL, or set MCP_PROXY_URL)")
	}
	return issues
}
