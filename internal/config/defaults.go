package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8000,
			Host: "localhost",
		},
		Catalog: CatalogConfig{
			DataFile: "ranked_mcp_data.enriched.json",
		},
		Proxy: ProxyConfig{
			URL:             "http://localhost:8080",
			TimeoutSeconds:  5,
			CacheTTLSeconds: 0, // no caching: every call re-fetches
			CacheMaxEntries: 64,
		},
		LLM: LLMConfig{
			BaseURL:        "", // empty: llm package default (Groq endpoint)
			Model:          "",
			APIKey:         "",
			TimeoutSeconds: 60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
