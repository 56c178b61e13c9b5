package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// Groq serves an OpenAI-compatible chat completion API, so the OpenAI
// chat model component is pointed at the Groq base URL.
const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama3-8b-8192"
)

// initializeModel creates the chat model from config.
func initializeModel(ctx context.Context, cfg Config) (model.BaseChatModel, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required: set llm.api_key or GROQ_API_KEY")
	}

	modelCfg := &openai.ChatModelConfig{
		Model:  cfg.Model,
		APIKey: apiKey,
	}
	if modelCfg.Model == "" {
		modelCfg.Model = DefaultModel
	}
	modelCfg.BaseURL = cfg.BaseURL
	if modelCfg.BaseURL == "" {
		modelCfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout > 0 {
		modelCfg.Timeout = cfg.Timeout
	}

	return openai.NewChatModel(ctx, modelCfg)
}
