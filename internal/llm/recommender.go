// Package llm bridges a task description to MCP server recommendations
// via a chat-completion model.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/mcpscout/mcpscout/internal/common"
	"github.com/mcpscout/mcpscout/internal/models"
)

// DefaultTimeout bounds the outbound chat completion call.
const DefaultTimeout = 60 * time.Second

const systemPrompt = "You help map tasks to the best MCP servers from a list."

// Config holds chat model settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Recommender asks a chat model to pick the best MCP servers for a task
// from a pre-filtered candidate list. The model's textual answer is
// returned verbatim; claimed tool names are not cross-checked against the
// candidate set.
type Recommender struct {
	model   model.BaseChatModel
	timeout time.Duration
	logger  *common.Logger
}

// New creates a Recommender backed by the configured chat model.
func New(ctx context.Context, cfg Config, logger *common.Logger) (*Recommender, error) {
	chatModel, err := initializeModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize model: %w", err)
	}
	return NewWithModel(chatModel, cfg.Timeout, logger), nil
}

// NewWithModel creates a Recommender around an existing chat model.
func NewWithModel(chatModel model.BaseChatModel, timeout time.Duration, logger *common.Logger) *Recommender {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Recommender{
		model:   chatModel,
		timeout: timeout,
		logger:  logger,
	}
}

// Recommend submits the task and candidate list to the model and returns
// the first choice's content as opaque free text.
func (r *Recommender) Recommend(ctx context.Context, task string, topK int, candidates []models.Tool) (string, error) {
	prompt, err := BuildPrompt(task, topK, candidates)
	if err != nil {
		return "", err
	}

	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(prompt),
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	response, err := r.model.Generate(ctx, messages)
	duration := time.Since(start)
	if err != nil {
		r.logger.Warn().Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("chat completion failed")
		return "", fmt.Errorf("chat completion: %w", err)
	}

	r.logger.Debug().Int64("duration_ms", duration.Milliseconds()).Int("candidates", len(candidates)).Msg("chat completion ok")
	return response.Content, nil
}

// BuildPrompt embeds the candidate list and requested count into the user
// prompt sent alongside the fixed system instruction.
func BuildPrompt(task string, topK int, candidates []models.Tool) (string, error) {
	listing, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode candidates: %w", err)
	}

	return fmt.Sprintf(`You are an intelligent assistant helping find the right MCP (Model Context Protocol) servers.

Given the following task: %q

Choose the most relevant MCPs from this list based on tags, descriptions, and capabilities:
%s

Return a list of top %d MCPs that best help accomplish the task, with brief explanation for each.`,
		task, listing, topK), nil
}
