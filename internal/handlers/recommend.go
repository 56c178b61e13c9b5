package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mcpscout/mcpscout/internal/common"
	"github.com/mcpscout/mcpscout/internal/models"
)

// RecommendFunc ranks the static catalog for a query.
type RecommendFunc func(query string, topK int) []models.Tool

// AIRecommendFunc aggregates, pre-filters, and asks the chat model for a
// recommendation. The returned string is the model's free-text answer.
type AIRecommendFunc func(ctx context.Context, task string, topK int) (string, error)

// ListToolsRawFunc fetches the proxy's tool listing as raw JSON.
type ListToolsRawFunc func(ctx context.Context) (json.RawMessage, error)

// RecommendHandler handles GET /recommend: direct recommendation from the
// static catalog only.
type RecommendHandler struct {
	logger    *common.Logger
	recommend RecommendFunc
}

// NewRecommendHandler creates a new direct recommendation handler.
func NewRecommendHandler(logger *common.Logger, recommend RecommendFunc) *RecommendHandler {
	return &RecommendHandler{logger: logger, recommend: recommend}
}

// ServeHTTP handles GET /recommend?query=<string>&top_k=<int>.
func (h *RecommendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	query := r.URL.Query().Get("query")
	if query == "" {
		WriteError(w, http.StatusBadRequest, "query parameter is required")
		return
	}
	topK := TopKParam(r)

	recommendations := h.recommend(query, topK)

	h.logger.Debug().Str("query", query).Int("top_k", topK).Int("results", len(recommendations)).Msg("recommendation served")

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"query":           query,
		"recommendations": recommendations,
	})
}

// AIRecommendHandler handles GET /recommend-ai: task-to-recommendation via
// the chat model. Upstream failures are reported in the body with HTTP 200;
// the error-in-body convention is part of the endpoint contract.
type AIRecommendHandler struct {
	logger    *common.Logger
	recommend AIRecommendFunc
}

// NewAIRecommendHandler creates a new AI recommendation handler.
// A nil recommend func means no API key is configured.
func NewAIRecommendHandler(logger *common.Logger, recommend AIRecommendFunc) *AIRecommendHandler {
	return &AIRecommendHandler{logger: logger, recommend: recommend}
}

// ServeHTTP handles GET /recommend-ai?task=<string>&top_k=<int>.
func (h *AIRecommendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	task := r.URL.Query().Get("task")
	if task == "" {
		WriteError(w, http.StatusBadRequest, "task parameter is required")
		return
	}
	topK := TopKParam(r)

	if h.recommend == nil {
		WriteJSON(w, http.StatusOK, map[string]string{
			"error": "AI recommendations unavailable: GROQ_API_KEY is not configured",
		})
		return
	}

	answer, err := h.recommend(r.Context(), task, topK)
	if err != nil {
		h.logger.Warn().Str("task", task).Str("error", err.Error()).Msg("AI recommendation failed")
		WriteJSON(w, http.StatusOK, map[string]string{
			"error": err.Error(),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"task":         task,
		"llm_response": answer,
	})
}

// ListToolsHandler handles GET /list_tools: forwards the proxy's JSON
// array unchanged, or reports the failure in the body with HTTP 200.
type ListToolsHandler struct {
	logger    *common.Logger
	listTools ListToolsRawFunc
}

// NewListToolsHandler creates a new tool listing handler.
func NewListToolsHandler(logger *common.Logger, listTools ListToolsRawFunc) *ListToolsHandler {
	return &ListToolsHandler{logger: logger, listTools: listTools}
}

// ServeHTTP handles GET /list_tools.
func (h *ListToolsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	raw, err := h.listTools(r.Context())
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("proxy tool listing failed")
		WriteJSON(w, http.StatusOK, map[string]string{
			"error": err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}
