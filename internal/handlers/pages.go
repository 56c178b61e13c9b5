package handlers

import (
	"context"
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"github.com/mcpscout/mcpscout/internal/common"
	"github.com/mcpscout/mcpscout/internal/models"
)

// ListToolsFunc fetches the parsed proxy tool listing for page rendering.
type ListToolsFunc func(ctx context.Context) ([]models.Tool, error)

// PageHandler serves HTML pages rendered with Go templates.
type PageHandler struct {
	logger    *common.Logger
	templates *template.Template
	recommend RecommendFunc
	listTools ListToolsFunc
	aiAnswer  AIRecommendFunc
}

// NewPageHandler creates a new page handler that loads templates from the
// pages directory.
func NewPageHandler(logger *common.Logger, recommend RecommendFunc, listTools ListToolsFunc, aiAnswer AIRecommendFunc) *PageHandler {
	pagesDir := FindPagesDir()

	templates := template.Must(template.ParseGlob(filepath.Join(pagesDir, "*.html")))

	return &PageHandler{
		logger:    logger,
		templates: templates,
		recommend: recommend,
		listTools: listTools,
		aiAnswer:  aiAnswer,
	}
}

// FindPagesDir locates the pages directory.
func FindPagesDir() string {
	dirs := []string{
		"./pages",
		"../pages",
		"../../pages",
		".",
	}

	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			abs, _ := filepath.Abs(dir)
			return abs
		}
	}

	return "."
}

// render executes a template, logging and returning 500 on failure.
func (h *PageHandler) render(w http.ResponseWriter, templateName string, data map[string]interface{}) {
	if err := h.templates.ExecuteTemplate(w, templateName, data); err != nil {
		if h.logger != nil {
			h.logger.Error().Str("template", templateName).Str("error", err.Error()).Msg("failed to render page")
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Index handles GET /.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", map[string]interface{}{
		"Page": "home",
	})
}

// Search handles GET /search?query=&top_k=.
func (h *PageHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	topK := TopKParam(r)

	var results []models.Tool
	if query != "" {
		results = h.recommend(query, topK)
	}

	h.render(w, "search.html", map[string]interface{}{
		"Page":    "search",
		"Query":   query,
		"TopK":    topK,
		"Results": results,
	})
}

// Tools handles GET /tools, rendering the live proxy listing.
func (h *PageHandler) Tools(w http.ResponseWriter, r *http.Request) {
	var (
		tools   []models.Tool
		listErr string
	)
	if fetched, err := h.listTools(r.Context()); err != nil {
		listErr = err.Error()
	} else {
		tools = fetched
	}

	h.render(w, "tools.html", map[string]interface{}{
		"Page":  "tools",
		"Tools": tools,
		"Error": listErr,
	})
}

// AI handles GET /ai?task=&top_k=.
func (h *PageHandler) AI(w http.ResponseWriter, r *http.Request) {
	task := r.URL.Query().Get("task")
	topK := TopKParam(r)

	var (
		answer string
		aiErr  string
	)
	if task != "" {
		if h.aiAnswer == nil {
			aiErr = "AI recommendations unavailable: GROQ_API_KEY is not configured"
		} else if got, err := h.aiAnswer(r.Context(), task, topK); err != nil {
			aiErr = err.Error()
		} else {
			answer = got
		}
	}

	h.render(w, "ai.html", map[string]interface{}{
		"Page":     "ai",
		"Task":     task,
		"TopK":     topK,
		"Response": answer,
		"Error":    aiErr,
	})
}

// StaticFileHandler serves static files (CSS, JS, images).
func (h *PageHandler) StaticFileHandler(w http.ResponseWriter, r *http.Request) {
	pagesDir := FindPagesDir()
	staticDir := filepath.Join(pagesDir, "static")

	// Remove /static/ prefix from URL path
	path := r.URL.Path[len("/static/"):]
	fullPath := filepath.Join(staticDir, path)

	// Security: prevent directory traversal
	absStaticDir, _ := filepath.Abs(staticDir)
	absFullPath, _ := filepath.Abs(fullPath)
	if len(absFullPath) < len(absStaticDir) || absFullPath[:len(absStaticDir)] != absStaticDir {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, fullPath)
}
