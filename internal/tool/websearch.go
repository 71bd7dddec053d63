package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const maxSearchOutput = 10000

// WebSearchTool provides web search capability using DuckDuckGo HTML.
// Failures never surface as errors; the user gets an apology string.
type WebSearchTool struct {
	userTitle string
	baseURL   string
	client    *http.Client
}

func NewWebSearchTool(userTitle string) *WebSearchTool {
	return &WebSearchTool{
		userTitle: userTitle,
		baseURL:   "https://html.duckduckgo.com/html/",
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (t *WebSearchTool) Name() string { return "search_web" }
func (t *WebSearchTool) Description() string {
	return "Search the web for information. Returns raw search results."
}

func (t *WebSearchTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"query": {
				"type": "string",
				"description": "The search query"
			}
		},
		"required": ["query"]
	}`)
}

func (t *WebSearchTool) Execute(ctx context.Context, args json.RawMessage) (*Result, error) {
	var params struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(args, &params); err != nil || params.Query == "" {
		return &Result{Error: "query is required", IsError: true}, nil
	}

	searchURL := t.baseURL + "?q=" + url.QueryEscape(params.Query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return t.apology(err), nil
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (OracleAI)")

	resp, err := t.client.Do(req)
	if err != nil {
		return t.apology(err), nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 100000))
	if err != nil {
		return t.apology(err), nil
	}

	// Raw HTML is good enough for the model to pick results out of.
	output := string(body)
	if len(output) > maxSearchOutput {
		output = output[:maxSearchOutput] + "\n... (truncated)"
	}

	return &Result{Output: output}, nil
}

func (t *WebSearchTool) apology(err error) *Result {
	log.Printf("[search] web search failed: %v", err)
	return &Result{
		Output: fmt.Sprintf("An error occurred while searching the web, %s.", t.userTitle),
	}
}
