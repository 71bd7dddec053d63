package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.mem0.ai"

// Mem0Client implements Store against the hosted mem0 HTTP API.
type Mem0Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// Mem0Config holds configuration for the mem0 client.
type Mem0Config struct {
	APIKey  string
	BaseURL string // optional, defaults to the hosted service
}

// NewMem0Client creates a mem0 API client. The HTTP timeout is a floor;
// callers should still bound individual requests via context.
func NewMem0Client(cfg Mem0Config) *Mem0Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &Mem0Client{
		baseURL: base,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type searchRequest struct {
	Query   string        `json:"query"`
	Filters searchFilters `json:"filters"`
	Limit   int           `json:"limit"`
}

type searchFilters struct {
	UserID string `json:"user_id"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

type addRequest struct {
	Messages []Message `json:"messages"`
	UserID   string    `json:"user_id"`
	Infer    bool      `json:"infer"`
}

func (c *Mem0Client) Search(ctx context.Context, query, userID string, limit int) ([]Result, error) {
	body := searchRequest{
		Query:   query,
		Filters: searchFilters{UserID: userID},
		Limit:   limit,
	}

	var resp searchResponse
	if err := c.post(ctx, "/v1/memories/search/", body, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Mem0Client) Add(ctx context.Context, messages []Message, userID string, infer bool) error {
	body := addRequest{
		Messages: messages,
		UserID:   userID,
		Infer:    infer,
	}
	return c.post(ctx, "/v1/memories/", body, nil)
}

func (c *Mem0Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("mem0 request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mem0 %s: status %d: %s", path, resp.StatusCode, string(snippet))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
