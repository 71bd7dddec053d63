package tool

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/memory"
)

// RecallMemoryTool lets the model search stored user facts mid-session.
// Its output framing strings are recognized by the persistence pipeline
// so echoed lookups are never re-stored as conversation.
type RecallMemoryTool struct {
	store  memory.Store
	userID string
	limit  int
}

func NewRecallMemoryTool(store memory.Store, userID string, limit int) *RecallMemoryTool {
	if limit <= 0 {
		limit = 10
	}
	return &RecallMemoryTool{store: store, userID: userID, limit: limit}
}

func (t *RecallMemoryTool) Name() string { return "recall_memory" }
func (t *RecallMemoryTool) Description() string {
	return "Search stored user-specific facts. Use for personal questions like name, favorites, preferences."
}

func (t *RecallMemoryTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"query": {
				"type": "string",
				"description": "What to look up, e.g. \"full name\" or \"favorite color\""
			}
		},
		"required": ["query"]
	}`)
}

func (t *RecallMemoryTool) Execute(ctx context.Context, args json.RawMessage) (*Result, error) {
	var params struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(args, &params); err != nil || params.Query == "" {
		return &Result{Error: "query is required", IsError: true}, nil
	}

	sctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	results, err := t.store.Search(sctx, params.Query, t.userID, t.limit)
	if err != nil {
		log.Printf("[recall] memory search failed: %v", err)
		return &Result{Output: "Memory lookup failed."}, nil
	}

	var facts []string
	for _, r := range results {
		if fact := strings.TrimSpace(r.Memory); fact != "" {
			facts = append(facts, "- "+fact)
		}
	}
	if len(facts) == 0 {
		return &Result{Output: "No relevant memory found."}, nil
	}

	return &Result{Output: "Relevant memories:\n" + strings.Join(facts, "\n")}, nil
}
