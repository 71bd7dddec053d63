package memory

import "context"

// Result is a single retrieved memory.
type Result struct {
	Memory string `json:"memory"`
}

// Message is a role-tagged piece of content submitted for storage.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Store is the hosted long-term memory service. It is best-effort and
// network-backed: an empty result set means "no match", not an error.
type Store interface {
	// Search retrieves memories for a user matching the query, most
	// relevant first, up to limit.
	Search(ctx context.Context, query, userID string, limit int) ([]Result, error)

	// Add appends content for later retrieval. When infer is true the
	// service derives structured facts from the free text server-side.
	Add(ctx context.Context, messages []Message, userID string, infer bool) error
}
