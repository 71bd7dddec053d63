package tool

import (
	"context"
	"encoding/json"
)

// Tool is the interface for assistant tools. Tools never let errors
// escape to the conversation: failures become apology strings or an
// error-flagged Result, so the assistant can always answer something.
type Tool interface {
	Name() string
	Description() string
	Parameters() json.RawMessage // JSON Schema
	Execute(ctx context.Context, args json.RawMessage) (*Result, error)
}

// Result is the output of a tool execution.
type Result struct {
	Output  string `json:"output"`
	Error   string `json:"error,omitempty"`
	IsError bool   `json:"is_error"`
}
