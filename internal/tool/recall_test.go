package tool

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/memory"
)

type stubStore struct {
	results []memory.Result
	err     error
	query   string
	limit   int
}

func (s *stubStore) Search(_ context.Context, query, _ string, limit int) ([]memory.Result, error) {
	s.query, s.limit = query, limit
	return s.results, s.err
}

func (s *stubStore) Add(context.Context, []memory.Message, string, bool) error {
	return nil
}

func TestRecallMemoryResults(t *testing.T) {
	store := &stubStore{results: []memory.Result{
		{Memory: "Favorite color is blue"},
		{Memory: "  "},
		{Memory: "Full name is Bruce Wayne"},
	}}
	tool := NewRecallMemoryTool(store, "bruce", 10)

	res, err := tool.Execute(context.Background(), json.RawMessage(`{"query":"favorites"}`))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.Output, "Relevant memories:") {
		t.Fatalf("unexpected framing: %q", res.Output)
	}
	if !strings.Contains(res.Output, "- Favorite color is blue") {
		t.Fatalf("missing fact: %q", res.Output)
	}
	if store.query != "favorites" || store.limit != 10 {
		t.Fatalf("unexpected search call: query=%q limit=%d", store.query, store.limit)
	}
}

func TestRecallMemoryNoResults(t *testing.T) {
	tool := NewRecallMemoryTool(&stubStore{}, "bruce", 10)
	res, err := tool.Execute(context.Background(), json.RawMessage(`{"query":"anything"}`))
	if err != nil {
		t.Fatal(err)
	}
	if res.Output != "No relevant memory found." {
		t.Fatalf("unexpected output: %q", res.Output)
	}
}

func TestRecallMemoryLookupFailure(t *testing.T) {
	tool := NewRecallMemoryTool(&stubStore{err: errors.New("down")}, "bruce", 10)
	res, err := tool.Execute(context.Background(), json.RawMessage(`{"query":"anything"}`))
	if err != nil {
		t.Fatal(err)
	}
	if res.Output != "Memory lookup failed." {
		t.Fatalf("failures must become a safe string, got %q", res.Output)
	}
}

func TestRecallMemoryRequiresQuery(t *testing.T) {
	tool := NewRecallMemoryTool(&stubStore{}, "bruce", 10)
	res, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Fatal("expected argument error")
	}
}
