package transcript

import "testing"

func TestParseRoles(t *testing.T) {
	items := []Item{
		{Role: "user", Content: "hello"},
		{Role: "model", Content: "hi there"},
		{Role: "assistant", Content: "still here"},
		{Role: "system", Content: "ignored"},
		{Role: "", Content: "ignored too"},
	}

	turns := Parse(items)
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	if turns[1].Role != RoleAssistant {
		t.Fatalf("expected model normalized to assistant, got %s", turns[1].Role)
	}
}

func TestParseFragmentContent(t *testing.T) {
	items := []Item{
		{Role: "user", Content: []any{"what's ", "the ", "weather?"}},
		{Role: "assistant", Content: []string{"Sunny, ", "sir."}},
		{Role: "user", Content: []any{42, "trailing"}},
	}

	turns := Parse(items)
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	if turns[0].Text != "what's the weather?" {
		t.Fatalf("unexpected joined text: %q", turns[0].Text)
	}
	if turns[1].Text != "Sunny, sir." {
		t.Fatalf("unexpected joined text: %q", turns[1].Text)
	}
	if turns[2].Text != "trailing" {
		t.Fatalf("non-string fragments should be skipped, got %q", turns[2].Text)
	}
}

func TestParseDropsEmptyAndUnparsable(t *testing.T) {
	items := []Item{
		{Role: "user", Content: "   "},
		{Role: "user", Content: 123},
		{Role: "user", Content: nil},
	}
	if turns := Parse(items); turns != nil {
		t.Fatalf("expected no turns, got %v", turns)
	}
}
