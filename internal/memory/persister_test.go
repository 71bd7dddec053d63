package memory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/transcript"
)

func TestPersistAllNoise(t *testing.T) {
	store := &fakeStore{}
	p := NewSessionPersister(store, "bruce", nil)

	turns := []transcript.Utterance{
		{Role: transcript.RoleUser, Text: "Hi there"},
		{Role: transcript.RoleAssistant, Text: "Hello, sir."},
		{Role: transcript.RoleUser, Text: "Thanks, bye!"},
	}
	if err := p.Persist(context.Background(), turns); err != nil {
		t.Fatal(err)
	}
	if store.writes() != 0 {
		t.Fatalf("expected no writes for all-noise transcript, got %d", store.writes())
	}
}

func TestPersistScenario(t *testing.T) {
	store := &fakeStore{}
	p := NewSessionPersister(store, "bruce", nil)

	turns := []transcript.Utterance{
		{Role: transcript.RoleUser, Text: "What's my favorite color?"},
		{Role: transcript.RoleAssistant, Text: "Your favorite color is blue, sir."},
		{Role: transcript.RoleUser, Text: "Thanks, bye!"},
	}
	if err := p.Persist(context.Background(), turns); err != nil {
		t.Fatal(err)
	}
	if store.writes() != 1 {
		t.Fatalf("expected exactly one write, got %d", store.writes())
	}

	stored := store.added[0][0].Content
	if !strings.HasPrefix(stored, SummaryMarker) {
		t.Fatalf("stored summary missing marker: %q", stored)
	}
	if !strings.Contains(stored, "favorite color") || !strings.Contains(stored, "blue") {
		t.Fatalf("stored summary missing content: %q", stored)
	}
	if strings.Contains(stored, "bye") {
		t.Fatalf("noise turn leaked into summary: %q", stored)
	}
	if len(stored) > MaxSummaryLen {
		t.Fatalf("stored summary too long: %d", len(stored))
	}
}

func TestPersistIdempotence(t *testing.T) {
	store := &fakeStore{}
	store.searchFn = func(query string, _ int) ([]Result, error) {
		// Serve back whatever was last written, like the real store would.
		store.mu.Lock()
		defer store.mu.Unlock()
		if len(store.added) == 0 {
			return nil, nil
		}
		last := store.added[len(store.added)-1]
		return []Result{{Memory: last[0].Content}}, nil
	}
	p := NewSessionPersister(store, "bruce", nil)

	turns := []transcript.Utterance{
		{Role: transcript.RoleUser, Text: "Schedule the board meeting for Thursday morning."},
		{Role: transcript.RoleAssistant, Text: "The board meeting is on Thursday at nine, sir."},
	}

	if err := p.Persist(context.Background(), turns); err != nil {
		t.Fatal(err)
	}
	if err := p.Persist(context.Background(), turns); err != nil {
		t.Fatal(err)
	}
	if store.writes() != 1 {
		t.Fatalf("expected one write across two identical persists, got %d", store.writes())
	}
}

func TestPersistWritesWhenLookupFails(t *testing.T) {
	store := &fakeStore{
		searchFn: func(string, int) ([]Result, error) {
			return nil, errors.New("timeout")
		},
	}
	p := NewSessionPersister(store, "bruce", nil)

	turns := []transcript.Utterance{
		{Role: transcript.RoleUser, Text: "Remember that Alfred's birthday is in September."},
	}
	if err := p.Persist(context.Background(), turns); err != nil {
		t.Fatal(err)
	}
	if store.writes() != 1 {
		t.Fatalf("lookup failure should not block persistence, got %d writes", store.writes())
	}
}

func TestPersistSwallowsWriteFailure(t *testing.T) {
	store := &fakeStore{addErr: errors.New("service unavailable")}
	p := NewSessionPersister(store, "bruce", nil)

	turns := []transcript.Utterance{
		{Role: transcript.RoleUser, Text: "Remember that Alfred's birthday is in September."},
	}
	// The error is informational; it must not panic or wedge shutdown.
	_ = p.Persist(context.Background(), turns)
}

func TestPersistExcludesToolDumps(t *testing.T) {
	store := &fakeStore{}
	p := NewSessionPersister(store, "bruce", nil)

	turns := []transcript.Utterance{
		{Role: transcript.RoleUser, Text: "Note that the penthouse alarm code changed this week."},
		{Role: transcript.RoleAssistant, Text: "Relevant memories:\n- alarm code is 4812"},
	}
	if err := p.Persist(context.Background(), turns); err != nil {
		t.Fatal(err)
	}
	stored := store.added[0][0].Content
	if strings.Contains(stored, "Relevant memories") {
		t.Fatalf("tool output echo leaked into summary: %q", stored)
	}
}

func TestPersistAppliesRedaction(t *testing.T) {
	store := &fakeStore{}
	redact := func(s string) string {
		return strings.ReplaceAll(s, "bruce@wayne.example", "[EMAIL_1]")
	}
	p := NewSessionPersister(store, "bruce", redact)

	turns := []transcript.Utterance{
		{Role: transcript.RoleUser, Text: "My personal address is bruce@wayne.example, use that one."},
	}
	if err := p.Persist(context.Background(), turns); err != nil {
		t.Fatal(err)
	}
	stored := store.added[0][0].Content
	if strings.Contains(stored, "bruce@wayne.example") {
		t.Fatalf("redaction not applied: %q", stored)
	}
	if !strings.Contains(stored, "[EMAIL_1]") {
		t.Fatalf("expected placeholder in summary: %q", stored)
	}
}
