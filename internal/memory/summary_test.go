package memory

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/transcript"
)

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil); got != "" {
		t.Fatalf("expected empty summary, got %q", got)
	}
	if got := Summarize([]transcript.Utterance{{Role: transcript.RoleUser, Text: "  "}}); got != "" {
		t.Fatalf("expected empty summary for blank turns, got %q", got)
	}
}

func TestSummarizeFormat(t *testing.T) {
	turns := []transcript.Utterance{
		{Role: transcript.RoleUser, Text: "What's my favorite color?"},
		{Role: transcript.RoleAssistant, Text: "Your favorite color is blue, sir."},
	}

	got := Summarize(turns)
	if !strings.HasPrefix(got, SummaryMarker) {
		t.Fatalf("summary should start with marker, got %q", got)
	}
	if !strings.Contains(got, "User: What's my favorite color?") {
		t.Fatalf("missing user segment: %q", got)
	}
	if !strings.Contains(got, "Assistant: Your favorite color is blue, sir.") {
		t.Fatalf("missing assistant segment: %q", got)
	}
	if !strings.Contains(got, " || ") {
		t.Fatalf("segments should be joined by double bar: %q", got)
	}
	if len(got) > MaxSummaryLen {
		t.Fatalf("summary too long: %d", len(got))
	}
}

func TestSummarizeOmitsEmptySegments(t *testing.T) {
	turns := []transcript.Utterance{
		{Role: transcript.RoleUser, Text: "Remember that my passport number expires in March."},
	}
	got := Summarize(turns)
	if strings.Contains(got, "Assistant:") {
		t.Fatalf("assistant segment should be omitted: %q", got)
	}
	if strings.Contains(got, " || ") {
		t.Fatalf("no separator expected with a single segment: %q", got)
	}
}

func TestSummarizeKeepsOnlyRecentTurns(t *testing.T) {
	var turns []transcript.Utterance
	for i := 0; i < 20; i++ {
		turns = append(turns, transcript.Utterance{
			Role: transcript.RoleUser,
			Text: fmt.Sprintf("user topic %d", i),
		})
		turns = append(turns, transcript.Utterance{
			Role: transcript.RoleAssistant,
			Text: fmt.Sprintf("assistant reply %d", i),
		})
	}

	got := Summarize(turns)
	if strings.Contains(got, "user topic 11") {
		t.Fatalf("older user turns should be dropped: %q", got)
	}
	if !strings.Contains(got, "user topic 12") {
		t.Fatalf("expected 8th-from-last user turn: %q", got)
	}
	if strings.Contains(got, "assistant reply 15") {
		t.Fatalf("older assistant turns should be dropped: %q", got)
	}
	if !strings.Contains(got, "assistant reply 16") {
		t.Fatalf("expected 4th-from-last assistant turn: %q", got)
	}
}

func TestSummarizeHardCap(t *testing.T) {
	long := strings.Repeat("the quick brown fox jumps over the lazy dog ", 20)
	var turns []transcript.Utterance
	for i := 0; i < 12; i++ {
		turns = append(turns, transcript.Utterance{Role: transcript.RoleUser, Text: long})
	}

	if got := Summarize(turns); len(got) > MaxSummaryLen {
		t.Fatalf("summary exceeds cap: %d chars", len(got))
	}
}

func TestSummarizeCapKeepsValidUTF8(t *testing.T) {
	// Two-byte runes with a one-byte lead-in put a rune interior at the
	// cap offset, so a byte-exact cut would split a character.
	long := "x" + strings.Repeat("é", 600)
	var turns []transcript.Utterance
	for i := 0; i < 12; i++ {
		turns = append(turns, transcript.Utterance{Role: transcript.RoleUser, Text: long})
	}

	got := Summarize(turns)
	if len(got) > MaxSummaryLen {
		t.Fatalf("summary exceeds cap: %d chars", len(got))
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got[len(got)-8:])
	}
}
