package memory

import (
	"regexp"
	"strings"

	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/transcript"
)

// Tuned filtering thresholds, all in bytes. They only gate
// comparisons, never slicing, so multibyte text is safe either way.
// These are heuristics, not invariants; adjust with care and re-run
// the noise tests.
const (
	// MinMeaningfulLen is the shortest normalized text worth keeping.
	MinMeaningfulLen = 12

	// SmallTalkCutoff is the length above which a small-talk pattern
	// match no longer disqualifies a message.
	SmallTalkCutoff = 60

	// ToolDumpLen is the raw length above which text is assumed to be
	// an echoed tool output rather than conversation.
	ToolDumpLen = 1500
)

// smallTalkPatterns match greetings, thanks, and short affirmatives
// against lowercased normalized text.
var smallTalkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(?:hi|hey|hello|yo|hiya|howdy)\b`),
	regexp.MustCompile(`^good (?:morning|afternoon|evening|night)\b`),
	regexp.MustCompile(`\bhow (?:are|r) (?:you|u)\b`),
	regexp.MustCompile(`^(?:thanks|thank you|thx|ty)\b`),
	regexp.MustCompile(`^(?:ok|okay|k|fine|cool|nice|great|yes|yeah|yep|no|nope|bye|goodbye|see ya|see you)[\s.!?]*$`),
}

// ackLeadIns are assistant acknowledgement openers. An assistant turn
// starting with one of these is a courtesy response, not a fact.
var ackLeadIns = []string{
	"sure", "okay", "alright", "done", "got it",
	"of course", "will do", "check", "noted",
}

// IsNoise reports whether a single utterance is conversationally
// meaningless and should be excluded from long-term storage.
// First matching rule wins.
func IsNoise(text string, role transcript.Role) bool {
	norm := Normalize(text)
	if norm == "" {
		return true
	}
	if len(norm) < MinMeaningfulLen {
		return true
	}

	lower := strings.ToLower(norm)
	if len(norm) < SmallTalkCutoff {
		for _, p := range smallTalkPatterns {
			if p.MatchString(lower) {
				return true
			}
		}
	}

	if role == transcript.RoleAssistant {
		for _, lead := range ackLeadIns {
			if strings.HasPrefix(lower, lead) {
				return true
			}
		}
	}

	return false
}

// LooksLikeToolDump reports whether text is an echo of the recall tool's
// output framing, or simply too large to be a spoken turn.
func LooksLikeToolDump(text string) bool {
	if len(text) > ToolDumpLen {
		return true
	}
	lower := strings.ToLower(text)
	return strings.Contains(lower, "no relevant memory found") ||
		strings.Contains(lower, "relevant memories:")
}
