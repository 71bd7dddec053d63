// Package transcript converts the loosely typed chat history exposed by
// the conversation runtime into strictly parsed utterances. Records that
// cannot be parsed are dropped rather than faulted.
package transcript

import "strings"

// Role identifies the speaker of an utterance.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Utterance is a single parsed conversation turn.
type Utterance struct {
	Role Role
	Text string
}

// Item is a raw chat-history record as produced by the runtime.
// Content may be a string or a list of fragments depending on the
// runtime's internal representation.
type Item struct {
	Role    string
	Content any
}

// Parse extracts utterances from raw history items. The "model" role is
// normalized to assistant; items with any other non-user role, a missing
// role, or content that yields no text are dropped.
func Parse(items []Item) []Utterance {
	var turns []Utterance
	for _, item := range items {
		role, ok := parseRole(item.Role)
		if !ok {
			continue
		}
		text := strings.TrimSpace(flatten(item.Content))
		if text == "" {
			continue
		}
		turns = append(turns, Utterance{Role: role, Text: text})
	}
	return turns
}

func parseRole(raw string) (Role, bool) {
	switch raw {
	case "user":
		return RoleUser, true
	case "assistant", "model":
		return RoleAssistant, true
	default:
		return "", false
	}
}

// flatten renders runtime content as plain text. Fragment lists are
// concatenated in order; non-string fragments are skipped.
func flatten(content any) string {
	switch c := content.(type) {
	case string:
		return c
	case []string:
		return strings.Join(c, "")
	case []any:
		var b strings.Builder
		for _, frag := range c {
			if s, ok := frag.(string); ok {
				b.WriteString(s)
			}
		}
		return b.String()
	default:
		return ""
	}
}
