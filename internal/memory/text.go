// Package memory implements the long-term memory pipeline: startup
// context assembly from the hosted memory service, and end-of-session
// curation (noise filtering, summarization, dedup) before persisting.
package memory

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	trailingPunct = regexp.MustCompile(`[^\w\s]+$`)
)

// Normalize collapses whitespace runs to a single space and trims the
// result. It is total: any input, including empty, yields a valid string.
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// Fingerprint derives a dedup key for a piece of text. Two texts that
// differ only in case, whitespace, or trailing punctuation collapse to
// the same key. It is a heuristic for "same fact", nothing stronger.
func Fingerprint(text string) string {
	return trailingPunct.ReplaceAllString(strings.ToLower(Normalize(text)), "")
}
