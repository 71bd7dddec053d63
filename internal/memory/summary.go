package memory

import (
	"strings"
	"unicode/utf8"

	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/transcript"
)

// SummaryMarker prefixes every stored session summary so it can be
// distinguished from other memory content on retrieval. It is also the
// query text used to fetch summaries back.
const SummaryMarker = "[session summary]"

const (
	// MaxSummaryLen is the hard cap on a rendered summary.
	MaxSummaryLen = 900

	// maxUserTurns / maxAssistantTurns bound how much of the tail of a
	// session makes it into the summary.
	maxUserTurns      = 8
	maxAssistantTurns = 4
)

// Summarize reduces a noise-filtered transcript into one bounded recap
// string. It keeps the last eight user texts and last four assistant
// texts, pipe-joins each side, and caps the result at MaxSummaryLen.
// Returns "" when there is nothing to summarize.
func Summarize(turns []transcript.Utterance) string {
	var userTexts, assistantTexts []string
	for _, turn := range turns {
		text := Normalize(turn.Text)
		if text == "" {
			continue
		}
		switch turn.Role {
		case transcript.RoleUser:
			userTexts = append(userTexts, text)
		case transcript.RoleAssistant:
			assistantTexts = append(assistantTexts, text)
		}
	}

	userTexts = tail(userTexts, maxUserTurns)
	assistantTexts = tail(assistantTexts, maxAssistantTurns)
	if len(userTexts) == 0 && len(assistantTexts) == 0 {
		return ""
	}

	var segments []string
	if len(userTexts) > 0 {
		segments = append(segments, "User: "+strings.Join(userTexts, " | "))
	}
	if len(assistantTexts) > 0 {
		segments = append(segments, "Assistant: "+strings.Join(assistantTexts, " | "))
	}

	summary := SummaryMarker + " " + strings.Join(segments, " || ")
	if len(summary) > MaxSummaryLen {
		cut := MaxSummaryLen
		// back off to a rune boundary so the cap never splits a
		// multibyte character
		for cut > 0 && !utf8.RuneStart(summary[cut]) {
			cut--
		}
		summary = summary[:cut]
	}
	return summary
}

func tail(texts []string, n int) []string {
	if len(texts) <= n {
		return texts
	}
	return texts[len(texts)-n:]
}
