package memory

import (
	"context"
	"log"

	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/transcript"
)

// SessionPersister compresses a concluded session into at most one
// summary record in the store. It never writes an empty summary and
// never writes a summary whose fingerprint matches the most recently
// stored one.
type SessionPersister struct {
	store  Store
	userID string
	redact func(string) string // optional, applied before storage
}

// NewSessionPersister creates a persister for the given user. redact may
// be nil; when set it is applied to every surviving turn before the
// summary is built, so raw PII never reaches the hosted store.
func NewSessionPersister(store Store, userID string, redact func(string) string) *SessionPersister {
	return &SessionPersister{store: store, userID: userID, redact: redact}
}

// Persist runs the curation pipeline over the session transcript and
// conditionally writes one summary. It is best-effort: every failure is
// logged and the returned error is informational only; callers on the
// shutdown path should not treat it as fatal.
func (p *SessionPersister) Persist(ctx context.Context, turns []transcript.Utterance) error {
	survivors := p.filter(turns)
	if len(survivors) == 0 {
		log.Printf("[memory] nothing to persist: transcript was all noise")
		return nil
	}

	summary := Summarize(survivors)
	if summary == "" {
		return nil
	}

	if prev, ok := p.lastStoredSummary(ctx); ok && Fingerprint(prev) == Fingerprint(summary) {
		log.Printf("[memory] summary unchanged since last session, skipping write")
		return nil
	}

	err := p.store.Add(ctx, []Message{{Role: "user", Content: summary}}, p.userID, true)
	if err != nil {
		log.Printf("[memory] failed to persist session summary: %v", err)
		return err
	}
	log.Printf("[memory] persisted session summary (%d chars)", len(summary))
	return nil
}

func (p *SessionPersister) filter(turns []transcript.Utterance) []transcript.Utterance {
	var survivors []transcript.Utterance
	for _, turn := range turns {
		text := Normalize(turn.Text)
		if text == "" {
			continue
		}
		if IsNoise(text, turn.Role) || LooksLikeToolDump(text) {
			continue
		}
		if p.redact != nil {
			text = p.redact(text)
		}
		survivors = append(survivors, transcript.Utterance{Role: turn.Role, Text: text})
	}
	return survivors
}

// lastStoredSummary fetches the most recent stored summary. A lookup
// failure is treated as "no prior summary": when the store is flaky we
// favor persisting over perfect dedup.
func (p *SessionPersister) lastStoredSummary(ctx context.Context) (string, bool) {
	results, err := p.store.Search(ctx, SummaryMarker, p.userID, 1)
	if err != nil {
		log.Printf("[memory] prior summary lookup failed: %v", err)
		return "", false
	}
	if len(results) == 0 || results[0].Memory == "" {
		return "", false
	}
	return results[0].Memory, true
}
