package memory

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
)

// recentQuery is the broad startup query for non-summary material.
const recentQuery = "recent conversation facts preferences tasks decisions"

// ContextAssembler reconstructs a bounded memory context for a new
// session: static profile facts first, stored session summaries next,
// then broadly retrieved recent facts.
type ContextAssembler struct {
	store        Store
	userID       string
	profileFacts []string

	summaryLimit int
	recentLimit  int
	queryTimeout time.Duration
}

// AssemblerConfig holds tuning for the startup context queries.
type AssemblerConfig struct {
	UserID       string
	ProfileFacts []string // optional always-true facts, highest priority
	SummaryLimit int      // summaries are dense, keep this small
	RecentLimit  int
	QueryTimeout time.Duration
}

// NewContextAssembler creates an assembler over the given store.
func NewContextAssembler(store Store, cfg AssemblerConfig) *ContextAssembler {
	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ContextAssembler{
		store:        store,
		userID:       cfg.UserID,
		profileFacts: cfg.ProfileFacts,
		summaryLimit: cfg.SummaryLimit,
		recentLimit:  cfg.RecentLimit,
		queryTimeout: timeout,
	}
}

// Assemble runs the startup queries and renders a single context block.
// The two store queries run concurrently, each bounded by the configured
// timeout; a failed query is logged and contributes nothing. Assemble
// never returns an error: memory being unavailable must not stop the
// session from starting. An empty assembly renders as "".
func (a *ContextAssembler) Assemble(ctx context.Context) string {
	var summaries, recent []string
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		summaries = a.query(ctx, SummaryMarker, a.summaryLimit)
	}()
	go func() {
		defer wg.Done()
		recent = a.query(ctx, recentQuery, a.recentLimit)
	}()
	wg.Wait()

	sections := []struct {
		header string
		lines  []string
	}{
		{"# Known user profile", a.profileFacts},
		{"# Previous session summaries", summaries},
		{"# Recent facts and preferences", recent},
	}

	seen := make(map[string]bool)
	var b strings.Builder
	for _, sec := range sections {
		var kept []string
		for _, line := range sec.lines {
			line = Normalize(line)
			if line == "" || seen[line] {
				continue
			}
			seen[line] = true
			kept = append(kept, line)
		}
		if len(kept) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sec.header + "\n")
		for _, line := range kept {
			b.WriteString("- " + line + "\n")
		}
	}
	return b.String()
}

func (a *ContextAssembler) query(ctx context.Context, query string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	qctx, cancel := context.WithTimeout(ctx, a.queryTimeout)
	defer cancel()

	results, err := a.store.Search(qctx, query, a.userID, limit)
	if err != nil {
		log.Printf("[memory] startup query %q failed: %v", query, err)
		return nil
	}

	lines := make([]string, 0, len(results))
	for _, r := range results {
		if r.Memory != "" {
			lines = append(lines, r.Memory)
		}
	}
	return lines
}
