package security

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/config"
)

// Redactor replaces PII with numbered placeholders before text leaves
// the process for the hosted memory store. One-way: placeholders are
// never mapped back.
type Redactor struct {
	mu      sync.Mutex
	filters []piiFilter
	counter map[string]int
}

type piiFilter struct {
	pattern *regexp.Regexp
	prefix  string
}

var redactionPatterns = []struct {
	name    string
	pattern string
	prefix  string
}{
	{"email", `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`, "EMAIL"},
	{"phone", `\+?\d{1,3}[-.\s]?\(?\d{2,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}`, "PHONE"},
	{"card", `\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`, "CARD"},
	{"ip", `\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`, "IP"},
}

// NewRedactor builds a redactor from privacy config. Returns nil when
// every filter is disabled, so callers can pass it straight through as
// a no-op redaction hook.
func NewRedactor(cfg config.PrivacyConfig) *Redactor {
	enabled := map[string]bool{
		"email": cfg.RedactEmails,
		"phone": cfg.RedactPhones,
		"card":  cfg.RedactCards,
		"ip":    cfg.RedactIPs,
	}

	var filters []piiFilter
	for _, p := range redactionPatterns {
		if enabled[p.name] {
			filters = append(filters, piiFilter{
				pattern: regexp.MustCompile(p.pattern),
				prefix:  p.prefix,
			})
		}
	}
	if len(filters) == 0 {
		return nil
	}
	return &Redactor{
		filters: filters,
		counter: make(map[string]int),
	}
}

// Redact replaces every enabled PII match with a placeholder like
// [CARD_1]. Identical values within one redactor's lifetime get the
// same placeholder number only by coincidence; dedup of values is not a
// goal, removal is.
func (r *Redactor) Redact(text string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.filters {
		text = f.pattern.ReplaceAllStringFunc(text, func(string) string {
			r.counter[f.prefix]++
			return fmt.Sprintf("[%s_%d]", f.prefix, r.counter[f.prefix])
		})
	}
	return text
}
