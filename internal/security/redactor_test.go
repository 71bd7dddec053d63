package security

import (
	"strings"
	"testing"

	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/config"
)

func TestRedactorDisabled(t *testing.T) {
	if r := NewRedactor(config.PrivacyConfig{}); r != nil {
		t.Fatal("expected nil redactor when all filters are off")
	}
}

func TestRedactEmail(t *testing.T) {
	r := NewRedactor(config.PrivacyConfig{RedactEmails: true})
	got := r.Redact("reach me at bruce@wayne.example please")
	if strings.Contains(got, "bruce@wayne.example") {
		t.Fatalf("email not redacted: %q", got)
	}
	if !strings.Contains(got, "[EMAIL_1]") {
		t.Fatalf("expected placeholder: %q", got)
	}
}

func TestRedactCard(t *testing.T) {
	r := NewRedactor(config.PrivacyConfig{RedactCards: true})
	got := r.Redact("card 4111 1111 1111 1111 expires soon")
	if strings.Contains(got, "4111") {
		t.Fatalf("card number not redacted: %q", got)
	}
	if !strings.Contains(got, "[CARD_1]") {
		t.Fatalf("expected placeholder: %q", got)
	}
}

func TestRedactOnlyEnabledFilters(t *testing.T) {
	r := NewRedactor(config.PrivacyConfig{RedactCards: true})
	got := r.Redact("email bruce@wayne.example stays")
	if !strings.Contains(got, "bruce@wayne.example") {
		t.Fatalf("disabled filter should not fire: %q", got)
	}
}

func TestRedactNumbersPlaceholders(t *testing.T) {
	r := NewRedactor(config.PrivacyConfig{RedactEmails: true})
	got := r.Redact("a@x.example and b@y.example")
	if !strings.Contains(got, "[EMAIL_1]") || !strings.Contains(got, "[EMAIL_2]") {
		t.Fatalf("expected numbered placeholders: %q", got)
	}
}
