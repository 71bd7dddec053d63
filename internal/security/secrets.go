// Package security covers credential lookup and PII redaction.
package security

import (
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const keyringService = "oracle"

// Secret resolves a credential: the environment variable wins, the OS
// keyring (service "oracle", entry name) is the fallback. Returns ""
// when neither is set; callers decide whether that is fatal.
func Secret(name, envVar string) string {
	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
		return v
	}
	if v, err := keyring.Get(keyringService, name); err == nil {
		return strings.TrimSpace(v)
	}
	return ""
}

// MaskKey returns a masked version of an API key for display.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:3] + "..." + key[len(key)-4:]
}
