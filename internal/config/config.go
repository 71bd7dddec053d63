package config

// Config is the top-level application configuration.
type Config struct {
	Agent       AgentConfig    `json:"agent"`
	LLM         LLMConfig      `json:"llm"`
	FallbackLLM *LLMConfig     `json:"fallback_llm,omitempty"`
	Memory      MemoryConfig   `json:"memory"`
	Email       EmailConfig    `json:"email"`
	Weather     WeatherConfig  `json:"weather"`
	Channels    ChannelsConfig `json:"channels"`
	Privacy     PrivacyConfig  `json:"privacy"`
}

// AgentConfig shapes the assistant persona and conversation limits.
type AgentConfig struct {
	UserID       string  `json:"user_id"`
	UserTitle    string  `json:"user_title"` // how the assistant addresses the user
	MaxTokens    int     `json:"max_tokens"`
	Temperature  float64 `json:"temperature"`
	MaxToolCalls int     `json:"max_tool_calls"`
	MaxHistory   int     `json:"max_history"` // in-session turn cap
}

type LLMConfig struct {
	Provider    string `json:"provider"`
	Model       string `json:"model"`
	APIKey      string `json:"api_key,omitempty"`
	BaseURL     string `json:"base_url,omitempty"`
	TimeoutSecs int    `json:"timeout_secs"`
}

// MemoryConfig tunes the long-term memory pipeline. The three limits are
// heuristics; see internal/memory for how each is used.
type MemoryConfig struct {
	BaseURL           string   `json:"base_url,omitempty"`
	APIKey            string   `json:"api_key,omitempty"`
	RecallLimit       int      `json:"recall_limit"`        // live recall tool
	SummaryPreload    int      `json:"summary_preload"`     // startup summary query
	RecentPreload     int      `json:"recent_preload"`      // startup broad query
	QueryTimeoutSecs  int      `json:"query_timeout_secs"`  // per startup query
	ShutdownGraceSecs int      `json:"shutdown_grace_secs"` // persister window
	ProfileFacts      []string `json:"profile_facts,omitempty"`
}

// EmailConfig holds SMTP relay settings. Credentials come from the
// environment or keyring, never from the config file.
type EmailConfig struct {
	SMTPHost string `json:"smtp_host"`
	SMTPPort int    `json:"smtp_port"`
}

type WeatherConfig struct {
	DefaultCity string `json:"default_city"`
	// FallbackQueries are alternate phrasings tried against the backup
	// provider when the default city cannot be geocoded.
	FallbackQueries []string `json:"fallback_queries,omitempty"`
}

type ChannelsConfig struct {
	Telegram *TelegramConfig `json:"telegram,omitempty"`
}

type TelegramConfig struct {
	Token      string  `json:"token,omitempty"`
	AllowedIDs []int64 `json:"allowed_ids,omitempty"`
}

// PrivacyConfig controls PII redaction applied before conversation
// content is sent to the hosted memory store.
type PrivacyConfig struct {
	RedactEmails bool `json:"redact_emails"`
	RedactPhones bool `json:"redact_phones"`
	RedactCards  bool `json:"redact_cards"`
	RedactIPs    bool `json:"redact_ips"`
}
