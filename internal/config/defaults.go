package config

// Defaults returns a Config with sensible default values.
func Defaults() *Config {
	return &Config{
		Agent: AgentConfig{
			UserID:       "Bruce Wayne",
			UserTitle:    "Mr. Wayne",
			MaxTokens:    1024,
			Temperature:  1.0,
			MaxToolCalls: 10,
			MaxHistory:   100,
		},
		LLM: LLMConfig{
			Provider:    "openai",
			Model:       "gpt-4o-mini",
			TimeoutSecs: 60,
		},
		Memory: MemoryConfig{
			RecallLimit:       10,
			SummaryPreload:    10,
			RecentPreload:     30,
			QueryTimeoutSecs:  5,
			ShutdownGraceSecs: 10,
		},
		Email: EmailConfig{
			SMTPHost: "smtp.gmail.com",
			SMTPPort: 587,
		},
		Weather: WeatherConfig{
			DefaultCity: "Chennai",
		},
		Privacy: PrivacyConfig{
			RedactEmails: false,
			RedactPhones: false,
			RedactCards:  true,
			RedactIPs:    false,
		},
	}
}
