package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	configDir  = ".oracle"
	configFile = "config.json"
)

// Loader manages reading and writing the config file. Environment
// variables (including a .env file in the working directory) override
// file values and are applied on every Load.
type Loader struct {
	mu       sync.RWMutex
	config   *Config
	filePath string
}

// NewLoader creates a loader that stores config in ~/.oracle/config.json.
func NewLoader() (*Loader, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, configDir)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &Loader{
		filePath: filepath.Join(dir, configFile),
	}, nil
}

// Load reads the config from disk and applies environment overrides.
// If the file doesn't exist, defaults are used.
func (l *Loader) Load() (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cfg := Defaults()

	data, err := os.ReadFile(l.filePath)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// .env values do not overwrite variables already in the environment.
	_ = godotenv.Load()
	applyEnv(cfg)

	l.config = cfg
	return cfg, nil
}

// Save writes the current config to disk. Secrets picked up from the
// environment are not written back.
func (l *Loader) Save(cfg *Config) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	l.config = cfg
	return os.WriteFile(l.filePath, data, 0600)
}

// Get returns the currently loaded config (or defaults if not loaded yet).
func (l *Loader) Get() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.config == nil {
		return Defaults()
	}
	return l.config
}

// FilePath returns the config file path.
func (l *Loader) FilePath() string {
	return l.filePath
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config) {
	setString(&cfg.Agent.UserID, "USER_ID")
	setString(&cfg.Weather.DefaultCity, "DEFAULT_CITY")
	setString(&cfg.Memory.APIKey, "MEM0_API_KEY")
	setString(&cfg.Memory.BaseURL, "MEM0_BASE_URL")

	applyLLMEnv(&cfg.LLM)
	if cfg.FallbackLLM != nil {
		applyLLMEnv(cfg.FallbackLLM)
	}

	setInt(&cfg.Memory.RecallLimit, "MEMORY_RECALL_LIMIT")
	setInt(&cfg.Memory.SummaryPreload, "MEMORY_SUMMARY_LIMIT")
	setInt(&cfg.Memory.RecentPreload, "MEMORY_RECENT_LIMIT")

	if token := os.Getenv("TELEGRAM_TOKEN"); token != "" {
		if cfg.Channels.Telegram == nil {
			cfg.Channels.Telegram = &TelegramConfig{}
		}
		cfg.Channels.Telegram.Token = token
	}
}

// applyLLMEnv overlays the key env var matching the configured vendor,
// so an anthropic provider never picks up an OpenAI key.
func applyLLMEnv(cfg *LLMConfig) {
	switch cfg.Provider {
	case "anthropic":
		setString(&cfg.APIKey, "ANTHROPIC_API_KEY")
	default:
		// openai and the OpenAI-compatible providers (openrouter, local)
		setString(&cfg.APIKey, "OPENAI_API_KEY")
	}
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}
