package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ModeDirect = "direct"
	ModeMemory = "memory"

	DevSessionSecret = "dev-secret-change"
)

type Config struct {
	Port string
	Mode string

	GroqBaseURL  string
	GroqModel    string
	SystemPrompt string
	LLMTimeout   time.Duration

	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool

	HistoryWindow     int
	ChatRatePerMinute int

	CatalogFile string
	DatabaseURL string

	LogLevel  string
	LogFormat string
}

// Load reads environment variables, optionally from .env files. With no
// files given a missing ./.env is ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromViper(viper.GetViper())
}

// SetDefaults registers default values; keys map to upper-case env names.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("assistant_mode", ModeDirect)
	v.SetDefault("groq_base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("groq_model", "llama-3.3-70b-versatile")
	v.SetDefault("system_prompt", "You are a Kirana store assistant. Include inventory and total cost info if provided.")
	v.SetDefault("llm_timeout_seconds", 60)
	v.SetDefault("session_secret", DevSessionSecret)
	v.SetDefault("session_ttl_hours", 24*30)
	v.SetDefault("cookie_secure", false)
	v.SetDefault("history_window", 0)
	v.SetDefault("chat_rate_per_minute", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

func FromViper(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	cfg := Config{
		Port:              v.GetString("port"),
		Mode:              strings.ToLower(strings.TrimSpace(v.GetString("assistant_mode"))),
		GroqBaseURL:       v.GetString("groq_base_url"),
		GroqModel:         v.GetString("groq_model"),
		SystemPrompt:      v.GetString("system_prompt"),
		LLMTimeout:        time.Duration(v.GetInt("llm_timeout_seconds")) * time.Second,
		SessionSecret:     v.GetString("session_secret"),
		SessionTTL:        time.Duration(v.GetInt("session_ttl_hours")) * time.Hour,
		CookieSecure:      v.GetBool("cookie_secure"),
		HistoryWindow:     v.GetInt("history_window"),
		ChatRatePerMinute: v.GetInt("chat_rate_per_minute"),
		CatalogFile:       v.GetString("catalog_file"),
		DatabaseURL:       v.GetString("database_url"),
		LogLevel:          v.GetString("log_level"),
		LogFormat:         v.GetString("log_format"),
	}
	if cfg.Mode != ModeDirect && cfg.Mode != ModeMemory {
		return Config{}, fmt.Errorf("ASSISTANT_MODE must be %q or %q, got %q", ModeDirect, ModeMemory, cfg.Mode)
	}
	if cfg.HistoryWindow < 0 {
		return Config{}, fmt.Errorf("HISTORY_WINDOW must not be negative")
	}
	return cfg, nil
}
