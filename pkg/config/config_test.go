package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ModeDirect, cfg.Mode)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.GroqModel)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, DevSessionSecret, cfg.SessionSecret)
	assert.Zero(t, cfg.HistoryWindow)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestFromViper_Env(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ASSISTANT_MODE", " Memory ")
	t.Setenv("HISTORY_WINDOW", "5")
	t.Setenv("CHAT_RATE_PER_MINUTE", "12")
	t.Setenv("LLM_TIMEOUT_SECONDS", "15")
	t.Setenv("CATALOG_FILE", "/etc/kirana/catalog.yaml")

	cfg, err := FromViper(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ModeMemory, cfg.Mode)
	assert.Equal(t, 5, cfg.HistoryWindow)
	assert.Equal(t, 12, cfg.ChatRatePerMinute)
	assert.Equal(t, 15*time.Second, cfg.LLMTimeout)
	assert.Equal(t, "/etc/kirana/catalog.yaml", cfg.CatalogFile)
}

func TestFromViper_Invalid(t *testing.T) {
	t.Setenv("ASSISTANT_MODE", "agentic")
	_, err := FromViper(viper.New())
	assert.Error(t, err)
}

func TestFromViper_NegativeWindow(t *testing.T) {
	t.Setenv("HISTORY_WINDOW", "-1")
	_, err := FromViper(viper.New())
	assert.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(p, []byte("KIRANA_TEST_MODEL=gemma2-9b-it\n"), 0o644))
	t.Setenv("KIRANA_TEST_MODEL", "")
	require.NoError(t, os.Unsetenv("KIRANA_TEST_MODEL"))

	_, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "gemma2-9b-it", os.Getenv("KIRANA_TEST_MODEL"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
