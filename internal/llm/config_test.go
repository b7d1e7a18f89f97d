package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_DisabledWithoutCredentials(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, 20000, cfg.TaskTimeout(TaskPlan))
	assert.Equal(t, 15000, cfg.TimeoutMs)
}

func TestLoadConfig_APIKeyEnables(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "sk-test", cfg.APIKey)
}

func TestLoadConfig_ExplicitDisableWins(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CORNER_LLM_ENABLED", "false")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("CORNER_LLM_PROVIDER", "ollama")
	t.Setenv("CORNER_LLM_ENDPOINT", "http://10.0.0.2:11434")
	t.Setenv("CORNER_LLM_MODEL", "llama3.2")
	t.Setenv("CORNER_LLM_TIMEOUT_MS", "9000")

	cfg := LoadConfig()

	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, "http://10.0.0.2:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 9000, cfg.TimeoutMs)
}

func TestLoadConfig_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("CORNER_LLM_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 15000, cfg.TimeoutMs)
}

func TestNew_NilWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.Nil(t, New(cfg, nil))

	cfg.Enabled = true
	cfg.Provider = ProviderOpenAI
	cfg.APIKey = ""
	assert.Nil(t, New(cfg, nil), "openai provider without a key is unusable")

	cfg.Provider = ProviderOllama
	assert.NotNil(t, New(cfg, nil))
}
