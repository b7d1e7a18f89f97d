package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	// TaskPlan generates the structured weekly session list.
	TaskPlan TaskType = "plan"
	// TaskCoach generates the motivational coach message.
	TaskCoach TaskType = "coach"
	// TaskAssist answers in-app questions about the plan, RPE and load.
	TaskAssist TaskType = "assist"
)

// Provider selects the model backend implementation.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Provider   Provider
	Endpoint   string // Ollama endpoint; ignored by the OpenAI provider
	Model      string
	APIKey     string // OpenAI key; provider is disabled without one
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The model backend
// is disabled by default; the deterministic catalog path then serves every
// request.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Provider:   ProviderOpenAI,
		Endpoint:   "http://localhost:11434",
		Model:      "gpt-4.1-mini",
		TimeoutMs:  15000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskPlan:   {Temperature: 0.8, MaxTokens: 900, TimeoutMs: 20000},
			TaskCoach:  {Temperature: 0.8, MaxTokens: 220, TimeoutMs: 10000},
			TaskAssist: {Temperature: 0.7, MaxTokens: 250, TimeoutMs: 10000},
		},
	}
}

// TaskTimeout returns the effective timeout for a task in milliseconds.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// LoadConfig reads LLM configuration from environment variables, falling
// back to defaults for any unset values. Setting OPENAI_API_KEY alone is
// enough to enable the OpenAI provider.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
		cfg.Enabled = true
	}
	if v := os.Getenv("CORNER_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CORNER_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CORNER_LLM_PROVIDER"); v != "" {
		cfg.Provider = Provider(v)
	}
	if v := os.Getenv("CORNER_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("CORNER_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("CORNER_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("CORNER_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
