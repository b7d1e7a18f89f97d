package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// chatAPI captures the subset of the go-openai client used here, so tests
// can substitute a fake without a network.
type chatAPI interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateSpeech(ctx context.Context, request openai.CreateSpeechRequest) (openai.RawResponse, error)
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// SpeechSynthesizer converts text into spoken audio bytes. Only the OpenAI
// provider supports this; callers treat absence as feature-off.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

const speechModel = "gpt-4o-mini-tts"

// openaiClient implements Client (and SpeechSynthesizer) via the OpenAI API.
type openaiClient struct {
	cfg      Config
	api      chatAPI
	observer Observer
}

// NewOpenAIClient creates a Client backed by the OpenAI chat completions API.
func NewOpenAIClient(cfg Config, observer Observer) Client {
	return newOpenAIClient(cfg, openai.NewClient(cfg.APIKey), observer)
}

func newOpenAIClient(cfg Config, api chatAPI, observer Observer) *openaiClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &openaiClient{cfg: cfg, api: api, observer: observer}
}

func (c *openaiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	var messages []openai.ChatCompletionMessage
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserPrompt,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		MaxTokens:   maxTok,
		Temperature: float32(temp),
	})

	latency := time.Since(start).Milliseconds()
	if err != nil {
		c.observer.OnCallComplete(CallEvent{
			Task: req.Task, Model: c.cfg.Model, LatencyMs: latency,
			Success: false, ErrorCode: errorCode(err),
		})
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		c.observer.OnCallComplete(CallEvent{
			Task: req.Task, Model: c.cfg.Model, LatencyMs: latency,
			Success: false, ErrorCode: "INVALID_OUTPUT",
		})
		return nil, fmt.Errorf("%w: no choices in response", ErrInvalidOutput)
	}

	c.observer.OnCallComplete(CallEvent{
		Task: req.Task, Model: c.cfg.Model, LatencyMs: latency, Success: true,
	})
	return &GenerateResponse{
		Text:      strings.TrimSpace(resp.Choices[0].Message.Content),
		Model:     resp.Model,
		LatencyMs: latency,
	}, nil
}

func (c *openaiClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	_, err := c.api.ListModels(ctx)
	return err == nil
}

// Synthesize renders text as MP3 audio via the speech endpoint.
func (c *openaiClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, errors.New("empty text")
	}

	raw, err := c.api.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: speechModel,
		Input: text,
		Voice: openai.VoiceAlloy,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis: %w", err)
	}
	defer raw.Close()

	return io.ReadAll(raw)
}

// Speech returns the speech capability of a client, or nil when the active
// provider has none.
func Speech(c Client) SpeechSynthesizer {
	if s, ok := c.(SpeechSynthesizer); ok {
		return s
	}
	return nil
}
