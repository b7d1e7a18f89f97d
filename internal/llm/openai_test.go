package llm

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChatAPI is a scriptable stand-in for the go-openai client.
type fakeChatAPI struct {
	lastReq   openai.ChatCompletionRequest
	chatResp  openai.ChatCompletionResponse
	chatErr   error
	speech    []byte
	speechErr error
	listErr   error
}

func (f *fakeChatAPI) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastReq = req
	return f.chatResp, f.chatErr
}

func (f *fakeChatAPI) CreateSpeech(_ context.Context, _ openai.CreateSpeechRequest) (openai.RawResponse, error) {
	if f.speechErr != nil {
		return openai.RawResponse{}, f.speechErr
	}
	return openai.RawResponse{ReadCloser: io.NopCloser(bytes.NewReader(f.speech))}, nil
}

func (f *fakeChatAPI) ListModels(_ context.Context) (openai.ModelsList, error) {
	return openai.ModelsList{}, f.listErr
}

func openAITestConfig() Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.APIKey = "sk-test"
	cfg.Model = "gpt-4.1-mini"
	return cfg
}

func TestOpenAIClient_Generate_Success(t *testing.T) {
	api := &fakeChatAPI{
		chatResp: openai.ChatCompletionResponse{
			Model: "gpt-4.1-mini",
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "  plan text \n"}},
			},
		},
	}
	client := newOpenAIClient(openAITestConfig(), api, NoopObserver{})

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskCoach,
		SystemPrompt: "be encouraging",
		UserPrompt:   "write it",
	})

	require.NoError(t, err)
	assert.Equal(t, "plan text", resp.Text, "response should be trimmed")
	assert.Equal(t, "gpt-4.1-mini", resp.Model)

	require.Len(t, api.lastReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, api.lastReq.Messages[0].Role)
	assert.Equal(t, "be encouraging", api.lastReq.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, api.lastReq.Messages[1].Role)
	assert.Equal(t, 220, api.lastReq.MaxTokens, "coach task max tokens")
}

func TestOpenAIClient_Generate_APIError(t *testing.T) {
	api := &fakeChatAPI{chatErr: errors.New("401 unauthorized")}
	client := newOpenAIClient(openAITestConfig(), api, NoopObserver{})

	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskPlan,
		UserPrompt: "plan",
	})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOpenAIClient_Generate_NoChoices(t *testing.T) {
	api := &fakeChatAPI{chatResp: openai.ChatCompletionResponse{}}
	client := newOpenAIClient(openAITestConfig(), api, NoopObserver{})

	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskPlan,
		UserPrompt: "plan",
	})

	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestOpenAIClient_Synthesize(t *testing.T) {
	api := &fakeChatAPI{speech: []byte("mp3-bytes")}
	client := newOpenAIClient(openAITestConfig(), api, NoopObserver{})

	audio, err := client.Synthesize(context.Background(), "good luck this week")
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)

	_, err = client.Synthesize(context.Background(), "")
	assert.Error(t, err)
}

func TestSpeech_CapabilityDetection(t *testing.T) {
	api := &fakeChatAPI{}
	oa := newOpenAIClient(openAITestConfig(), api, NoopObserver{})
	assert.NotNil(t, Speech(oa))

	ollama := NewOllamaClient(testConfig("http://127.0.0.1:1"), NoopObserver{})
	assert.Nil(t, Speech(ollama), "ollama provider has no speech capability")
	assert.Nil(t, Speech(nil))
}
