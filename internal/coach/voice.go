package coach

import (
	"context"

	"github.com/nlebedev/corner/internal/llm"
)

// Voice renders the coach message as audio when the active model provider
// supports speech synthesis. It is an optional feature: absence or any
// synthesis error yields nil bytes and the caller simply skips audio.
type Voice struct {
	synth llm.SpeechSynthesizer
}

// NewVoice creates a Voice. synth may be nil.
func NewVoice(synth llm.SpeechSynthesizer) *Voice {
	return &Voice{synth: synth}
}

// Render returns MP3 bytes for the text, or nil when voice is unavailable.
func (v *Voice) Render(ctx context.Context, text string) []byte {
	if v == nil || v.synth == nil || text == "" {
		return nil
	}
	audio, err := v.synth.Synthesize(ctx, text)
	if err != nil {
		return nil
	}
	return audio
}
