// Package coach holds the text-producing collaborators around a finalized
// plan: the motivational message, the in-app Q&A assistant, the adherence
// summarizer and optional voice synthesis. Every model-backed path here has
// a deterministic answer to fall back to; the user never sees an error.
package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/nlebedev/corner/internal/domain"
	"github.com/nlebedev/corner/internal/llm"
)

// FallbackMessage is the deterministic coach message used whenever the
// model is unavailable or returns nothing.
const FallbackMessage = "This week is about consistent, safe work. Focus on clean technique, " +
	"controlled breathing, and honest pacing. If anything feels sharp, " +
	"unusual or worrying, ease back or rest instead of forcing it. " +
	"Small, steady sessions will build confidence and fitness over time."

const messageSystemPrompt = "You are a safe, encouraging sports coach."

// MessageGenerator produces the weekly motivational message.
type MessageGenerator struct {
	client llm.Client
}

// NewMessageGenerator creates a MessageGenerator. client may be nil.
func NewMessageGenerator(client llm.Client) *MessageGenerator {
	return &MessageGenerator{client: client}
}

// Message writes a short motivational note for the week. Model failures and
// empty responses silently yield the fixed fallback text.
func (g *MessageGenerator) Message(ctx context.Context, wp *domain.WeekPlan) string {
	if g.client == nil || wp == nil {
		return FallbackMessage
	}

	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskCoach,
		SystemPrompt: messageSystemPrompt,
		UserPrompt:   buildMessagePrompt(wp),
	})
	if err != nil {
		return FallbackMessage
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return FallbackMessage
	}
	return text
}

func buildMessagePrompt(wp *domain.WeekPlan) string {
	var b strings.Builder
	b.WriteString("You are a calm, supportive sports coach. ")
	b.WriteString("Write a short motivational message (120–160 words) for this week. ")
	b.WriteString("Keep it safe, realistic and encouraging. Highlight pacing, rest, ")
	b.WriteString("technique quality, and listening to the body. Avoid medical advice ")
	b.WriteString("and do not promise specific results.\n\n")
	fmt.Fprintf(&b, "Sport: %s\n", wp.Meta.Sport)
	fmt.Fprintf(&b, "Level: %s\n", wp.Meta.Level)
	fmt.Fprintf(&b, "Weekly minutes: %d\n", domain.TotalMinutes(wp.Sessions))
	fmt.Fprintf(&b, "Weekly load units: %d\n", domain.TotalLoad(wp.Sessions))
	fmt.Fprintf(&b, "Sessions: %s\n", SessionSummary(wp.Sessions))
	return b.String()
}

// SessionSummary renders a one-line plan digest shared by the coach message
// and assistant prompts.
func SessionSummary(sessions []domain.Session) string {
	parts := make([]string, 0, len(sessions))
	for _, s := range sessions {
		parts = append(parts, fmt.Sprintf("%s: %s (%s, %d min)", s.Day, s.Focus, s.Intensity, s.DurationMin))
	}
	return strings.Join(parts, "; ")
}
