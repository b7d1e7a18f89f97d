package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/nlebedev/corner/internal/domain"
	"github.com/nlebedev/corner/internal/llm"
)

const emptyQuestionReply = "Please type a question about your plan, training load, RPE, or safety."

const degradedAnswer = "There was a problem generating a detailed answer. " +
	"As a reminder: RPE is how hard it felt (1–10), and load is a rough measure of " +
	"training stress combining time and effort."

// Assistant answers in-app questions about the plan, RPE, load and safety.
// Without a model it serves a small canned answer set keyed on question
// keywords; it degrades, it never fails.
type Assistant struct {
	client llm.Client
}

// NewAssistant creates an Assistant. client may be nil.
func NewAssistant(client llm.Client) *Assistant {
	return &Assistant{client: client}
}

// Answer responds to a user question in the context of the current plan.
// wp may be nil when no plan has been generated yet.
func (a *Assistant) Answer(ctx context.Context, question string, wp *domain.WeekPlan) string {
	if strings.TrimSpace(question) == "" {
		return emptyQuestionReply
	}

	if a.client == nil {
		return cannedAnswer(question)
	}

	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAssist,
		SystemPrompt: buildAssistantContext(wp),
		UserPrompt:   question,
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		return degradedAnswer
	}
	return strings.TrimSpace(resp.Text)
}

// cannedAnswer is the deterministic answer set used when no model is
// configured: a fixed reply per recognized topic, plus a default.
func cannedAnswer(question string) string {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "rpe") || strings.Contains(q, "effort"):
		return "RPE stands for Rate of Perceived Exertion, from 1 (very easy) to 10 (maximum effort). " +
			"Choose the number that best matches how hard the session felt overall."
	case strings.Contains(q, "load"):
		return "Unit load combines how long and how hard you worked. Roughly: " +
			"longer sessions and harder efforts mean higher load. It helps keep weekly increases safe."
	case strings.Contains(q, "safe") || strings.Contains(q, "injury"):
		return "The tool keeps sessions between about 20–60 minutes and limits weekly increases in load. " +
			"It is still important to listen to your body and stop if anything feels sharp or worrying."
	default:
		return "This coach focuses on safe training structure: sessions, effort, and weekly progression. " +
			"It cannot give medical advice. You can ask about RPE, load, why rest days appear, " +
			"or how to think about progression."
	}
}

func buildAssistantContext(wp *domain.WeekPlan) string {
	sport, level := "Not set", "Not set"
	sessionText := "No plan generated yet."
	if wp != nil {
		sport = wp.Meta.Sport
		level = wp.Meta.Level
		if len(wp.Sessions) > 0 {
			sessionText = SessionSummary(wp.Sessions)
		}
	}

	var b strings.Builder
	b.WriteString("You are an in-app coaching assistant. Answer questions about the training plan, ")
	b.WriteString("RPE, load, and safety in simple, friendly language. Do NOT give medical advice or ")
	b.WriteString("talk about internal implementation details. Do not mention any models or APIs.\n\n")
	fmt.Fprintf(&b, "Current sport: %s\n", sport)
	fmt.Fprintf(&b, "Level: %s\n", level)
	fmt.Fprintf(&b, "Sessions: %s\n\n", sessionText)
	b.WriteString("RPE explanation: 1–10 scale of how hard it felt. 1 = very easy, 10 = maximum effort.\n")
	b.WriteString("Load units: an internal number that combines how long and how hard sessions are. ")
	b.WriteString("Higher numbers mean more training stress.\n")
	return b.String()
}
