package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlebedev/corner/internal/coach"
	"github.com/nlebedev/corner/internal/config"
	"github.com/nlebedev/corner/internal/media"
	"github.com/nlebedev/corner/internal/plan"
)

// newTestApp builds an App with no model configured, so the plan command
// falls back to the built-in templates.
func newTestApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Planner:   plan.NewPlanner(nil, nil),
		Messages:  coach.NewMessageGenerator(nil),
		Assistant: coach.NewAssistant(nil),
		Visuals:   media.NewLibrary(t.TempDir()),
		Config:    config.Default(),
	}
}

func execute(t *testing.T, app *App, args ...string) string {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestPlanCmd_TemplateFallback(t *testing.T) {
	out := execute(t, newTestApp(t),
		"plan", "--sport", "boxing", "--level", "novice", "--sessions", "3")

	assert.Contains(t, out, "boxing")
	assert.Contains(t, out, "Tue")
	assert.Contains(t, out, "Thu")
	assert.Contains(t, out, "Sat")
	assert.Contains(t, out, "consistent, safe work")
}

func TestPlanCmd_GuardrailAnnotatesLoad(t *testing.T) {
	out := execute(t, newTestApp(t),
		"plan", "--sport", "boxing", "--level", "novice", "--sessions", "3",
		"--last-week-load", "50")

	assert.Contains(t, out, "Load guardrail applied")
}

func TestPlanCmd_ClampsSessionCount(t *testing.T) {
	out := execute(t, newTestApp(t),
		"plan", "--sport", "boxing", "--level", "novice", "--sessions", "0")

	// At least one session is always planned.
	assert.Contains(t, out, "Tue")
}

func TestAskCmd_CannedAnswer(t *testing.T) {
	out := execute(t, newTestApp(t), "ask", "what", "is", "rpe?")
	assert.Contains(t, out, "Rate of Perceived Exertion")
}

func TestAskCmd_EmptyQuestion(t *testing.T) {
	out := execute(t, newTestApp(t), "ask")
	assert.Contains(t, out, "Please type a question")
}

func TestValidateSessionCount(t *testing.T) {
	assert.NoError(t, validateSessionCount("3"))
	assert.Error(t, validateSessionCount("0"))
	assert.Error(t, validateSessionCount("15"))
	assert.Error(t, validateSessionCount("abc"))
}

func TestValidateNonNegativeInt(t *testing.T) {
	assert.NoError(t, validateNonNegativeInt(""))
	assert.NoError(t, validateNonNegativeInt("0"))
	assert.NoError(t, validateNonNegativeInt("120"))
	assert.Error(t, validateNonNegativeInt("-5"))
	assert.Error(t, validateNonNegativeInt("abc"))
}
