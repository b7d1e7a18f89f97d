package plan

import (
	"context"
	"testing"

	"github.com/nlebedev/corner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWeek_FallbackBoxingNovice(t *testing.T) {
	p := NewPlanner(nil, nil)

	wp := p.GenerateWeek(context.Background(), domain.PlanMeta{
		Sport:           "Boxing",
		Level:           "Novice",
		SessionsPerWeek: 3,
		LastWeekLoad:    0,
	})

	require.NotNil(t, wp)
	assert.Equal(t, domain.SourceTemplate, wp.Source)
	assert.NotEmpty(t, wp.ID)
	require.Len(t, wp.Sessions, 3)

	assert.Equal(t, []string{"Tue", "Thu", "Sat"},
		[]string{wp.Sessions[0].Day, wp.Sessions[1].Day, wp.Sessions[2].Day})
	assert.Equal(t, []int{30, 35, 40},
		[]int{wp.Sessions[0].LoadUnits, wp.Sessions[1].LoadUnits, wp.Sessions[2].LoadUnits})
	assert.NotContains(t, wp.Sessions[0].Notes, "Load check", "prior load 0 leaves the guardrail idle")
}

func TestGenerateWeek_FallbackWithGuardrail(t *testing.T) {
	p := NewPlanner(nil, nil)

	wp := p.GenerateWeek(context.Background(), domain.PlanMeta{
		Sport:           "Boxing",
		Level:           "Novice",
		SessionsPerWeek: 3,
		LastWeekLoad:    50,
	})

	// Template total 105 against allowed max(55, 70) = 70 forces scaling.
	require.Len(t, wp.Sessions, 3)
	assert.Equal(t, []int{20, 23, 27},
		[]int{wp.Sessions[0].LoadUnits, wp.Sessions[1].LoadUnits, wp.Sessions[2].LoadUnits})
	for _, s := range wp.Sessions {
		assert.Contains(t, s.Notes, "Load guardrail applied")
	}
}

func TestGenerateWeek_ModelPath(t *testing.T) {
	client := &fakeClient{text: `{"sessions":[
		{"day":"Tue","focus":"Intervals","intensity":"Hard","duration_min":40,"notes":"n"},
		{"day":"Fri","focus":"Recovery jog","intensity":"Easy","duration_min":30,"notes":"n"}
	]}`}
	p := NewPlanner(client, nil)

	wp := p.GenerateWeek(context.Background(), domain.PlanMeta{
		Sport:           "Running",
		Level:           "Intermediate",
		SessionsPerWeek: 2,
		LastWeekLoad:    0,
	})

	assert.Equal(t, domain.SourceLLM, wp.Source)
	require.Len(t, wp.Sessions, 2)
	assert.Equal(t, "Intervals", wp.Sessions[0].Focus)
	assert.Equal(t, 120, wp.Sessions[0].LoadUnits)
}

func TestGenerateWeek_MalformedModelOutputFallsBack(t *testing.T) {
	client := &fakeClient{text: "no json here, just vibes"}
	p := NewPlanner(client, nil)

	wp := p.GenerateWeek(context.Background(), domain.PlanMeta{
		Sport:           "Football",
		Level:           "Advanced",
		SessionsPerWeek: 4,
		LastWeekLoad:    0,
	})

	assert.Equal(t, domain.SourceTemplate, wp.Source)
	require.Len(t, wp.Sessions, 4)
	assert.Contains(t, wp.Sessions[0].Focus, "Football conditioning")
}

func TestGenerateWeek_GuardrailOnModelPath(t *testing.T) {
	// Two hard 60-minute sessions: 180 + 180 = 360 units, prior 100 allows
	// max(110, 120) = 120, so both sessions scale.
	client := &fakeClient{text: `{"sessions":[
		{"day":"Mon","focus":"a","intensity":"Hard","duration_min":60,"notes":""},
		{"day":"Thu","focus":"b","intensity":"Hard","duration_min":60,"notes":""}
	]}`}
	p := NewPlanner(client, nil)

	wp := p.GenerateWeek(context.Background(), domain.PlanMeta{
		Sport:           "Boxing",
		Level:           "Advanced",
		SessionsPerWeek: 2,
		LastWeekLoad:    100,
	})

	require.Len(t, wp.Sessions, 2)
	assert.Equal(t, 60, wp.Sessions[0].LoadUnits)
	assert.Equal(t, 60, wp.Sessions[1].LoadUnits)
	assert.Contains(t, wp.Sessions[0].Notes, "target ≤ 120")
}
