package export

import (
	"testing"

	"github.com/nlebedev/corner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanPDF(t *testing.T) {
	wp := &domain.WeekPlan{
		ID:   "p1",
		Meta: domain.PlanMeta{Sport: "Boxing", Level: "Novice", LastWeekLoad: 50},
		Sessions: []domain.Session{
			{Day: "Tue", Focus: "Boxing basics: stance, guard & straight punches", Intensity: "Easy–Moderate", DurationMin: 25, LoadUnits: 30},
			{Day: "Thu", Focus: "Footwork & defence foundations", Intensity: "Moderate", DurationMin: 25, LoadUnits: 35},
		},
	}

	data, err := PlanPDF(wp, "Steady work this week — pace yourself and keep technique clean.")
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPlanPDF_NilPlan(t *testing.T) {
	_, err := PlanPDF(nil, "text")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 40))
	long := "High-complexity combinations & movement plus extra detail"
	assert.Len(t, []rune(truncate(long, 40)), 40)
}
