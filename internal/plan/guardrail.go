package plan

import (
	"fmt"
	"math"

	"github.com/nlebedev/corner/internal/domain"
)

// minScaledLoad is the floor a scaled session load can be reduced to.
const minScaledLoad = 20

const loadCheckNote = "\n\nLoad check: planned weekly load %d vs last week %d (within approximately +10%% rule)."

const guardrailNote = "\n\nLoad guardrail applied: weekly load reduced to stay within +10%% of last week (%d → target ≤ %d)."

// AllowedWeeklyMax is the progression ceiling: 10% over last week, but
// never tighter than a flat +20 units so low prior loads can still grow.
func AllowedWeeklyMax(lastWeekLoad int) int {
	pct := int(math.Round(float64(lastWeekLoad) * 1.10))
	flat := lastWeekLoad + 20
	if pct > flat {
		return pct
	}
	return flat
}

// ApplyLoadGuardrail caps a finalized week against last week's total load.
// It returns updated copies and never drops or reorders sessions.
//
// With no prior load the guardrail is a no-op. Within the allowed band only
// the first session is annotated with the totals; when scaling is needed
// every session gets the explanatory note. The asymmetry is intentional: a
// reduced week must explain itself on each session, a passing week only
// once.
func ApplyLoadGuardrail(sessions []domain.Session, lastWeekLoad int) []domain.Session {
	out := domain.CloneSessions(sessions)
	if lastWeekLoad <= 0 || len(out) == 0 {
		return out
	}

	currentTotal := domain.TotalLoad(out)
	allowedMax := AllowedWeeklyMax(lastWeekLoad)

	if currentTotal <= allowedMax {
		out[0].Notes += fmt.Sprintf(loadCheckNote, currentTotal, lastWeekLoad)
		return out
	}

	factor := float64(allowedMax) / float64(currentTotal)
	for i := range out {
		scaled := int(math.Round(float64(out[i].LoadUnits) * factor))
		if scaled < minScaledLoad {
			scaled = minScaledLoad
		}
		out[i].LoadUnits = scaled
		out[i].Notes += fmt.Sprintf(guardrailNote, lastWeekLoad, allowedMax)
	}
	return out
}
