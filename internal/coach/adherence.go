package coach

import (
	"fmt"
	"strings"

	"github.com/nlebedev/corner/internal/domain"
)

// RPE thresholds for the qualitative adherence comment.
const (
	rpeHigh          = 8.0
	rpeLow           = 3.0
	progressCompRate = 0.7
)

// SummarizeAdherence turns post-hoc completion/RPE entries into a short
// reflection: completion rate, average effort over completed sessions, and
// a qualitative comment. Returns "" when there is nothing to summarize.
func SummarizeAdherence(entries []domain.AdherenceEntry) string {
	if len(entries) == 0 {
		return ""
	}

	completed := 0
	rpeSum := 0
	for _, e := range entries {
		if e.Completed {
			completed++
			rpeSum += e.RPE
		}
	}
	compRate := float64(completed) / float64(len(entries))

	parts := []string{fmt.Sprintf("You completed %d of %d sessions (%.0f%% adherence).",
		completed, len(entries), compRate*100)}

	if completed > 0 {
		avgRPE := float64(rpeSum) / float64(completed)
		parts = append(parts, fmt.Sprintf("Average effort on completed sessions was about %.1f/10.", avgRPE))

		switch {
		case avgRPE >= rpeHigh:
			parts = append(parts, "That is quite high. Next week, it may be safer to hold or slightly "+
				"reduce intensity rather than pushing further.")
		case avgRPE <= rpeLow && compRate >= progressCompRate:
			parts = append(parts, "Effort scores are low and consistency is good. A small progression "+
				"next week may be reasonable if everything feels comfortable.")
		default:
			parts = append(parts, "Effort looks broadly appropriate. Keep aiming for this balance of challenge and control.")
		}
	}

	return strings.Join(parts, " ")
}
