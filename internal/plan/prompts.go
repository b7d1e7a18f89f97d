package plan

import (
	"fmt"
	"strings"

	"github.com/nlebedev/corner/internal/domain"
)

const planSystemPrompt = "You are a cautious strength and conditioning coach who avoids unnecessary risk."

const planSafetyContext = "General rules:\n" +
	"- Focus on non-contact, non-maximal work.\n" +
	"- Use body-weight, light conditioning, or bag/shadow work (for boxing).\n" +
	"- No heavy barbell max testing, no dangerous plyometrics.\n" +
	"- Encourage listening to the body, stopping if anything feels sharp or worrying.\n"

// buildPlanPrompt assembles the weekly-plan request, including an explicit
// example of the JSON shape the response must follow.
func buildPlanPrompt(meta domain.PlanMeta, targetMinutes int) string {
	contra := meta.Contraindications
	if strings.TrimSpace(contra) == "" {
		contra = "None stated"
	}

	var b strings.Builder
	b.WriteString("Design a safe one-week training plan for a recreational athlete.\n")
	b.WriteString("Return ONLY valid JSON with a list under key 'sessions', no extra commentary.\n\n")
	fmt.Fprintf(&b, "Sport: %s\n", meta.Sport)
	fmt.Fprintf(&b, "Level: %s\n", meta.Level)
	fmt.Fprintf(&b, "Approximate sessions per week: %d\n", meta.SessionsPerWeek)
	fmt.Fprintf(&b, "Approximate total minutes target: %d\n", targetMinutes)
	fmt.Fprintf(&b, "Things to be careful with: %s\n\n", contra)
	b.WriteString(planSafetyContext)
	b.WriteString("\nFor each session, include fields:\n")
	b.WriteString("- day: one of Mon, Tue, Wed, Thu, Fri, Sat, Sun\n")
	b.WriteString("- focus: short description of the main aim (e.g., 'Intervals and tempo work')\n")
	b.WriteString("- intensity: 'Easy', 'Moderate', or 'Hard'\n")
	b.WriteString("- duration_min: integer between 20 and 60 minutes\n")
	b.WriteString("- notes: outline warm-up, main part and cool-down in plain language\n\n")
	b.WriteString("Example JSON structure:\n")
	b.WriteString("{\n")
	b.WriteString("  \"sessions\": [\n")
	b.WriteString("    {\n")
	b.WriteString("      \"day\": \"Tue\",\n")
	b.WriteString("      \"focus\": \"Easy aerobic base run\",\n")
	b.WriteString("      \"intensity\": \"Easy\",\n")
	b.WriteString("      \"duration_min\": 30,\n")
	b.WriteString("      \"notes\": \"Warm-up: ... Main: ... Cool-down: ...\"\n")
	b.WriteString("    }\n")
	b.WriteString("  ]\n")
	b.WriteString("}\n")
	return b.String()
}
