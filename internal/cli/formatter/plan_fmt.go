package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nlebedev/corner/internal/domain"
)

// FormatPlan renders a weekly plan as a header, session table, totals line
// and a notes section for sessions that carry notes.
func FormatPlan(wp *domain.WeekPlan) string {
	var b strings.Builder

	source := "template"
	if wp.Source == domain.SourceLLM {
		source = "model"
	}
	b.WriteString(StyleHeader.Render(fmt.Sprintf("Week plan — %s (%s, %s)",
		wp.Meta.Sport, wp.Meta.Level, source)))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(wp.Sessions))
	for _, s := range wp.Sessions {
		rows = append(rows, []string{
			StyleBlue.Render(s.Day),
			s.Focus,
			IntensityStyle(s.Intensity).Render(s.Intensity),
			strconv.Itoa(s.DurationMin),
			strconv.Itoa(s.LoadUnits),
		})
	}
	b.WriteString(RenderTable([]string{"DAY", "FOCUS", "INTENSITY", "MIN", "LOAD"}, rows))

	b.WriteString(StyleDim.Render(fmt.Sprintf("Total: %d min, %d load units",
		domain.TotalMinutes(wp.Sessions), domain.TotalLoad(wp.Sessions))))
	b.WriteString("\n")

	for _, s := range wp.Sessions {
		note := strings.TrimSpace(s.Notes)
		if note == "" {
			continue
		}
		note = strings.ReplaceAll(note, "\n\n", " ")
		fmt.Fprintf(&b, "\n%s %s\n", StyleBlue.Render(s.Day+":"), note)
	}

	return b.String()
}

// FormatCoachMessage renders the weekly coach message with a styled heading.
func FormatCoachMessage(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return StyleHeader.Render("Coach") + "\n" + text + "\n"
}
