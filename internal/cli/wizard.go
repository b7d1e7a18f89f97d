package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nlebedev/corner/internal/cli/formatter"
	"github.com/nlebedev/corner/internal/domain"
)

// cornerHuhTheme returns a custom huh theme using the formatter palette.
func cornerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runPlanWizard collects plan inputs interactively, seeded with defaults.
func runPlanWizard(seed domain.PlanMeta) (domain.PlanMeta, error) {
	sport := seed.Sport
	level := seed.Level
	sessions := strconv.Itoa(seed.SessionsPerWeek)
	lastLoad := strconv.Itoa(seed.LastWeekLoad)
	contra := seed.Contraindications

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sport").
				Placeholder("boxing").
				Value(&sport),
			huh.NewSelect[string]().
				Title("Level").
				Options(
					huh.NewOption("Novice", "novice"),
					huh.NewOption("Intermediate", "intermediate"),
					huh.NewOption("Advanced", "advanced"),
				).
				Value(&level),
			huh.NewInput().
				Title("Sessions per week").
				Placeholder("3").
				Value(&sessions).
				Validate(validateSessionCount),
			huh.NewInput().
				Title("Last week's load units (0 if unknown)").
				Placeholder("0").
				Value(&lastLoad).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Contraindications (blank for none)").
				Value(&contra),
		),
	).WithTheme(cornerHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return seed, err
	}

	meta := domain.PlanMeta{
		Sport:             strings.TrimSpace(sport),
		Level:             level,
		Contraindications: strings.TrimSpace(contra),
	}
	if meta.Sport == "" {
		meta.Sport = "boxing"
	}
	meta.SessionsPerWeek, _ = strconv.Atoi(strings.TrimSpace(sessions))
	if meta.SessionsPerWeek < 1 {
		meta.SessionsPerWeek = 1
	}
	meta.LastWeekLoad, _ = strconv.Atoi(strings.TrimSpace(lastLoad))
	return meta, nil
}

func validateSessionCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 14 {
		return fmt.Errorf("enter a number between 1 and 14")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err != nil || n < 0 {
		return fmt.Errorf("enter zero or a positive number")
	}
	return nil
}
