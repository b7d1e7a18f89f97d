package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nlebedev/corner/internal/cli/formatter"
	"github.com/nlebedev/corner/internal/domain"
	"github.com/nlebedev/corner/internal/export"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		sport    string
		level    string
		sessions int
		lastLoad int
		contra   string
		pdfPath  string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a weekly training plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			meta := domain.PlanMeta{
				Sport:             sport,
				Level:             level,
				SessionsPerWeek:   sessions,
				LastWeekLoad:      lastLoad,
				Contraindications: contra,
			}

			// Open the wizard only on a terminal with no explicit inputs.
			if app.interactive() && !anyPlanFlagChanged(cmd.Flags()) {
				wizardMeta, err := runPlanWizard(meta)
				if err != nil {
					return err
				}
				meta = wizardMeta
			}
			if meta.SessionsPerWeek < 1 {
				meta.SessionsPerWeek = 1
			}

			wp := app.Planner.GenerateWeek(cmd.Context(), meta)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(wp))

			if app.Messages != nil {
				msg := app.Messages.Message(cmd.Context(), wp)
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCoachMessage(msg))
				if pdfPath != "" {
					return writePlanPDF(wp, msg, pdfPath)
				}
			} else if pdfPath != "" {
				return writePlanPDF(wp, "", pdfPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sport, "sport", "boxing", "Sport to plan for")
	cmd.Flags().StringVar(&level, "level", "novice", "Experience level (novice/intermediate/advanced)")
	cmd.Flags().IntVar(&sessions, "sessions", 3, "Sessions per week")
	cmd.Flags().IntVar(&lastLoad, "last-week-load", 0, "Last week's total load units (0 if unknown)")
	cmd.Flags().StringVar(&contra, "contra", "", "Contraindications to respect")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Also write the plan as a PDF to this path")

	return cmd
}

func anyPlanFlagChanged(flags *pflag.FlagSet) bool {
	changed := false
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "sport", "level", "sessions", "last-week-load", "contra":
			changed = true
		}
	})
	return changed
}

func writePlanPDF(wp *domain.WeekPlan, coachText, path string) error {
	data, err := export.PlanPDF(wp, coachText)
	if err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
