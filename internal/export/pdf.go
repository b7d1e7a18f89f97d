// Package export renders a finalized weekly plan as a downloadable PDF.
package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/nlebedev/corner/internal/domain"
)

// column widths in mm for the plan table.
var planColumns = []struct {
	title string
	width float64
}{
	{"Day", 20},
	{"Focus", 90},
	{"Dur (min)", 30},
	{"Load", 30},
}

// PlanPDF renders the plan table, its inputs and the coach message as an A4
// PDF. Callers treat an error as "export unavailable", never as fatal.
func PlanPDF(wp *domain.WeekPlan, coachText string) ([]byte, error) {
	if wp == nil {
		return nil, fmt.Errorf("no plan to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; plan text carries en dashes and similar.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Weekly Training Plan", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Sport: %s | Level: %s", wp.Meta.Sport, wp.Meta.Level)),
		"", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Last week's load (units): %d", wp.Meta.LastWeekLoad),
		"", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	for _, col := range planColumns {
		pdf.CellFormat(col.width, 7, col.title, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, s := range wp.Sessions {
		pdf.CellFormat(planColumns[0].width, 6, s.Day, "", 0, "L", false, 0, "")
		pdf.CellFormat(planColumns[1].width, 6, tr(truncate(s.Focus, 40)), "", 0, "L", false, 0, "")
		pdf.CellFormat(planColumns[2].width, 6, fmt.Sprintf("%d", s.DurationMin), "", 0, "L", false, 0, "")
		pdf.CellFormat(planColumns[3].width, 6, fmt.Sprintf("%d", s.LoadUnits), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Motivational Coach Message", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(coachText), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
