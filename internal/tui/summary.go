package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shiroink/internal/batch"
)

type SummaryRow struct {
	Label string
	Value string
}

// RunSummaryRows flattens a run's error summary into renderable rows.
func RunSummaryRows(processed, bundles int, s batch.Summary) []SummaryRow {
	rows := []SummaryRow{
		{Label: "Pages converted", Value: fmt.Sprintf("%d", processed)},
		{Label: "Bundles written", Value: fmt.Sprintf("%d", bundles)},
		{Label: "Total errors", Value: fmt.Sprintf("%d", s.Total)},
	}
	if s.FilesWithErrors > 0 {
		rows = append(rows, SummaryRow{
			Label: "Files with errors",
			Value: fmt.Sprintf("%d", s.FilesWithErrors),
		})
	}
	for _, sev := range []batch.Severity{batch.SeverityWarning, batch.SeverityError, batch.SeverityCritical} {
		if n := s.BySeverity[sev]; n > 0 {
			rows = append(rows, SummaryRow{
				Label: fmt.Sprintf("  %s", sev),
				Value: fmt.Sprintf("%d", n),
			})
		}
	}
	steps := make([]string, 0, len(s.ByStep))
	for step := range s.ByStep {
		steps = append(steps, step)
	}
	sort.Strings(steps)
	for _, step := range steps {
		rows = append(rows, SummaryRow{
			Label: fmt.Sprintf("  step %s", step),
			Value: fmt.Sprintf("%d", s.ByStep[step]),
		})
	}
	if s.WorstFile != "" {
		rows = append(rows, SummaryRow{
			Label: "Most failures",
			Value: fmt.Sprintf("%s (%d)", s.WorstFile, s.WorstFileCount),
		})
	}
	return rows
}

func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}

	for _, row := range rows {
		label := padRight(row.Label, labelWidth)
		value := padRight(row.Value, valueWidth)
		line := fmt.Sprintf("%s | %s", labelStyle.Render(label), valueStyle.Render(value))
		lines = append(lines, line)
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

var valueStyle = lipgloss.NewStyle().Foreground(ColorInk).Bold(true)
