package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rogersnm/studyplan/internal/stats"
)

const barWidth = 30

var (
	barDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	barPendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9800"))
	barHoursStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
)

// Bar draws a horizontal bar of width cells, pct percent filled.
func Bar(pct float64, width int) string {
	pct = math.Max(0, math.Min(100, pct))
	filled := int(math.Round(pct / 100 * float64(width)))
	return barDoneStyle.Render(strings.Repeat("█", filled)) +
		barPendingStyle.Render(strings.Repeat("░", width-filled))
}

// RenderCompletionChart shows completed against pending work, by task count
// and by estimated hours.
func RenderCompletionChart(s stats.Summary) string {
	taskRate := s.CompletionRate()
	hourRate := s.HoursCompletionRate()

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Tasks: Completed vs Pending"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  %s %5.1f%% completed (%d), %5.1f%% pending (%d)\n",
		Bar(taskRate, barWidth), taskRate, s.CompletedTasks, 100-taskRate, s.PendingTasks)
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render("Study Hours: Completed vs Pending"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  %s %5.1f%% completed (%.1f h), %5.1f%% pending (%.1f h)\n",
		Bar(hourRate, barWidth), hourRate, s.CompletedHours, 100-hourRate, s.PendingHours)
	return sb.String()
}

// RenderTrend tabulates productivity per creation date with an hours bar
// scaled to the busiest day. goalHours of zero disables the goal column.
func RenderTrend(days []stats.DayProductivity, goalHours float64) string {
	if len(days) == 0 {
		return "No data to display!"
	}

	maxHours := 0.0
	for _, d := range days {
		maxHours = math.Max(maxHours, d.Hours)
	}

	headers := []string{"Date", "Completed", "Total", "Hours", ""}
	if goalHours > 0 {
		headers = append(headers, "Goal")
	}
	rows := make([][]string, len(days))
	for i, d := range days {
		width := 0
		if maxHours > 0 {
			width = int(math.Round(d.Hours / maxHours * barWidth))
		}
		row := []string{
			d.Date,
			strconv.Itoa(d.CompletedCount),
			strconv.Itoa(d.TotalCount),
			FormatHours(d.Hours),
			barHoursStyle.Render(strings.Repeat("█", width)),
		}
		if goalHours > 0 {
			mark := ""
			if d.Hours >= goalHours {
				mark = "✓"
			}
			row = append(row, mark)
		}
		rows[i] = row
	}
	return renderTable(headers, rows)
}
