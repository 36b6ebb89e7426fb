// Package render turns tasks and statistics into terminal output.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rogersnm/studyplan/internal/stats"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func RenderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func RenderField(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

func RenderStatus(completed bool) string {
	if completed {
		return doneStyle.Render("✓ Completed")
	}
	return pendingStyle.Render("○ Pending")
}

func RenderEntityHeader(title string, fields []string) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")
	for _, f := range fields {
		sb.WriteString("  " + f + "\n")
	}
	return sb.String()
}

// RenderSummary renders the statistics panel.
func RenderSummary(s stats.Summary) string {
	fields := []string{
		RenderField("Total Tasks", strconv.Itoa(s.TotalTasks)),
		RenderField("Completed", fmt.Sprintf("%d ✓", s.CompletedTasks)),
		RenderField("Pending", fmt.Sprintf("%d ○", s.PendingTasks)),
		"",
		RenderField("Total Estimated Time", fmt.Sprintf("%.1f hours", s.TotalHours)),
		RenderField("Completed Time", fmt.Sprintf("%.1f hours", s.CompletedHours)),
		RenderField("Pending Time", fmt.Sprintf("%.1f hours", s.PendingHours)),
		"",
		RenderField("Completion Rate", fmt.Sprintf("%.1f%%", s.CompletionRate())),
	}
	return RenderEntityHeader("STUDY STATISTICS", fields)
}

// FormatHours prints whole numbers with one decimal place ("2.0") and keeps
// every other value at its shortest exact form ("2.25").
func FormatHours(h float64) string {
	if h == math.Trunc(h) {
		return strconv.FormatFloat(h, 'f', 1, 64)
	}
	return strconv.FormatFloat(h, 'f', -1, 64)
}
