package render

import (
	"fmt"
	"strings"

	"github.com/rogersnm/studyplan/internal/stats"
)

// Report builds a markdown study report from a summary and its daily breakdown.
func Report(s stats.Summary, days []stats.DayProductivity) string {
	var sb strings.Builder
	sb.WriteString("# Study Report\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("| --- | --- |\n")
	fmt.Fprintf(&sb, "| Total Tasks | %d |\n", s.TotalTasks)
	fmt.Fprintf(&sb, "| Completed | %d |\n", s.CompletedTasks)
	fmt.Fprintf(&sb, "| Pending | %d |\n", s.PendingTasks)
	fmt.Fprintf(&sb, "| Total Estimated Time | %.1f hours |\n", s.TotalHours)
	fmt.Fprintf(&sb, "| Completed Time | %.1f hours |\n", s.CompletedHours)
	fmt.Fprintf(&sb, "| Pending Time | %.1f hours |\n", s.PendingHours)
	fmt.Fprintf(&sb, "| Completion Rate | %.1f%% |\n", s.CompletionRate())

	sb.WriteString("\n## Productivity by Date\n\n")
	if len(days) == 0 {
		sb.WriteString("_No tasks yet._\n")
		return sb.String()
	}
	sb.WriteString("| Date | Completed | Total | Hours |\n")
	sb.WriteString("| --- | --- | --- | --- |\n")
	for _, d := range days {
		fmt.Fprintf(&sb, "| %s | %d | %d | %s |\n", d.Date, d.CompletedCount, d.TotalCount, FormatHours(d.Hours))
	}
	return sb.String()
}
