package cmd

import (
	"fmt"

	"github.com/rogersnm/studyplan/internal/render"
	"github.com/rogersnm/studyplan/internal/stats"
	"github.com/spf13/cobra"
)

const noTasksMessage = "No tasks to display. Please add some tasks first!"

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show study statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.st.LoadAll()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.RenderSummary(stats.Summarize(tasks)))
			return nil
		},
	}
}

func newChartCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Chart completed against pending tasks and hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.st.LoadAll()
			if err != nil {
				return err
			}
			s := stats.Summarize(tasks)
			if s.TotalTasks == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), noTasksMessage)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), render.RenderCompletionChart(s))
			return nil
		},
	}
}

func newTrendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Show productivity by creation date",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.st.LoadAll()
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), noTasksMessage)
				return nil
			}
			days := stats.ProductivityByDate(tasks)
			fmt.Fprintln(cmd.OutOrStdout(), render.RenderTrend(days, a.cfg.DailyGoalHours))
			return nil
		},
	}
}

func newReportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a markdown study report",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.st.LoadAll()
			if err != nil {
				return err
			}
			report := render.Report(stats.Summarize(tasks), stats.ProductivityByDate(tasks))

			if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
				rendered, err := render.RenderMarkdown(report)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().Bool("pretty", false, "render with ANSI styling")
	return cmd
}
