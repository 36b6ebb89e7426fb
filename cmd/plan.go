package cmd

import (
	"fmt"
	"os"

	"github.com/rogersnm/studyplan/internal/plan"
	"github.com/spf13/cobra"
)

func newPlanCmd(a *app) *cobra.Command {
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Import and export markdown study plans",
	}

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add every task listed in a study plan's frontmatter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening plan: %w", err)
			}
			defer f.Close()

			p, err := plan.Parse(f)
			if err != nil {
				return err
			}
			added, err := plan.Import(a.st, p)
			for _, t := range added {
				fmt.Fprintf(cmd.OutOrStdout(), "Added task %s (#%d)\n", t.Name, t.ID)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d task(s) from %s\n", len(added), args[0])
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write pending tasks as a study plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			output, _ := cmd.Flags().GetString("output")

			tasks, err := a.st.LoadAll()
			if err != nil {
				return err
			}
			data, err := plan.Marshal(plan.FromTasks(tasks, all))
			if err != nil {
				return err
			}
			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("writing plan: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}
	exportCmd.Flags().BoolP("all", "a", false, "include completed tasks")
	exportCmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")

	planCmd.AddCommand(importCmd, exportCmd)
	return planCmd
}
