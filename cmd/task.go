package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/studyplan/internal/config"
	"github.com/rogersnm/studyplan/internal/editor"
	"github.com/rogersnm/studyplan/internal/model"
	"github.com/rogersnm/studyplan/internal/render"
	"github.com/rogersnm/studyplan/internal/store"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add [--] <name> <hours>",
		Short: "Add a task with estimated hours (put -- before arguments starting with -)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
			if err != nil {
				return fmt.Errorf("please enter a valid number of hours (greater than 0)")
			}
			t, err := a.st.AddTask(args[0], hours)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s (#%d)\n", t.Name, t.ID)
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			switch status {
			case "", "pending", "completed":
			default:
				return fmt.Errorf("invalid status %q: must be pending or completed", status)
			}
			tasks, err := a.st.LoadAll()
			if err != nil {
				return err
			}

			var filtered []model.Task
			for _, t := range tasks {
				if (status == "pending" && t.Completed) || (status == "completed" && !t.Completed) {
					continue
				}
				filtered = append(filtered, t)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.RenderTaskTable(filtered))
			return nil
		},
	}
	cmd.Flags().StringP("status", "s", "", "filter by status (pending, completed)")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := a.st.GetTask(id)
			if err != nil {
				return err
			}

			fields := []string{
				render.RenderField("ID", strconv.Itoa(t.ID)),
				render.RenderField("Hours", render.FormatHours(t.EstimatedHours)),
				render.RenderField("Status", render.RenderStatus(t.Completed)),
				render.RenderField("Created", t.CreatedDate.String()),
			}
			if t.CompletedDate != nil {
				fields = append(fields, render.RenderField("Completed", t.CompletedDate.String()))
			}
			fmt.Fprint(cmd.OutOrStdout(), render.RenderEntityHeader(t.Name, fields))
			return nil
		},
	}
}

func newCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.lookupTask(args[0])
			if err != nil {
				return err
			}
			if err := a.st.CompleteTask(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task #%d marked as completed\n", id)
			return nil
		},
	}
}

func newReopenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <id>",
		Short: "Mark a completed task as pending again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.lookupTask(args[0])
			if err != nil {
				return err
			}
			if err := a.st.ReopenTask(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task #%d reopened\n", id)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := a.st.GetTask(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task: %s (#%d)\n", t.Name, t.ID)
			if err := confirmDelete(cmd, t); err != nil {
				return err
			}
			if err := a.st.DeleteTask(t.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", t.ID)
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "skip confirmation")
	return cmd
}

func confirmDelete(cmd *cobra.Command, t *model.Task) error {
	if force, _ := cmd.Flags().GetBool("force"); force {
		return nil
	}
	var ok bool
	if err := huh.NewConfirm().
		Title(fmt.Sprintf("Are you sure you want to delete %q?", t.Name)).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run(); err != nil {
		return fmt.Errorf("delete cancelled")
	}
	if !ok {
		return fmt.Errorf("delete cancelled")
	}
	return nil
}

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the JSON task file in $EDITOR",
		RunE: func(cmd *cobra.Command, args []string) error {
			local, ok := a.st.(*store.LocalStore)
			if !ok {
				return fmt.Errorf("edit needs the json backend (current backend: %s)", config.BackendSQLite)
			}
			if err := editor.Open(local.Path); err != nil {
				return err
			}
			tasks, err := local.LoadAll()
			if err != nil {
				return fmt.Errorf("task file no longer loads: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d task(s) in %s\n", len(tasks), local.Path)
			return nil
		},
	}
}
