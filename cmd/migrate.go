package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/rogersnm/studyplan/internal/store"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-json <file>",
		Short: "Copy tasks from a JSON task file into the current store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := store.NewLocal(args[0])
			if local, ok := a.st.(*store.LocalStore); ok && samePath(local.Path, src.Path) {
				return fmt.Errorf("%s is already the current task file", args[0])
			}

			tasks, err := src.LoadAll()
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No tasks found in %s\n", args[0])
				return nil
			}
			imported, err := a.st.ImportTasks(tasks)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d task(s) from %s\n", len(imported), args[0])
			return nil
		},
	}
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
