package cmd

import (
	"fmt"
	"os"

	"github.com/rogersnm/studyplan/internal/repofile"
	"github.com/spf13/cobra"
)

func newLinkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "link <file>",
		Short:       "Use a separate JSON task file inside the current directory tree",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"store": "none"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			if err := repofile.Write(cwd, args[0]); err != nil {
				return fmt.Errorf("writing %s: %w", repofile.FileName, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Linked %s to %s\n", cwd, args[0])
			return nil
		},
	}
}

func newUnlinkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "unlink",
		Short:       "Remove the task file link from the current directory",
		Annotations: map[string]string{"store": "none"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			if err := repofile.Remove(cwd); err != nil {
				return fmt.Errorf("removing %s: %w", repofile.FileName, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Unlinked")
			return nil
		},
	}
}
