package cmd

import (
	"fmt"

	"github.com/rogersnm/studyplan/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:         "config",
		Short:       "Show or change settings",
		Annotations: map[string]string{"store": "none"},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "data_dir: %s\n", a.dataDir)
			for _, key := range config.Keys {
				value, err := a.cfg.Get(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %s\n", key, value)
			}
			fmt.Fprintf(out, "store: %s\n", a.cfg.StorePath(a.dataDir))
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting (backend, data_file, lenient_load, daily_goal_hours)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := config.Save(a.dataDir, a.cfg); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
			return nil
		},
	}

	configCmd.AddCommand(showCmd, setCmd)
	return configCmd
}
