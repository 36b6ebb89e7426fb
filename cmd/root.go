package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/studyplan/internal/config"
	"github.com/rogersnm/studyplan/internal/logging"
	"github.com/rogersnm/studyplan/internal/repofile"
	"github.com/rogersnm/studyplan/internal/store"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// app carries the dependencies every command needs. Commands receive it
// explicitly instead of reaching for package state.
type app struct {
	v       *viper.Viper
	dataDir string
	cfg     *config.Config
	st      store.Store
}

func newApp() *app {
	v := viper.New()
	v.SetEnvPrefix("STUDYPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &app{v: v}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".studyplan")
	}
	return filepath.Join(home, ".studyplan")
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "studyplan",
		Short:   "Track study tasks, estimated hours and progress",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("data-dir", defaultDataDir(), "data directory path")
	flags.String("file", "", "JSON task file to use instead of the configured store")
	flags.Bool("debug", false, "enable debug logging")
	for _, name := range []string{"data-dir", "file", "debug"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newCompleteCmd(a),
		newReopenCmd(a),
		newDeleteCmd(a),
		newEditCmd(a),
		newStatsCmd(a),
		newChartCmd(a),
		newTrendCmd(a),
		newReportCmd(a),
		newPlanCmd(a),
		newMigrateCmd(a),
		newLinkCmd(a),
		newUnlinkCmd(a),
		newConfigCmd(a),
	)

	mtp.WithDescribe(rootCmd, describeOptions())
	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	a := newApp()
	err := newRootCmd(a).Execute()
	if cerr := a.close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func (a *app) setup(cmd *cobra.Command) error {
	logging.Init(a.v.GetBool("debug"))

	a.dataDir = a.v.GetString("data-dir")
	if err := os.MkdirAll(a.dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	var err error
	a.cfg, err = config.Load(a.dataDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Config and link commands work without opening a store
	if a.st != nil || !needsStore(cmd) {
		return nil
	}
	a.st, err = a.openStore()
	return err
}

func needsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["store"] == "none" {
			return false
		}
	}
	return true
}

// taskFile returns an explicitly chosen JSON task file: the --file flag
// first, then a link file found above the working directory.
func (a *app) taskFile() (string, error) {
	if f := a.v.GetString("file"); f != "" {
		return f, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", nil
	}
	linked, _, err := repofile.Find(cwd)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", repofile.FileName, err)
	}
	return linked, nil
}

func (a *app) openStore() (store.Store, error) {
	path, err := a.taskFile()
	if err != nil {
		return nil, err
	}
	if path == "" && a.cfg.BackendName() == config.BackendSQLite {
		path = a.cfg.StorePath(a.dataDir)
		log.Debug().Str("path", path).Msg("opening sqlite store")
		return store.OpenSQLite(path)
	}
	if path == "" {
		path = a.cfg.StorePath(a.dataDir)
	}
	log.Debug().Str("path", path).Bool("lenient", a.cfg.LenientLoad).Msg("opening json store")
	s := store.NewLocal(path)
	s.Lenient = a.cfg.LenientLoad
	return s, nil
}

func (a *app) close() error {
	if a.st == nil {
		return nil
	}
	err := a.st.Close()
	a.st = nil
	return err
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q: must be a positive whole number", s)
	}
	return id, nil
}

// lookupTask turns the store's silent no-op on unknown ids into a user-facing error.
func (a *app) lookupTask(arg string) (int, error) {
	id, err := parseID(arg)
	if err != nil {
		return 0, err
	}
	if _, err := a.st.GetTask(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, fmt.Errorf("task #%d not found", id)
		}
		return 0, err
	}
	return id, nil
}

func describeOptions() *mtp.DescribeOptions {
	return &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"add": {
				Examples: []mtp.Example{
					{Description: "Add a task with an estimate", Command: "studyplan add \"Read Chapter 1\" 2.5"},
				},
			},
			"list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of tasks with ID, name, hours, status, and creation date",
				},
				Examples: []mtp.Example{
					{Description: "List pending tasks", Command: "studyplan list --status pending"},
				},
			},
			"complete": {
				Examples: []mtp.Example{
					{Description: "Mark a task complete", Command: "studyplan complete 3"},
				},
			},
			"delete": {
				Examples: []mtp.Example{
					{Description: "Delete a task (interactive confirm)", Command: "studyplan delete 3"},
					{Description: "Delete a task (skip confirm)", Command: "studyplan delete 3 --force"},
				},
			},
			"stats": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Task and hour totals with the completion rate",
				},
			},
			"trend": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Tasks and hours grouped by creation date, oldest first",
				},
			},
			"report": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/markdown",
					Description: "Markdown study report; ANSI-rendered with --pretty",
				},
			},
			"plan import": {
				Examples: []mtp.Example{
					{Description: "Add every task listed in a study plan", Command: "studyplan plan import week1.md"},
				},
			},
			"plan export": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/markdown",
					Description: "Study plan with YAML frontmatter listing pending tasks",
				},
			},
			"migrate-json": {
				Examples: []mtp.Example{
					{Description: "Copy tasks from an old JSON file into the configured store", Command: "studyplan migrate-json study_data.json"},
				},
			},
		},
	}
}
