// Package cmd is the prepcoach command tree.
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/prepcoach/internal/config"
	"github.com/abhisek/prepcoach/internal/i18n"
	"github.com/abhisek/prepcoach/internal/logging"
	"github.com/abhisek/prepcoach/internal/store"
)

// env is what PersistentPreRunE resolves for every command.
type env struct {
	cfg    *config.Config
	log    *zap.Logger
	sync   func()
	locale i18n.Locale
}

var rt env

var rootCmd = &cobra.Command{
	Use:   "prepcoach",
	Short: "Admission test self-assessment and study planner",
	Long: `PrepCoach scores a short self-assessment across the exam domains and
turns the result into a sprint-by-sprint study roadmap fitted to the weeks
and weekly hours you have left.`,
	SilenceUsage: true,
	PersistentPostRun: func(*cobra.Command, []string) {
		if rt.sync != nil {
			rt.sync()
		}
	},
	RunE: runAssess,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Assigned here rather than in the literal: setup refers to rootCmd.
	rootCmd.PersistentPreRunE = setup

	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides PREPCOACH_DB_PATH)")
	pf.String("config", "", "Config file (default: prepcoach.yaml in the user config dir or .)")
	pf.String("locale", "", "Display language: en or it")
	pf.BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(curriculumCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and builds the logger. The TUI gets a
// file-only logger since stderr is the terminal it draws on.
func setup(cmd *cobra.Command, _ []string) error {
	opts := config.Options{Overrides: map[string]any{}}
	opts.ConfigFile, _ = cmd.Flags().GetString("config")
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		opts.Overrides["db_path"] = p
	}
	if l, _ := cmd.Flags().GetString("locale"); l != "" {
		loc, err := i18n.ParseLocale(l)
		if err != nil {
			return err
		}
		opts.Overrides["locale"] = string(loc)
	}

	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}

	logOpts := cfg.Log
	if logOpts.File == "" {
		if dir, err := store.DataDir(); err == nil {
			logOpts.File = filepath.Join(dir, "prepcoach.log")
		}
	}
	logOpts.Console = cmd != rootCmd && cmd != assessCmd
	logOpts.ConsoleOut = cmd.ErrOrStderr()
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		logOpts.ConsoleLevel = "debug"
	}
	log, sync, err := logging.New(logOpts)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	locale, _ := i18n.ParseLocale(cfg.Locale)
	rt = env{cfg: cfg, log: log.With(zap.String("cmd", cmd.Name())), sync: sync, locale: locale}
	return nil
}

// openStore opens the configured database, creating its directory.
func openStore() (*store.Store, error) {
	path := rt.cfg.DBPath
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create DB dir: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
