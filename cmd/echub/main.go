package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"echub/internal/agenda"
	"echub/internal/bridge"
	"echub/internal/config"
	"echub/internal/store"
	"echub/internal/update"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "echub failed: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "echub",
		Short:        "Terminal hub for deals, tasks, calendar and team knowledge",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
	root.AddCommand(newTUICmd(), newSeedCmd())
	return root
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
}

func newSeedCmd() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the SQLite schema and load the demo fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.OpenSQLite(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := store.MigrateUp(st.DB()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fx, err := store.LoadFixtures()
			if err != nil {
				return fmt.Errorf("load fixtures: %w", err)
			}
			if err := st.Seed(context.Background(), fx); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "echub.db", "path to the SQLite database")
	return cmd
}

func runTUI() error {
	cfg := config.RuntimeConfigFromEnv(config.DefaultRuntimeConfig())

	st, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	engine := agenda.NewEngine(cfg.AgendaBuffer)
	engine.Start()
	defer engine.Stop()
	if acts, err := st.ListActivities(context.Background()); err == nil {
		engine.ScheduleActivities(acts, cfg.ReminderHour, time.Local)
	}

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	m := update.NewModel(update.Deps{
		Store:    st,
		Bridge:   bridge.New(nil),
		Agenda:   engine,
		Config:   cfg,
		Notifier: notifier,
	})
	program := tea.NewProgram(m)
	_, err = program.Run()
	return err
}

func openStore(cfg config.RuntimeConfig) (store.Store, func(), error) {
	if cfg.DBPath == "" {
		st, err := store.NewSeededMemoryStore()
		if err != nil {
			return nil, nil, fmt.Errorf("seed memory store: %w", err)
		}
		return st, func() {}, nil
	}
	st, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := store.MigrateUp(st.DB()); err != nil {
		_ = st.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return st, func() { _ = st.Close() }, nil
}
