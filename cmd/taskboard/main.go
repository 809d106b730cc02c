package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/qwikish/taskboard/internal/store"
	"github.com/qwikish/taskboard/internal/ui"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var dbPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskboard",
		Short: "Kanban board, pomodoro timer and daily planner in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: XDG data dir)")

	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(resetCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openAdapter opens the storage database at --db or the default location.
func openAdapter() (*store.SQLiteAdapter, error) {
	path := dbPath
	if path == "" {
		var err error
		path, err = store.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
	}
	return store.OpenSQLite(path)
}

// newLogger writes diagnostics to a log file next to the database; the
// terminal belongs to the TUI.
func newLogger() *slog.Logger {
	path, err := store.DefaultPath()
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	f, err := os.OpenFile(filepath.Join(filepath.Dir(path), "taskboard.log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewTextHandler(f, nil))
}

func runTUI() error {
	adapter, err := openAdapter()
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer adapter.Close()

	log := newLogger()
	s := store.New(adapter, store.WithLogger(log))

	app := ui.NewApp(s, adapter, log)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run application: %w", err)
	}
	return nil
}

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write tasks, projects and tags as a JSON snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := openAdapter()
			if err != nil {
				return err
			}
			defer adapter.Close()

			s := store.New(adapter, store.WithLogger(newLogger()))
			if err := s.WriteExport(out); err != nil {
				return err
			}
			fmt.Printf("exported to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "taskboard-export.json", "output file")
	return cmd
}

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all stored data and return to the default state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to clear data without --force")
			}
			adapter, err := openAdapter()
			if err != nil {
				return err
			}
			defer adapter.Close()

			if err := adapter.Reset(); err != nil {
				return err
			}
			fmt.Println("all data cleared")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("taskboard %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
