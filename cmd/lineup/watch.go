package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lineup/internal/config"
	"lineup/internal/engine"
	"lineup/internal/ingest"
	"lineup/internal/tui"
)

var (
	watchWorkers int
	watchStrict  bool
	watchLayout  string
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-validate a placement file on every change",
	Long: `Watch a placement file and re-run validation whenever it changes.

The report is shown in a scrollable live view. Press q to quit.

Example:
  lineup watch placements.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchWorkers, "workers", 0, "Number of input partitions aggregated in parallel")
	watchCmd.Flags().BoolVar(&watchStrict, "strict", false, "Reject non-canonical piece types")
	watchCmd.Flags().StringVar(&watchLayout, "layout", "", "YAML layout override file")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("workers") {
		cfg.Engine.Workers = watchWorkers
	}
	if watchStrict {
		cfg.Engine.StrictPieces = true
	}
	if cmd.Flags().Changed("layout") {
		cfg.Layout.File = watchLayout
	}

	layouts, err := loadLayouts(cfg)
	if err != nil {
		return err
	}

	watcher, err := ingest.Watch(args[0])
	if err != nil {
		return err
	}
	defer watcher.Close()

	eng := engine.New(layouts, engine.Options{
		Workers:      cfg.Engine.Workers,
		StrictPieces: cfg.Engine.StrictPieces,
	})

	app := tui.NewWatchApp(args[0], eng, watcher)
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run watch view: %w", err)
	}
	return nil
}
