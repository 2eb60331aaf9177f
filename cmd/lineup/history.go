package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"lineup/internal/render"
	"lineup/internal/state"
)

var (
	historyLimit      int
	historyShowFormat string
	historyPurgeAge   time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past validation runs",
	Long: `List validation runs stored in the history database.

Each run shows its ID, source, age, and summary counts. Use
'lineup history show <id>' to re-render a stored report.`,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Re-render a stored validation report",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete old validation runs",
	RunE:  runHistoryPurge,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of runs to list")
	historyShowCmd.Flags().StringVarP(&historyShowFormat, "format", "f", "text", "Output format: text, json, or yaml")
	historyPurgeCmd.Flags().DurationVar(&historyPurgeAge, "older-than", 30*24*time.Hour, "Delete runs older than this duration")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyPurgeCmd)
}

// openHistory opens and migrates the global history database.
func openHistory() (*state.DB, error) {
	db, err := state.OpenGlobal()
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history database: %w", err)
	}
	return db, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.ListRuns(historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No validation runs recorded. Run 'lineup validate <file>' first.")
		return nil
	}

	for _, run := range runs {
		age := formatDuration(time.Since(run.StartedAt))
		fmt.Printf("%s  %s (%s ago): %d lines, %d conflicts, %d invalid, %d missing, %d extra\n",
			run.ID, run.Source, age, run.Lines, run.Conflicts, run.Invalid, run.Missing, run.Extra)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	run, err := db.GetRun(args[0])
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run with ID %s", args[0])
	}

	res, err := run.Result()
	if err != nil {
		return err
	}

	fmt.Printf("Run %s  %s (%s)\n\n", run.ID, run.Source, run.StartedAt.Format(time.RFC3339))
	return render.Render(os.Stdout, res, historyShowFormat, false)
}

func runHistoryPurge(cmd *cobra.Command, args []string) error {
	db, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	count, err := db.PurgeOldRuns(historyPurgeAge)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d runs older than %s\n", count, historyPurgeAge)
	return nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		if m > 0 {
			return fmt.Sprintf("%dh%dm", h, m)
		}
		return fmt.Sprintf("%dh", h)
	}
	days := int(d.Hours()) / 24
	return fmt.Sprintf("%dd", days)
}
