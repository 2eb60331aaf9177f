package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lineup/internal/config"
	"lineup/internal/engine"
	"lineup/internal/ingest"
	"lineup/internal/layout"
	"lineup/internal/render"
	"lineup/internal/state"
)

var (
	validateFormat    string
	validateNoColor   bool
	validateWorkers   int
	validateStrict    bool
	validateNoHistory bool
	validateLayout    string
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate placement records",
	Long: `Validate a set of placement records against the starting layout.

Reads placement lines from the given file, or from stdin when no file
is given. Each line must be "{Side} {PieceType} {Square}". Lines that
do not have that shape are dropped; records with a square outside the
board are reported as invalid placements.

Examples:
  lineup validate placements.txt
  cat placements.txt | lineup validate
  lineup validate --format json placements.txt
  lineup validate --workers 4 --strict placements.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "", "Output format: text, json, or yaml")
	validateCmd.Flags().BoolVar(&validateNoColor, "no-color", false, "Disable colored output")
	validateCmd.Flags().IntVar(&validateWorkers, "workers", 0, "Number of input partitions aggregated in parallel")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Reject non-canonical piece types")
	validateCmd.Flags().BoolVar(&validateNoHistory, "no-history", false, "Skip storing this run in the history database")
	validateCmd.Flags().StringVar(&validateLayout, "layout", "", "YAML layout override file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyValidateFlags(cmd, cfg)

	layouts, err := loadLayouts(cfg)
	if err != nil {
		return err
	}

	source := "stdin"
	var lines []string
	if len(args) > 0 {
		source = args[0]
		lines, err = ingest.File(source)
	} else {
		lines, err = ingest.Lines(os.Stdin)
	}
	if err != nil {
		return err
	}

	eng := engine.New(layouts, engine.Options{
		Workers:      cfg.Engine.Workers,
		StrictPieces: cfg.Engine.StrictPieces,
	})
	res := eng.Validate(lines)

	if err := render.Render(os.Stdout, res, cfg.Output.Format, cfg.Output.Color); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "validated %d lines (%d dropped)\n", len(lines), res.Dropped)

	if cfg.History.Enabled {
		if err := saveRun(source, len(lines), res); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not save run history: %v\n", err)
		}
	}

	return nil
}

// applyValidateFlags overlays explicitly set flags onto the loaded config.
func applyValidateFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = validateFormat
	}
	if validateNoColor {
		cfg.Output.Color = false
	}
	if cmd.Flags().Changed("workers") {
		cfg.Engine.Workers = validateWorkers
	}
	if validateStrict {
		cfg.Engine.StrictPieces = true
	}
	if validateNoHistory {
		cfg.History.Enabled = false
	}
	if cmd.Flags().Changed("layout") {
		cfg.Layout.File = validateLayout
	}
}

// loadLayouts returns the configured layout set, defaulting to the
// standard starting position.
func loadLayouts(cfg *config.Config) (*layout.Set, error) {
	if cfg.Layout.File == "" {
		return layout.Standard(), nil
	}
	return layout.LoadFile(cfg.Layout.File)
}

// saveRun stores one validation run in the global history database.
func saveRun(source string, lines int, res *engine.Result) error {
	db, err := state.OpenGlobal()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}

	run, err := state.NewRun(source, lines, res)
	if err != nil {
		return err
	}
	return db.SaveRun(run)
}
