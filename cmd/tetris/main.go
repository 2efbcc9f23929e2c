// tetris is a classic falling-block game for the terminal and the desktop.
//
// Usage:
//
//	tetris                   - Start menu, then play in the terminal
//	tetris play              - Same as above
//	tetris gui               - Play in a desktop window
//	tetris scores            - Print the scoreboard
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for a reproducible piece sequence
//	--db <path>        - Score database (default: in memory, kept for this run only)
//	--config <path>    - Custom YAML config
//	--log-file <path>  - Write logs to a file (default: discarded)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - the classic falling-block game",
	Long: `Tetris in your terminal or in a desktop window.

Available commands:
  play     - Terminal game with a start menu (default)
  gui      - Desktop window
  scores   - Print the scoreboard

Examples:
  tetris
  tetris gui
  tetris --seed 42
  tetris --db ~/.tetris/scores.db
  tetris scores --db ~/.tetris/scores.db`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.MemoryPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(scoresCmd)
}

// app holds what every command needs. Close releases the store and the log file.
type app struct {
	cfg     config.TetrisConfig
	logger  *log.Logger
	store   *storage.Store
	closers []io.Closer
}

// setup loads the config, builds the logger and opens the store.
// A store that fails to open is logged and replaced by no store.
func setup() (*app, error) {
	a := &app{}

	out := io.Writer(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		a.closers = append(a.closers, f)
	}
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	a.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})

	cfg, source, err := config.LoadTetris(flagConfig)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.cfg = cfg
	a.logger.Debug("config loaded", "source", source)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		a.logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		a.store = store
		a.closers = append(a.closers, store)
	}

	return a, nil
}

// Close releases everything setup opened, store first.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
}
