package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play there.

Uses the same key bindings as the terminal game. Window title, cell size
and scale come from the gui section of the config.

Examples:
  tetris gui
  tetris gui --seed 7 --db ~/.tetris/scores.db`,
	RunE: runGUI,
}

func runGUI(_ *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	state, err := gui.Run(gui.Options{
		Config:  a.cfg,
		Runtime: a.cfg.Runtime(flagSeed),
		Store:   a.store,
		Logger:  a.logger,
	})
	if err != nil {
		return err
	}
	a.logger.Info("game finished", "score", state.Score, "lines", state.Lines, "mode", state.Mode)
	return nil
}
