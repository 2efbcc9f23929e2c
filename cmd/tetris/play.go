package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the terminal game with a menu.

Esc leaves a game for the menu; Q quits the program from anywhere.

Controls:
  Left/Right, h/l  - Move
  Down, j          - Soft drop
  Space            - Hard drop
  Up, k / Z        - Rotate clockwise / counter-clockwise
  P / C            - Pause / Continue
  S                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Esc              - Back to the menu
  Q/Ctrl+C         - Quit

Examples:
  tetris play
  tetris play --seed 7
  tetris play --config ./my-tetris.yaml`,
	RunE: runPlay,
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// screens runs the interactive parts of the terminal front end. Tests
// replace them to drive the menu loop without a terminal.
type screens struct {
	menu       func(a *app, width, height int) (tui.MenuChoice, error)
	game       func(a *app, width, height int) (tui.Result, error)
	scoreboard func(a *app, width, height int) (goBack bool, err error)
}

var terminalScreens = screens{
	menu: func(a *app, width, height int) (tui.MenuChoice, error) {
		return tui.RunMenu(a.store, width, height)
	},
	game: func(a *app, width, height int) (tui.Result, error) {
		rc := a.cfg.Runtime(flagSeed)
		rc.ScreenW, rc.ScreenH = width, height
		return tui.Run(tui.Options{
			Config:  a.cfg,
			Runtime: rc,
			Store:   a.store,
			Logger:  a.logger,
		})
	},
	scoreboard: func(a *app, width, height int) (bool, error) {
		return tui.RunScoreboard(a.store, width, height)
	},
}

func runPlay(_ *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	return playLoop(a, terminalScreens)
}

// playLoop shows the menu until the player quits. Quit pressed inside a
// game ends the loop too; only the menu key goes back to the menu.
func playLoop(a *app, s screens) error {
	for {
		width, height := terminalSize()

		choice, err := s.menu(a, width, height)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		switch choice {
		case tui.ChoicePlay:
			res, err := s.game(a, width, height)
			if err != nil {
				return fmt.Errorf("game: %w", err)
			}
			a.logger.Info("game finished", "score", res.State.Score, "lines", res.State.Lines, "mode", res.State.Mode)
			if res.Quit {
				return nil
			}

		case tui.ChoiceScores:
			goBack, err := s.scoreboard(a, width, height)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
