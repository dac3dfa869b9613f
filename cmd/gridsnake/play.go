package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  Arrows/WASD/HJKL  - Steer (no reversing)
  Mouse drag        - Steer by swiping
  Enter/Space       - Dismiss game over
  P/Esc             - Pause
  Tab               - Rounds of this session
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow snake, speeds up with score when enabled in config
  normal - Default speed
  hard   - Fast snake
  fixed  - No progression, stays at the config's interval

Examples:
  gridsnake play
  gridsnake play --difficulty easy
  gridsnake play --seed 42 --log snake.log
  gridsnake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size before Bubble Tea reports it
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: frameRate(cfg),
		Seed:     flagSeed,
	}

	// Open session round history
	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: round history unavailable: %v\n", err)
		logger.Warn("session store disabled", "err", err)
		// Continue without storage - game still works
		store = nil
	} else {
		logger.Debug("session store opened", "name", store.Name())
	}

	runErr := tui.Run(snake.New(cfg), tui.Options{
		Runtime: rc,
		Store:   store,
		Logger:  logger,
	})

	// Close store before reporting
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("cannot close session store", "err", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
