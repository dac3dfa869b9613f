// gridsnake is a snake game on a small wrapping grid, played in the terminal.
//
// Usage:
//
//	gridsnake play          - Play in the terminal
//	gridsnake snapshot      - Run a scripted game headless and save a PNG
//	gridsnake config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set display frame rate (default: from config)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log <path>          - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLog        string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Grid Snake - eat apples on a wrapping 20x20 grid",
	Long: `Grid Snake is the classic snake game on a small toroidal grid.
Leaving one edge brings the snake back on the opposite one; biting
its own body ends the round.

Available commands:
  play      - Play in the terminal
  snapshot  - Run a scripted game headless and save a PNG
  config    - Print the effective configuration

Examples:
  gridsnake play
  gridsnake play --difficulty hard
  gridsnake snapshot --path RRRDDD --out snake.png
  gridsnake config > configs/snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Display frame rate (0 = config frame_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger opens the --log file, or discards logs when it is not set.
// The returned close function is always safe to call.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridsnake",
		Level:           log.DebugLevel,
	})
	return logger, closeFn, nil
}

// loadConfig loads the game config and applies the --difficulty preset.
func loadConfig() (config.SnakeConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakePreset(&cfg, preset)
	return cfg, nil
}

// frameRate resolves the --fps flag against the config.
func frameRate(cfg config.SnakeConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.Timing.FrameRate
}
