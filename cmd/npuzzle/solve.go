package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gsearch/internal/cli"
	"github.com/pdrpinto/gsearch/internal/config"
	"github.com/pdrpinto/gsearch/npuzzle"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a puzzle board",
	Long: `Solves a board given with --tiles or loaded from a YAML file with --config.
Without either, the reference board 1 2 3 / 4 _ 6 / 7 5 8 is used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		tiles, _ := cmd.Flags().GetString("tiles")
		size, _ := cmd.Flags().GetInt("size")
		heuristic, _ := cmd.Flags().GetString("heuristic")
		trace, _ := cmd.Flags().GetBool("trace")
		force, _ := cmd.Flags().GetBool("force")

		if configPath != "" && tiles != "" {
			return errors.New("--config and --tiles cannot be used together")
		}

		var (
			board    npuzzle.Board
			logLevel string
			err      error
		)
		switch {
		case configPath != "":
			cfg, err := config.LoadPuzzleConfig(configPath)
			if err != nil {
				return fmt.Errorf("load %s: %w", configPath, err)
			}
			if board, err = cfg.StartBoard(); err != nil {
				return fmt.Errorf("load %s: %w", configPath, err)
			}
			if !cmd.Flags().Changed("heuristic") {
				heuristic = cfg.HeuristicName()
			}
			trace = trace || cfg.Search.Trace
			logLevel = cfg.Search.LogLevel
		case tiles != "":
			if board, err = npuzzle.ParseBoard(tiles); err != nil {
				return err
			}
		default:
			board = npuzzle.MustBoard(3, 1, 2, 3, 4, 0, 6, 7, 5, 8)
		}
		if cmd.Flags().Changed("size") && size != board.Size() {
			return fmt.Errorf("--size %d does not match a %dx%d board", size, board.Size(), board.Size())
		}

		logger, err := loggerFromFlags(cmd, logLevel)
		if err != nil {
			return err
		}
		collector, reg, err := metricsFromFlags(cmd)
		if err != nil {
			return err
		}

		if _, err := cli.RunSolve(cmd.Context(), cli.SolveOptions{
			Board:     board,
			Heuristic: heuristic,
			Trace:     trace,
			Force:     force,
			Out:       cmd.OutOrStdout(),
			Logger:    logger,
			Metrics:   collector,
		}); err != nil {
			return err
		}
		return serveMetricsUntilDone(cmd, reg, logger)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringP("config", "c", "", "YAML puzzle definition")
	solveCmd.Flags().StringP("tiles", "t", "", `Board tiles in row-major order, 0 or _ for the blank (e.g. "1,2,3/4,0,6/7,5,8")`)
	solveCmd.Flags().Int("size", 3, "Board width, checked against the tiles")
	solveCmd.Flags().String("heuristic", npuzzle.HeuristicManhattan, "One of uniform, misplaced, manhattan")
	solveCmd.Flags().Bool("trace", false, "Print every expanded board")
	solveCmd.Flags().Bool("force", false, "Search even when the parity check says the board is unsolvable")
}
