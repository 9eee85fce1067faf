package main

import (
	"github.com/spf13/cobra"

	"github.com/pdrpinto/gsearch/internal/cli"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare heuristics on shuffled boards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		size, _ := cmd.Flags().GetInt("size")
		count, _ := cmd.Flags().GetInt("count")
		steps, _ := cmd.Flags().GetInt("steps")
		workers, _ := cmd.Flags().GetInt("workers")
		seed, _ := cmd.Flags().GetUint64("seed")
		heuristics, _ := cmd.Flags().GetStringSlice("heuristic")

		logger, err := loggerFromFlags(cmd, "")
		if err != nil {
			return err
		}
		collector, reg, err := metricsFromFlags(cmd)
		if err != nil {
			return err
		}

		if _, err := cli.RunBench(cmd.Context(), cli.BenchOptions{
			Size:       size,
			Count:      count,
			Steps:      steps,
			Workers:    workers,
			Seed:       seed,
			Heuristics: heuristics,
			Out:        cmd.OutOrStdout(),
			Logger:     logger,
			Metrics:    collector,
		}); err != nil {
			return err
		}
		return serveMetricsUntilDone(cmd, reg, logger)
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().Int("size", 3, "Board width")
	benchCmd.Flags().Int("count", 20, "Boards per heuristic")
	benchCmd.Flags().Int("steps", 30, "Shuffle steps per board")
	benchCmd.Flags().Int("workers", 4, "Concurrent searches")
	benchCmd.Flags().Uint64("seed", 1, "Random seed")
	benchCmd.Flags().StringSlice("heuristic", nil, "Heuristics to compare (default all)")
}
