package main

import (
	"github.com/spf13/cobra"

	"github.com/pdrpinto/gsearch/internal/cli"
)

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Print a random solvable board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		size, _ := cmd.Flags().GetInt("size")
		steps, _ := cmd.Flags().GetInt("steps")
		seed, _ := cmd.Flags().GetUint64("seed")

		_, err := cli.RunShuffle(cli.ShuffleOptions{Size: size, Steps: steps, Seed: seed, Out: cmd.OutOrStdout()})
		return err
	},
}

func init() {
	rootCmd.AddCommand(shuffleCmd)

	shuffleCmd.Flags().Int("size", 3, "Board width")
	shuffleCmd.Flags().Int("steps", 30, "Number of random blank moves from the goal")
	shuffleCmd.Flags().Uint64("seed", 1, "Random seed")
}
