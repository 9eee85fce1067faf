package cli

import (
	"fmt"
	"io"

	"github.com/pdrpinto/gsearch/npuzzle"
)

// ShuffleOptions configures RunShuffle.
type ShuffleOptions struct {
	Size  int
	Steps int
	Seed  uint64
	Out   io.Writer
}

// RunShuffle prints a solvable board scrambled from the goal, first drawn and
// then in the compact form accepted by "solve --tiles".
func RunShuffle(opts ShuffleOptions) (npuzzle.Board, error) {
	if opts.Size < npuzzle.MinSize || opts.Size > npuzzle.MaxSize {
		return npuzzle.Board{}, fmt.Errorf("size must be between %d and %d, got %d", npuzzle.MinSize, npuzzle.MaxSize, opts.Size)
	}
	if opts.Steps < 0 {
		return npuzzle.Board{}, fmt.Errorf("steps must not be negative, got %d", opts.Steps)
	}
	board := npuzzle.Shuffle(opts.Size, opts.Steps, npuzzle.NewRand(opts.Seed))
	fmt.Fprintln(opts.Out, NewBoardRenderer(opts.Out).Render(board))
	fmt.Fprintln(opts.Out, board.Compact())
	return board, nil
}
