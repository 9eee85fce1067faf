// Package cli implements the npuzzle commands independently of cobra so they
// can be driven from tests.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/pdrpinto/gsearch"
	"github.com/pdrpinto/gsearch/internal/logging"
	"github.com/pdrpinto/gsearch/metrics"
	"github.com/pdrpinto/gsearch/npuzzle"
)

// SolveOptions configures RunSolve.
type SolveOptions struct {
	Board     npuzzle.Board
	Heuristic string
	// Trace prints every expanded board the way a classroom solver would.
	Trace bool
	// Force searches boards whose parity says they cannot be solved.
	Force    bool
	Out      io.Writer
	Renderer *BoardRenderer
	Logger   *slog.Logger
	Metrics  *metrics.Collector
}

// SolveReport summarises one solve.
type SolveReport struct {
	Heuristic      string
	Found          bool
	Depth          int
	NodesExpanded  int
	MaxQueueLength int
	Moves          []string
	Path           []npuzzle.Board
	Elapsed        time.Duration
}

// RunSolve searches opts.Board and writes the outcome to opts.Out.
func RunSolve(ctx context.Context, opts SolveOptions) (SolveReport, error) {
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Renderer == nil {
		opts.Renderer = NewBoardRenderer(opts.Out)
	}
	heuristic, err := npuzzle.HeuristicByName(opts.Heuristic)
	if err != nil {
		return SolveReport{}, err
	}
	report := SolveReport{Heuristic: strings.ToLower(strings.TrimSpace(opts.Heuristic)), Depth: -1}
	out := opts.Out

	fmt.Fprintf(out, "Solving %d-puzzle with %s:\n%s\n\n", opts.Board.Size()*opts.Board.Size()-1, describeHeuristic(report.Heuristic), opts.Renderer.Render(opts.Board))

	if !opts.Board.Solvable() && !opts.Force {
		opts.Logger.Warn("board fails the parity check, skipping search", "board", opts.Board.Compact())
		fmt.Fprintln(out, "No solution!")
		return report, nil
	}

	options := []gsearch.Option[npuzzle.Board, int]{
		gsearch.WithLogger[npuzzle.Board, int](opts.Logger),
	}
	if opts.Trace {
		options = append(options, gsearch.WithHooks(traceHooks(out, opts.Renderer, heuristic)))
	}
	if opts.Metrics != nil {
		options = append(options, gsearch.WithHooks(metrics.Hooks[npuzzle.Board, int](opts.Metrics)))
	}

	started := time.Now()
	result, err := npuzzle.Solve(ctx, opts.Board, heuristic, options...)
	if err != nil {
		return SolveReport{}, fmt.Errorf("solve %s: %w", opts.Board.Compact(), err)
	}
	report.Elapsed = time.Since(started)
	report.NodesExpanded = result.TotalNodesExpanded()
	report.MaxQueueLength = result.MaxQueueLength()

	opts.Logger.Info("search finished",
		"heuristic", report.Heuristic,
		"found", result.Found(),
		"expanded", report.NodesExpanded,
		"max_queue", report.MaxQueueLength,
		"elapsed", report.Elapsed,
	)

	final, found := result.FinalNode()
	if !found {
		fmt.Fprintln(out, "No solution!")
		return report, nil
	}
	report.Found = true
	report.Depth = final.Depth()
	report.Moves = final.Operators()
	report.Path = final.Path()

	fmt.Fprintln(out, "Goal!!")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "To solve this problem the search algorithm expanded a total of %d nodes.\n", report.NodesExpanded)
	fmt.Fprintf(out, "The maximum number of nodes in the queue at any one time was %d.\n", report.MaxQueueLength)
	fmt.Fprintf(out, "The depth of the goal node was %d.\n", report.Depth)
	if len(report.Moves) > 0 {
		fmt.Fprintf(out, "Moves: %s\n", strings.Join(report.Moves, " "))
	}
	return report, nil
}

func traceHooks(out io.Writer, renderer *BoardRenderer, heuristic gsearch.Heuristic[npuzzle.Board, int]) gsearch.Hooks[npuzzle.Board, int] {
	return gsearch.Hooks[npuzzle.Board, int]{
		OnExpand: func(expansion gsearch.ExpandResult[npuzzle.Board, int]) {
			node := expansion.CurrentNode()
			if node.Parent() == nil {
				fmt.Fprintf(out, "Expanding state\n%s\n\n", renderer.Render(node.State()))
				return
			}
			fmt.Fprintf(out, "The best state to expand with a g(n) = %d and h(n) = %d is...\n%s\nExpanding this node...\n\n",
				node.Cost(), heuristic(node.State()), renderer.Render(node.State()))
		},
	}
}

func describeHeuristic(name string) string {
	switch name {
	case npuzzle.HeuristicUniform:
		return "Uniform Cost Search"
	case npuzzle.HeuristicMisplaced:
		return "A* and the Misplaced Tile heuristic"
	default:
		return "A* and the Manhattan Distance heuristic"
	}
}
