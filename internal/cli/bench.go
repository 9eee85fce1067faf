package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pdrpinto/gsearch"
	"github.com/pdrpinto/gsearch/internal/logging"
	"github.com/pdrpinto/gsearch/metrics"
	"github.com/pdrpinto/gsearch/npuzzle"
)

// BenchOptions configures RunBench.
type BenchOptions struct {
	Size    int
	Count   int
	Steps   int
	Workers int
	Seed    uint64
	// Heuristics defaults to every registered heuristic.
	Heuristics []string
	Out        io.Writer
	Logger     *slog.Logger
	Metrics    *metrics.Collector
}

// BenchRow aggregates the solves of one heuristic.
type BenchRow struct {
	Heuristic         string
	Solved            int
	AvgExpanded       float64
	AvgMaxQueueLength float64
	AvgDepth          float64
	Elapsed           time.Duration
}

// BenchReport is the outcome of RunBench.
type BenchReport struct {
	RunID string
	Rows  []BenchRow
}

// RunBench solves opts.Count shuffled boards with each heuristic on a bounded
// worker pool and prints a comparison table. Every heuristic sees the same boards.
func RunBench(ctx context.Context, opts BenchOptions) (BenchReport, error) {
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Size < npuzzle.MinSize || opts.Size > npuzzle.MaxSize {
		return BenchReport{}, fmt.Errorf("size must be between %d and %d, got %d", npuzzle.MinSize, npuzzle.MaxSize, opts.Size)
	}
	if opts.Steps < 0 {
		return BenchReport{}, fmt.Errorf("steps must not be negative, got %d", opts.Steps)
	}
	if opts.Count <= 0 {
		return BenchReport{}, fmt.Errorf("count must be positive, got %d", opts.Count)
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	names := opts.Heuristics
	if len(names) == 0 {
		names = npuzzle.HeuristicNames()
	}

	boards := make([]npuzzle.Board, opts.Count)
	rng := npuzzle.NewRand(opts.Seed)
	for i := range boards {
		boards[i] = npuzzle.Shuffle(opts.Size, opts.Steps, rng)
	}

	report := BenchReport{RunID: uuid.NewString()[:8]}
	logger := opts.Logger.With("run_id", report.RunID)
	logger.Info("bench started", "size", opts.Size, "count", opts.Count, "steps", opts.Steps, "workers", opts.Workers)

	searchOptions := []gsearch.Option[npuzzle.Board, int]{
		gsearch.WithGFunc(gsearch.DepthCost[npuzzle.Board, int]),
	}
	if opts.Metrics != nil {
		searchOptions = append(searchOptions, gsearch.WithHooks(metrics.Hooks[npuzzle.Board, int](opts.Metrics)))
	}
	searcher := gsearch.NewSearcher(searchOptions...)

	for _, name := range names {
		heuristic, err := npuzzle.HeuristicByName(name)
		if err != nil {
			return BenchReport{}, err
		}
		row, err := benchHeuristic(ctx, searcher, boards, heuristic, opts.Workers)
		if err != nil {
			return BenchReport{}, fmt.Errorf("bench %s: %w", name, err)
		}
		row.Heuristic = name
		logger.Info("heuristic finished", "heuristic", name, "solved", row.Solved, "avg_expanded", row.AvgExpanded, "elapsed", row.Elapsed)
		report.Rows = append(report.Rows, row)
	}

	fmt.Fprintf(opts.Out, "run %s: %d boards of size %d, %d shuffle steps\n", report.RunID, opts.Count, opts.Size, opts.Steps)
	fmt.Fprintln(opts.Out, renderBenchTable(report.Rows))
	return report, nil
}

func benchHeuristic(
	ctx context.Context,
	searcher *gsearch.Searcher[npuzzle.Board, int],
	boards []npuzzle.Board,
	heuristic gsearch.Heuristic[npuzzle.Board, int],
	workers int,
) (BenchRow, error) {
	var (
		mu                           sync.Mutex
		row                          BenchRow
		expanded, maxQueue, depthSum int
	)
	started := time.Now()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, board := range boards {
		g.Go(func() error {
			problem, err := npuzzle.NewProblem(board)
			if err != nil {
				return err
			}
			result, err := searcher.Search(gCtx, problem, heuristic)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			expanded += result.TotalNodesExpanded()
			maxQueue += result.MaxQueueLength()
			if result.Found() {
				row.Solved++
				depthSum += result.Depth()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BenchRow{}, err
	}

	row.Elapsed = time.Since(started)
	row.AvgExpanded = float64(expanded) / float64(len(boards))
	row.AvgMaxQueueLength = float64(maxQueue) / float64(len(boards))
	if row.Solved > 0 {
		row.AvgDepth = float64(depthSum) / float64(row.Solved)
	}
	return row, nil
}

func renderBenchTable(rows []BenchRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("heuristic", "solved", "avg expanded", "avg max queue", "avg depth", "elapsed")
	for _, row := range rows {
		t.Row(
			row.Heuristic,
			strconv.Itoa(row.Solved),
			strconv.FormatFloat(row.AvgExpanded, 'f', 1, 64),
			strconv.FormatFloat(row.AvgMaxQueueLength, 'f', 1, 64),
			strconv.FormatFloat(row.AvgDepth, 'f', 2, 64),
			row.Elapsed.Round(time.Millisecond).String(),
		)
	}
	return t.String()
}
