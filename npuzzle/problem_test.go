package npuzzle

import (
	"context"
	"testing"

	"github.com/pdrpinto/gsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// distancesToGoal runs a breadth-first search from the goal over every board
// reachable from it. Moves are reversible, so the distances are also the
// optimal solution lengths.
func distancesToGoal(t *testing.T, size int) map[Board]int {
	t.Helper()
	problem, err := NewProblem(Goal(size))
	require.NoError(t, err)

	distances := map[Board]int{Goal(size): 0}
	frontier := []Board{Goal(size)}
	for len(frontier) > 0 {
		var next []Board
		for _, board := range frontier {
			for _, operator := range problem.Operators(board) {
				child := operator.Apply(board)
				if _, seen := distances[child]; !seen {
					distances[child] = distances[board] + 1
					next = append(next, child)
				}
			}
		}
		frontier = next
	}
	return distances
}

func requireValidPath(t *testing.T, result gsearch.Result[Board, int]) {
	t.Helper()
	path := result.Path()
	require.NotEmpty(t, path)
	for i := 1; i < len(path); i++ {
		adjacent := false
		for _, direction := range Directions {
			if next, ok := path[i-1].Move(direction); ok && next == path[i] {
				adjacent = true
			}
		}
		require.True(t, adjacent, "step %d is not a single slide:\n%s\n->\n%s", i, path[i-1], path[i])
	}
	assert.True(t, path[len(path)-1].IsGoal())
	assert.Equal(t, len(path)-1, result.Depth())
	assert.Equal(t, result.Depth(), result.Cost())
}

func TestProblem_Operators(t *testing.T) {
	problem, err := NewProblem(Goal(3))
	require.NoError(t, err)

	names := func(board Board) []string {
		var out []string
		for _, operator := range problem.Operators(board) {
			assert.Equal(t, MoveCost, operator.Cost)
			out = append(out, operator.Name)
		}
		return out
	}

	assert.Equal(t, []string{"up", "left"}, names(Goal(3)))
	assert.Equal(t, []string{"up", "down", "left", "right"}, names(MustBoard(3, 1, 2, 3, 4, 0, 6, 7, 5, 8)))
	assert.Equal(t, []string{"down", "right"}, names(MustBoard(3, 0, 1, 2, 3, 4, 5, 6, 7, 8)))

	assert.Equal(t, Goal(3), problem.InitialState())
	assert.True(t, problem.GoalTest(Goal(3)))

	_, err = NewProblem(Board{})
	assert.Error(t, err)
}

func TestSolve_ReferenceBoard(t *testing.T) {
	start := MustBoard(3, 1, 2, 3, 4, 0, 6, 7, 5, 8)

	for _, name := range HeuristicNames() {
		t.Run(name, func(t *testing.T) {
			heuristic, err := HeuristicByName(name)
			require.NoError(t, err)

			result, err := Solve(context.Background(), start, heuristic)
			require.NoError(t, err)
			require.True(t, result.Found())
			requireValidPath(t, result)

			final, _ := result.FinalNode()
			assert.Equal(t, 2, final.Depth())
			assert.Equal(t, []string{"down", "right"}, final.Operators())

			// start, its 4 neighbours and their 8 non-returning neighbours
			assert.LessOrEqual(t, result.TotalNodesExpanded(), 13)
			assert.GreaterOrEqual(t, result.MaxQueueLength(), 1)
		})
	}
}

func TestSolve_InformedHeuristicsExpandLess(t *testing.T) {
	start := MustBoard(3, 1, 2, 3, 4, 8, 0, 7, 6, 5)

	expanded := map[string]int{}
	for _, name := range HeuristicNames() {
		heuristic, err := HeuristicByName(name)
		require.NoError(t, err)
		result, err := Solve(context.Background(), start, heuristic)
		require.NoError(t, err)
		require.True(t, result.Found())
		assert.Equal(t, 5, result.Depth())
		expanded[name] = result.TotalNodesExpanded()
	}
	assert.LessOrEqual(t, expanded[HeuristicManhattan], expanded[HeuristicMisplaced])
	assert.LessOrEqual(t, expanded[HeuristicMisplaced], expanded[HeuristicUniform])
}

func TestSolve_OptimalOnEvery2x2Board(t *testing.T) {
	distances := distancesToGoal(t, 2)
	require.Len(t, distances, 12)

	for board, distance := range distances {
		for _, name := range HeuristicNames() {
			heuristic, err := HeuristicByName(name)
			require.NoError(t, err)
			result, err := Solve(context.Background(), board, heuristic)
			require.NoError(t, err)
			require.True(t, result.Found(), board.Compact())
			requireValidPath(t, result)
			assert.Equal(t, distance, result.Depth(), "%s with %s", board.Compact(), name)
		}
	}
}

func TestSolve_OptimalOnSampled3x3Boards(t *testing.T) {
	if testing.Short() {
		t.Skip("enumerates the full 8-puzzle state space")
	}
	distances := distancesToGoal(t, 3)
	require.Len(t, distances, 181440)

	sampled := 0
	for board, distance := range distances {
		// Heuristics never overestimate and Manhattan dominates misplaced tiles.
		misplaced, manhattan := Misplaced(board), Manhattan(board)
		require.LessOrEqual(t, misplaced, manhattan, board.Compact())
		require.LessOrEqual(t, manhattan, distance, board.Compact())

		if sampled >= 40 || distance%4 != 0 || Manhattan(board)%3 != 0 {
			continue
		}
		sampled++

		result, err := Solve(context.Background(), board, Manhattan)
		require.NoError(t, err)
		require.True(t, result.Found())
		requireValidPath(t, result)
		assert.Equal(t, distance, result.Depth(), board.Compact())

		if distance <= 16 {
			result, err := Solve(context.Background(), board, Misplaced)
			require.NoError(t, err)
			assert.Equal(t, distance, result.Depth(), board.Compact())
		}
	}
	assert.Positive(t, sampled)
}

func TestHeuristics_Consistent(t *testing.T) {
	problem, err := NewProblem(Goal(3))
	require.NoError(t, err)

	for seed := uint64(0); seed < 50; seed++ {
		board := Shuffle(3, 30, NewRand(seed))
		for _, operator := range problem.Operators(board) {
			next := operator.Apply(board)
			for _, heuristic := range []gsearch.Heuristic[Board, int]{Manhattan, Misplaced, Zero} {
				assert.LessOrEqual(t, heuristic(board), operator.Cost+heuristic(next))
			}
		}
	}
}

func TestHeuristics_Values(t *testing.T) {
	board := MustBoard(3, 1, 2, 3, 4, 0, 6, 7, 5, 8)
	assert.Equal(t, 2, Misplaced(board))
	assert.Equal(t, 2, Manhattan(board))
	assert.Equal(t, 0, Zero(board))

	reversed := MustBoard(3, 8, 7, 6, 5, 4, 3, 2, 1, 0)
	assert.Equal(t, 8, Misplaced(reversed))
	assert.Equal(t, 16, Manhattan(reversed))

	assert.Equal(t, 0, Manhattan(Goal(4)))
	assert.Equal(t, 0, Misplaced(Goal(4)))
}

func TestHeuristicByName(t *testing.T) {
	assert.Equal(t, []string{"manhattan", "misplaced", "uniform"}, HeuristicNames())

	heuristic, err := HeuristicByName(" Manhattan ")
	require.NoError(t, err)
	assert.Equal(t, 2, heuristic(MustBoard(3, 1, 2, 3, 4, 0, 6, 7, 5, 8)))

	_, err = HeuristicByName("euclid")
	assert.ErrorIs(t, err, ErrUnknownHeuristic)
}

func TestSolve_Unsolvable(t *testing.T) {
	start := MustBoard(2, 2, 1, 3, 0)
	require.False(t, start.Solvable())

	result, err := Solve(context.Background(), start, Manhattan)
	require.NoError(t, err)
	assert.False(t, result.Found())
	assert.Nil(t, result.Path())
	// Every reachable board is expanded exactly once.
	assert.Equal(t, 12, result.TotalNodesExpanded())
}

func TestSolve_Deterministic(t *testing.T) {
	start := Shuffle(3, 40, NewRand(42))

	var firstOrder, secondOrder []Board
	record := func(order *[]Board) gsearch.Option[Board, int] {
		return gsearch.WithHooks(gsearch.Hooks[Board, int]{
			OnExpand: func(e gsearch.ExpandResult[Board, int]) {
				*order = append(*order, e.CurrentNode().State())
			},
		})
	}

	first, err := Solve(context.Background(), start, Manhattan, record(&firstOrder))
	require.NoError(t, err)
	second, err := Solve(context.Background(), start, Manhattan, record(&secondOrder))
	require.NoError(t, err)

	assert.Equal(t, firstOrder, secondOrder)
	assert.Equal(t, first.TotalNodesExpanded(), second.TotalNodesExpanded())
	assert.Equal(t, first.MaxQueueLength(), second.MaxQueueLength())
	assert.Equal(t, first.Path(), second.Path())
}
