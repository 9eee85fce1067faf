package npuzzle

import (
	"context"

	"github.com/pdrpinto/gsearch"
)

// MoveCost is the step cost of every slide.
const MoveCost = 1

// Direction is the way the blank slides.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the moves in the order operators are generated.
var Directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Problem is the sliding-tile puzzle as a gsearch.Problem.
type Problem struct {
	start Board
}

var _ gsearch.Problem[Board, int] = (*Problem)(nil)

// NewProblem returns the problem of solving start.
func NewProblem(start Board) (*Problem, error) {
	if start.size == 0 {
		return nil, &gsearch.ConfigurationError{Component: "problem", Reason: "start board is not initialised"}
	}
	return &Problem{start: start}, nil
}

// InitialState implements gsearch.Problem.
func (p *Problem) InitialState() Board { return p.start }

// GoalTest implements gsearch.Problem.
func (p *Problem) GoalTest(board Board) bool { return board.IsGoal() }

// Operators implements gsearch.Problem. Only moves that keep the blank on the
// board are returned, always in Up, Down, Left, Right order.
func (p *Problem) Operators(board Board) []gsearch.Operator[Board, int] {
	row, col := board.Blank()
	operators := make([]gsearch.Operator[Board, int], 0, len(Directions))
	for _, direction := range Directions {
		switch {
		case direction == Up && row == 0,
			direction == Down && row == board.size-1,
			direction == Left && col == 0,
			direction == Right && col == board.size-1:
			continue
		}
		operators = append(operators, gsearch.Operator[Board, int]{
			Name: direction.String(),
			Cost: MoveCost,
			Apply: func(state Board) Board {
				next, _ := state.Move(direction)
				return next
			},
		})
	}
	return operators
}

// Solve runs A* from start with heuristic, charging one unit per move.
// Extra options are applied after the depth cost function.
func Solve(
	ctx context.Context,
	start Board,
	heuristic gsearch.Heuristic[Board, int],
	options ...gsearch.Option[Board, int],
) (gsearch.Result[Board, int], error) {
	problem, err := NewProblem(start)
	if err != nil {
		return gsearch.Result[Board, int]{}, err
	}
	all := append([]gsearch.Option[Board, int]{gsearch.WithGFunc(gsearch.DepthCost[Board, int])}, options...)
	return gsearch.Search[Board, int](ctx, problem, heuristic, all...)
}
