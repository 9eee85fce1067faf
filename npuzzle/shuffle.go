package npuzzle

import "math/rand/v2"

// Shuffle scrambles the goal board of the given size with a random walk of
// steps blank moves. Every board reachable from the goal is solvable; the walk
// never immediately undoes its previous move so that no step is wasted.
func Shuffle(size, steps int, rng *rand.Rand) Board {
	board := Goal(size)
	previous := Direction(-1)
	for i := 0; i < steps; i++ {
		candidates := make([]Direction, 0, len(Directions))
		for _, direction := range Directions {
			if direction == opposite(previous) {
				continue
			}
			if _, ok := board.Move(direction); ok {
				candidates = append(candidates, direction)
			}
		}
		direction := candidates[rng.IntN(len(candidates))]
		board, _ = board.Move(direction)
		previous = direction
	}
	return board
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func opposite(direction Direction) Direction {
	switch direction {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return Direction(-1)
	}
}
