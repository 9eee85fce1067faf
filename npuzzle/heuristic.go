package npuzzle

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pdrpinto/gsearch"
)

// ErrUnknownHeuristic is returned by HeuristicByName for unrecognised names.
var ErrUnknownHeuristic = errors.New("unknown heuristic")

// Heuristic names accepted by HeuristicByName.
const (
	HeuristicManhattan = "manhattan"
	HeuristicMisplaced = "misplaced"
	HeuristicUniform   = "uniform"
)

var heuristics = map[string]gsearch.Heuristic[Board, int]{
	HeuristicManhattan: Manhattan,
	HeuristicMisplaced: Misplaced,
	HeuristicUniform:   Zero,
}

// HeuristicByName returns the heuristic registered under name.
func HeuristicByName(name string) (gsearch.Heuristic[Board, int], error) {
	heuristic, ok := heuristics[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownHeuristic, name, strings.Join(HeuristicNames(), ", "))
	}
	return heuristic, nil
}

// HeuristicNames lists the registered heuristic names in sorted order.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for name := range heuristics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Zero is the null heuristic; A* with it is uniform cost search.
func Zero(Board) int { return 0 }

// Misplaced counts tiles, blank excluded, that are not on their goal cell.
func Misplaced(board Board) int {
	count := 0
	for i := 0; i < len(board.tiles); i++ {
		tile := int(board.tiles[i])
		if tile != blankTile && tile != i+1 {
			count++
		}
	}
	return count
}

// Manhattan sums, over every tile except the blank, the grid distance between
// its cell and its goal cell.
func Manhattan(board Board) int {
	distance := 0
	for i := 0; i < len(board.tiles); i++ {
		tile := int(board.tiles[i])
		if tile == blankTile || tile == i+1 {
			continue
		}
		row, col := i/board.size, i%board.size
		targetRow, targetCol := (tile-1)/board.size, (tile-1)%board.size
		distance += abs(targetRow-row) + abs(targetCol-col)
	}
	return distance
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
