// Package npuzzle instantiates the gsearch engine for the n×n sliding-tile puzzle.
//
// A Board is a comparable value holding the tile permutation and the blank
// position, so it can be used directly as a search state. The blank is tile 0
// and the solved board lists 1..n²-1 row by row with the blank last.
package npuzzle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdrpinto/gsearch"
)

const (
	// MinSize and MaxSize bound the board dimension.
	MinSize = 2
	MaxSize = 15

	blankTile = 0
)

// Board is an immutable puzzle configuration. The zero value is not a valid board.
type Board struct {
	size  int
	tiles string // tiles[i] is the tile at cell i, row-major
	blank int
}

// NewBoard validates tiles as a row-major permutation of 0..size²-1.
func NewBoard(size int, tiles []int) (Board, error) {
	if size < MinSize || size > MaxSize {
		return Board{}, &gsearch.ConfigurationError{
			Component: "board",
			Reason:    fmt.Sprintf("size %d out of range [%d, %d]", size, MinSize, MaxSize),
		}
	}
	cells := size * size
	if len(tiles) != cells {
		return Board{}, &gsearch.ConfigurationError{
			Component: "board",
			Reason:    fmt.Sprintf("%d tiles given for a %dx%d board, want %d", len(tiles), size, size, cells),
		}
	}

	seen := make([]bool, cells)
	encoded := make([]byte, cells)
	blank := -1
	for i, tile := range tiles {
		if tile < 0 || tile >= cells {
			return Board{}, &gsearch.ConfigurationError{
				Component: "board",
				Reason:    fmt.Sprintf("tile %d at position %d out of range [0, %d]", tile, i, cells-1),
			}
		}
		if seen[tile] {
			return Board{}, &gsearch.ConfigurationError{
				Component: "board",
				Reason:    fmt.Sprintf("tile %d appears more than once", tile),
			}
		}
		seen[tile] = true
		encoded[i] = byte(tile)
		if tile == blankTile {
			blank = i
		}
	}
	return Board{size: size, tiles: string(encoded), blank: blank}, nil
}

// MustBoard is NewBoard for literals known to be valid. It panics on error.
func MustBoard(size int, tiles ...int) Board {
	board, err := NewBoard(size, tiles)
	if err != nil {
		panic(err)
	}
	return board
}

// Goal returns the solved board of the given size.
func Goal(size int) Board {
	cells := size * size
	tiles := make([]int, cells)
	for i := 0; i < cells-1; i++ {
		tiles[i] = i + 1
	}
	return MustBoard(size, tiles...)
}

// ParseBoard reads tiles separated by whitespace, commas, semicolons or
// slashes. "_" marks the blank as well as "0". The size is the square root of
// the number of tiles.
func ParseBoard(text string) (Board, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';' || r == '/' || r == '[' || r == ']'
	})
	tiles := make([]int, 0, len(fields))
	for _, field := range fields {
		if field == "_" {
			tiles = append(tiles, blankTile)
			continue
		}
		tile, err := strconv.Atoi(field)
		if err != nil {
			return Board{}, &gsearch.ConfigurationError{
				Component: "board",
				Reason:    fmt.Sprintf("invalid tile %q", field),
			}
		}
		tiles = append(tiles, tile)
	}
	return NewBoardFromTiles(tiles)
}

// NewBoardFromTiles infers the size from a square number of tiles.
func NewBoardFromTiles(tiles []int) (Board, error) {
	size := int(math.Round(math.Sqrt(float64(len(tiles)))))
	if size*size != len(tiles) {
		return Board{}, &gsearch.ConfigurationError{
			Component: "board",
			Reason:    fmt.Sprintf("%d tiles do not form a square board", len(tiles)),
		}
	}
	return NewBoard(size, tiles)
}

// Size returns n for an n×n board.
func (b Board) Size() int { return b.size }

// At returns the tile at row, col.
func (b Board) At(row, col int) int { return int(b.tiles[row*b.size+col]) }

// Blank returns the row and column of the blank.
func (b Board) Blank() (row, col int) { return b.blank / b.size, b.blank % b.size }

// Tiles returns the row-major tile list.
func (b Board) Tiles() []int {
	tiles := make([]int, len(b.tiles))
	for i := range b.tiles {
		tiles[i] = int(b.tiles[i])
	}
	return tiles
}

// IsGoal reports whether b is the solved board.
func (b Board) IsGoal() bool {
	last := len(b.tiles) - 1
	for i := 0; i < last; i++ {
		if int(b.tiles[i]) != i+1 {
			return false
		}
	}
	return b.size > 0 && b.tiles[last] == blankTile
}

// Move slides the blank one cell in direction. It returns false when the blank
// would leave the board.
func (b Board) Move(direction Direction) (Board, bool) {
	row, col := b.Blank()
	switch direction {
	case Up:
		row--
	case Down:
		row++
	case Left:
		col--
	case Right:
		col++
	default:
		return b, false
	}
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return b, false
	}
	target := row*b.size + col
	tiles := []byte(b.tiles)
	tiles[b.blank], tiles[target] = tiles[target], tiles[b.blank]
	return Board{size: b.size, tiles: string(tiles), blank: target}, true
}

// String renders the board one row per line with the blank shown as "_".
func (b Board) String() string {
	width := len(strconv.Itoa(b.size*b.size - 1))
	var builder strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if col > 0 {
				builder.WriteByte(' ')
			}
			tile := b.At(row, col)
			cell := "_"
			if tile != blankTile {
				cell = strconv.Itoa(tile)
			}
			builder.WriteString(strings.Repeat(" ", width-len(cell)))
			builder.WriteString(cell)
		}
		if row < b.size-1 {
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}

// Compact renders the board on one line, rows separated by "/".
func (b Board) Compact() string {
	rows := make([]string, b.size)
	for row := 0; row < b.size; row++ {
		cells := make([]string, b.size)
		for col := 0; col < b.size; col++ {
			cells[col] = strconv.Itoa(b.At(row, col))
		}
		rows[row] = strings.Join(cells, ",")
	}
	return strings.Join(rows, "/")
}

// Solvable reports whether the goal is reachable from b, using inversion parity.
func (b Board) Solvable() bool {
	inversions := 0
	for i := 0; i < len(b.tiles); i++ {
		if b.tiles[i] == blankTile {
			continue
		}
		for j := i + 1; j < len(b.tiles); j++ {
			if b.tiles[j] != blankTile && b.tiles[i] > b.tiles[j] {
				inversions++
			}
		}
	}
	if b.size%2 == 1 {
		return inversions%2 == 0
	}
	blankRow, _ := b.Blank()
	rowFromBottom := b.size - blankRow
	return (inversions+rowFromBottom)%2 == 1
}
