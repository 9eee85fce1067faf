package cli

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/pdrpinto/gsearch/npuzzle"
)

// BoardRenderer draws boards either as plain text or, on terminals, as a
// bordered grid.
type BoardRenderer struct {
	styled bool
	frame  lipgloss.Style
	tile   lipgloss.Style
	blank  lipgloss.Style
}

// NewBoardRenderer styles output only when w is a terminal.
func NewBoardRenderer(w io.Writer) *BoardRenderer {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	renderer := lipgloss.NewRenderer(w)
	return &BoardRenderer{
		styled: styled,
		frame:  renderer.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1),
		tile:   renderer.NewStyle().Bold(true),
		blank:  renderer.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Render returns the drawing of board.
func (r *BoardRenderer) Render(board npuzzle.Board) string {
	if !r.styled {
		return board.String()
	}
	width := len(strconv.Itoa(board.Size()*board.Size() - 1))
	rows := make([]string, board.Size())
	for row := 0; row < board.Size(); row++ {
		cells := make([]string, board.Size())
		for col := 0; col < board.Size(); col++ {
			tile := board.At(row, col)
			if tile == 0 {
				cells[col] = r.blank.Render(strings.Repeat(" ", width-1) + "·")
				continue
			}
			text := strconv.Itoa(tile)
			cells[col] = r.tile.Render(strings.Repeat(" ", width-len(text)) + text)
		}
		rows[row] = strings.Join(cells, " ")
	}
	return r.frame.Render(strings.Join(rows, "\n"))
}
