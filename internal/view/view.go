// Package view holds what both frontends show: captions, the winner banner
// and the mapping between board coordinates and screen positions. Boards are
// addressed (row, col); screens are addressed (x, y) with x running along a
// row. The two meet only in Grid.
package view

import (
	"fmt"

	"github.com/rocketscienceinc/fourinarow/internal/entity"
)

// Caption is the window title for the given result.
func Caption(result entity.Result) string {
	switch result.State {
	case entity.StateWon:
		return fmt.Sprintf("Player %q wins! Press Space to Restart", result.Winner.String())
	case entity.StateDraw:
		return "Draw! Press Space to Restart"
	default:
		return fmt.Sprintf("Player %q turn!", result.Turn.String())
	}
}

// Banner is the text drawn over a won board.
func Banner(result entity.Result) (string, bool) {
	if result.State != entity.StateWon {
		return "", false
	}

	return fmt.Sprintf("Player %q wins!", result.Winner.String()), true
}

// Grid maps screen positions to board cells. Cells are CellWidth by
// CellHeight screen units, the board's top-left corner sits at
// (OffsetX, OffsetY).
type Grid struct {
	CellWidth  int
	CellHeight int
	OffsetX    int
	OffsetY    int
}

// SquareGrid divides a square window of size pixels into 9x9 cells.
func SquareGrid(size int) Grid {
	cell := size / entity.BoardSize

	return Grid{CellWidth: cell, CellHeight: cell}
}

// CellAt returns the cell under the screen position (x, y).
func (that Grid) CellAt(x, y int) (entity.Coord, bool) {
	x -= that.OffsetX
	y -= that.OffsetY

	if x < 0 || y < 0 || that.CellWidth <= 0 || that.CellHeight <= 0 {
		return entity.Coord{}, false
	}

	cell := entity.Coord{Row: y / that.CellHeight, Col: x / that.CellWidth}
	if cell.Row >= entity.BoardSize || cell.Col >= entity.BoardSize {
		return entity.Coord{}, false
	}

	return cell, true
}

// Origin is the top-left screen position of a cell.
func (that Grid) Origin(c entity.Coord) (int, int) {
	return that.OffsetX + c.Col*that.CellWidth, that.OffsetY + c.Row*that.CellHeight
}

// Center is the screen position of a cell's middle.
func (that Grid) Center(c entity.Coord) (float64, float64) {
	x, y := that.Origin(c)

	return float64(x) + float64(that.CellWidth)/2, float64(y) + float64(that.CellHeight)/2
}

// Line is a segment in screen space.
type Line struct {
	X0, Y0, X1, Y1 float64
}

// WinningLine joins the centres of the first and last cells of a won run.
func (that Grid) WinningLine(result entity.Result) (Line, bool) {
	if result.State != entity.StateWon || len(result.Run) == 0 {
		return Line{}, false
	}

	x0, y0 := that.Center(result.Run[0])
	x1, y1 := that.Center(result.Run[len(result.Run)-1])

	return Line{X0: x0, Y0: y0, X1: x1, Y1: y1}, true
}
