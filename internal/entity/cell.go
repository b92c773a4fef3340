package entity

import "fmt"

// Cell is the content of one board position.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerO
	PlayerX
)

// Players lists the two markers in the order the win scan visits them.
var Players = [2]Cell{PlayerO, PlayerX}

func (that Cell) String() string {
	switch that {
	case PlayerO:
		return "O"
	case PlayerX:
		return "X"
	default:
		return ""
	}
}

// Opponent returns the other player's marker. EmptyCell has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerO:
		return PlayerX
	case PlayerX:
		return PlayerO
	default:
		return EmptyCell
	}
}

func (that Cell) IsPlayer() bool {
	return that == PlayerO || that == PlayerX
}

// Coord addresses a cell in (row, col) order.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}
