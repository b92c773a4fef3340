package fourinarow

import "github.com/rocketscienceinc/fourinarow/internal/entity"

// lastStart is the highest index a run can start from along one axis.
const lastStart = entity.BoardSize - entity.RunLength

type direction struct {
	dRow, dCol int
}

var (
	horizontal   = direction{dRow: 0, dCol: 1}
	vertical     = direction{dRow: 1, dCol: 0}
	diagonal     = direction{dRow: 1, dCol: 1}
	antiDiagonal = direction{dRow: -1, dCol: 1}
)

// FindWinner returns the first run on the board, trying O before X.
func FindWinner(board *entity.Board) (entity.Cell, []entity.Coord, bool) {
	for _, player := range entity.Players {
		if run, ok := FindRun(board, player); ok {
			return player, run, true
		}
	}

	return entity.EmptyCell, nil, false
}

// FindRun looks for four contiguous player markers. Rows and columns are
// scanned first, interleaved, then both diagonals from each start cell.
// Anti-diagonal runs are reported from their bottom-left end.
func FindRun(board *entity.Board, player entity.Cell) ([]entity.Coord, bool) {
	if !player.IsPlayer() {
		return nil, false
	}

	for i := 0; i < entity.BoardSize; i++ {
		for j := 0; j <= lastStart; j++ {
			if run, ok := scan(board, player, entity.Coord{Row: i, Col: j}, horizontal); ok {
				return run, true
			}

			if run, ok := scan(board, player, entity.Coord{Row: j, Col: i}, vertical); ok {
				return run, true
			}
		}
	}

	for i := 0; i <= lastStart; i++ {
		for j := 0; j <= lastStart; j++ {
			if run, ok := scan(board, player, entity.Coord{Row: i, Col: j}, diagonal); ok {
				return run, true
			}

			if run, ok := scan(board, player, entity.Coord{Row: i + entity.RunLength - 1, Col: j}, antiDiagonal); ok {
				return run, true
			}
		}
	}

	return nil, false
}

func scan(board *entity.Board, player entity.Cell, start entity.Coord, dir direction) ([]entity.Coord, bool) {
	run := make([]entity.Coord, 0, entity.RunLength)

	for k := 0; k < entity.RunLength; k++ {
		cell := entity.Coord{Row: start.Row + k*dir.dRow, Col: start.Col + k*dir.dCol}
		if board.At(cell) != player {
			return nil, false
		}

		run = append(run, cell)
	}

	return run, true
}
