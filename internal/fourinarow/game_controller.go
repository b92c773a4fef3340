package fourinarow

import (
	"fmt"

	"github.com/rocketscienceinc/fourinarow/internal/apperror"
	"github.com/rocketscienceinc/fourinarow/internal/entity"
)

// MakeTurn places the current player's marker at (row, col). On error the
// game is left untouched.
func MakeTurn(game *entity.Game, row, col int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	cell := entity.Coord{Row: row, Col: col}
	if err := validateMove(game, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[row][col] = game.Turn
	game.Moves++
	game.Turn = game.Turn.Opponent()

	updateGameStatus(game)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, cell entity.Coord) error {
	if !game.Board.InBounds(cell) {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, cell)
	}

	if game.Board.At(cell) != entity.EmptyCell {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game) {
	if winner, run, ok := FindWinner(&game.Board); ok {
		game.Winner = winner
		game.Run = run
		game.Status = entity.StatusFinished

		return
	}

	if game.Moves == entity.CellCount {
		game.Status = entity.StatusFinished
	}
}
