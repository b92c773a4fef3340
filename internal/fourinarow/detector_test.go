package fourinarow

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/fourinarow/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawBoard is a full board without any run: O where (col/2 + row) is even.
func drawBoard() entity.Board {
	var board entity.Board
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if (col/2+row)%2 == 0 {
				board[row][col] = entity.PlayerO
			} else {
				board[row][col] = entity.PlayerX
			}
		}
	}

	return board
}

// hasRunSlow checks every cell in every direction with explicit bounds.
func hasRunSlow(board *entity.Board, player entity.Cell) bool {
	directions := [][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			for _, d := range directions {
				count := 0
				for k := range entity.RunLength {
					c := entity.Coord{Row: row + k*d[0], Col: col + k*d[1]}
					if !board.InBounds(c) || board.At(c) != player {
						break
					}
					count++
				}

				if count == entity.RunLength {
					return true
				}
			}
		}
	}

	return false
}

func requireValidRun(t *testing.T, board *entity.Board, player entity.Cell, run []entity.Coord) {
	t.Helper()

	require.Len(t, run, entity.RunLength)
	require.True(t, entity.IsLine(run), "run %v is not a line", run)

	for _, c := range run {
		require.Equal(t, player, board.At(c), "run cell %s", c)
	}
}

func TestFindRun(t *testing.T) {
	t.Run("Horizontal run at the left edge", func(t *testing.T) {
		// Given: O holds (0,0)..(0,3)
		var board entity.Board
		for col := range 4 {
			board[0][col] = entity.PlayerO
		}

		// When: searching for an O run
		run, ok := FindRun(&board, entity.PlayerO)

		// Then: the row is reported in ascending order
		require.True(t, ok)
		assert.Equal(t, []entity.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}}, run)
	})

	t.Run("Horizontal run at the right edge", func(t *testing.T) {
		var board entity.Board
		for col := 5; col < 9; col++ {
			board[8][col] = entity.PlayerX
		}

		run, ok := FindRun(&board, entity.PlayerX)

		require.True(t, ok)
		assert.Equal(t, []entity.Coord{{Row: 8, Col: 5}, {Row: 8, Col: 6}, {Row: 8, Col: 7}, {Row: 8, Col: 8}}, run)
	})

	t.Run("Vertical run", func(t *testing.T) {
		var board entity.Board
		for row := 5; row < 9; row++ {
			board[row][7] = entity.PlayerO
		}

		run, ok := FindRun(&board, entity.PlayerO)

		require.True(t, ok)
		assert.Equal(t, []entity.Coord{{Row: 5, Col: 7}, {Row: 6, Col: 7}, {Row: 7, Col: 7}, {Row: 8, Col: 7}}, run)
	})

	t.Run("Down-right diagonal", func(t *testing.T) {
		// Given: X holds (2,2),(3,3),(4,4),(5,5)
		var board entity.Board
		for i := 2; i < 6; i++ {
			board[i][i] = entity.PlayerX
		}

		// When: searching for an X run
		run, ok := FindRun(&board, entity.PlayerX)

		// Then: exactly that set is reported
		require.True(t, ok)
		assert.Equal(t, []entity.Coord{{Row: 2, Col: 2}, {Row: 3, Col: 3}, {Row: 4, Col: 4}, {Row: 5, Col: 5}}, run)
	})

	t.Run("Anti-diagonal is reported from its bottom-left end", func(t *testing.T) {
		var board entity.Board
		board[8][5] = entity.PlayerO
		board[7][6] = entity.PlayerO
		board[6][7] = entity.PlayerO
		board[5][8] = entity.PlayerO

		run, ok := FindRun(&board, entity.PlayerO)

		require.True(t, ok)
		assert.Equal(t, []entity.Coord{{Row: 8, Col: 5}, {Row: 7, Col: 6}, {Row: 6, Col: 7}, {Row: 5, Col: 8}}, run)
	})

	t.Run("Three in a row is not a run", func(t *testing.T) {
		var board entity.Board
		board[4][1] = entity.PlayerX
		board[4][2] = entity.PlayerX
		board[4][3] = entity.PlayerX
		board[4][4] = entity.PlayerO

		_, ok := FindRun(&board, entity.PlayerX)

		assert.False(t, ok)
	})

	t.Run("Runs of the other player are ignored", func(t *testing.T) {
		var board entity.Board
		for col := range 4 {
			board[3][col] = entity.PlayerO
		}

		_, ok := FindRun(&board, entity.PlayerX)

		assert.False(t, ok)
	})

	t.Run("Empty marker never forms a run", func(t *testing.T) {
		var board entity.Board

		_, ok := FindRun(&board, entity.EmptyCell)

		assert.False(t, ok)
	})

	t.Run("Longer lines report their first four cells", func(t *testing.T) {
		var board entity.Board
		for col := 2; col < 8; col++ {
			board[6][col] = entity.PlayerX
		}

		run, ok := FindRun(&board, entity.PlayerX)

		require.True(t, ok)
		assert.Equal(t, []entity.Coord{{Row: 6, Col: 2}, {Row: 6, Col: 3}, {Row: 6, Col: 4}, {Row: 6, Col: 5}}, run)
	})
}

func TestFindWinner(t *testing.T) {
	t.Run("No winner on the draw board", func(t *testing.T) {
		board := drawBoard()

		winner, run, ok := FindWinner(&board)

		assert.False(t, ok)
		assert.Equal(t, entity.EmptyCell, winner)
		assert.Nil(t, run)
	})

	t.Run("O is scanned before X", func(t *testing.T) {
		// Given: both players hold a run
		var board entity.Board
		for col := range 4 {
			board[0][col] = entity.PlayerX
			board[8][col] = entity.PlayerO
		}

		// When: looking for a winner
		winner, run, ok := FindWinner(&board)

		// Then: O's run is reported
		require.True(t, ok)
		assert.Equal(t, entity.PlayerO, winner)
		assert.Equal(t, []entity.Coord{{Row: 8, Col: 0}, {Row: 8, Col: 1}, {Row: 8, Col: 2}, {Row: 8, Col: 3}}, run)
	})

	t.Run("Rows and columns come before diagonals", func(t *testing.T) {
		var board entity.Board
		for i := range 4 {
			board[i][i] = entity.PlayerX
			board[5+i][8] = entity.PlayerX
		}

		_, run, ok := FindWinner(&board)

		require.True(t, ok)
		assert.Equal(t, []entity.Coord{{Row: 5, Col: 8}, {Row: 6, Col: 8}, {Row: 7, Col: 8}, {Row: 8, Col: 8}}, run)
	})
}

func TestFindRun_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for range 2000 {
		// Given: a random board, sparse enough that runs are neither rare nor certain
		var board entity.Board
		for row := range entity.BoardSize {
			for col := range entity.BoardSize {
				switch rng.Intn(5) {
				case 0:
					board[row][col] = entity.PlayerO
				case 1:
					board[row][col] = entity.PlayerX
				}
			}
		}

		for _, player := range entity.Players {
			// When: both detectors run
			run, ok := FindRun(&board, player)

			// Then: they agree, and a reported run is genuine
			require.Equal(t, hasRunSlow(&board, player), ok)
			if ok {
				requireValidRun(t, &board, player, run)
			}
		}
	}
}
