package entity

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	BoardSize = 9
	RunLength = 4
	CellCount = BoardSize * BoardSize

	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

var ErrCorruptGame = errors.New("corrupt game state")

// State is the coarse phase of a game.
type State uint8

const (
	StateInProgress State = iota
	StateWon
	StateDraw
)

func (that State) String() string {
	switch that {
	case StateWon:
		return "won"
	case StateDraw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Result describes a game as the players see it. Turn is set only while
// the game is in progress, Winner and Run only once it is won.
type Result struct {
	State  State
	Turn   Cell
	Winner Cell
	Run    []Coord
}

// Board is the 9x9 grid, addressed as Board[row][col].
type Board [BoardSize][BoardSize]Cell

func (that *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

func (that *Board) At(c Coord) Cell {
	return that[c.Row][c.Col]
}

// Filled counts the non-empty cells.
func (that *Board) Filled() int {
	filled := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != EmptyCell {
				filled++
			}
		}
	}

	return filled
}

type Game struct {
	ID     string  `json:"id"`
	Board  Board   `json:"board"`
	Turn   Cell    `json:"turn"`
	Moves  int     `json:"moves"`
	Winner Cell    `json:"winner"`
	Run    []Coord `json:"run,omitempty"`
	Status string  `json:"status"`
}

func NewGame(id string, first Cell) *Game {
	return &Game{
		ID:     id,
		Turn:   first,
		Status: StatusOngoing,
	}
}

// RandomPlayer picks the starting marker of a new game.
func RandomPlayer() Cell {
	return Players[rand.Intn(len(Players))] //nolint: gosec // it's ok
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWon() bool {
	return that.Winner.IsPlayer()
}

// IsDraw reports a full board without a winner.
func (that *Game) IsDraw() bool {
	return !that.IsWon() && that.Moves == CellCount
}

func (that *Game) Result() Result {
	switch {
	case that.IsWon():
		run := make([]Coord, len(that.Run))
		copy(run, that.Run)

		return Result{State: StateWon, Winner: that.Winner, Run: run}
	case that.IsDraw():
		return Result{State: StateDraw}
	default:
		return Result{State: StateInProgress, Turn: that.Turn}
	}
}

// InRun reports whether c belongs to the winning run.
func (that *Game) InRun(c Coord) bool {
	for _, runCell := range that.Run {
		if runCell == c {
			return true
		}
	}

	return false
}

func (that *Game) Clone() *Game {
	clone := *that
	if that.Run != nil {
		clone.Run = make([]Coord, len(that.Run))
		copy(clone.Run, that.Run)
	}

	return &clone
}

// Validate checks the invariants a stored game must satisfy before it is
// played on.
func (that *Game) Validate() error {
	if filled := that.Board.Filled(); filled != that.Moves {
		return fmt.Errorf("%w: %d moves but %d filled cells", ErrCorruptGame, that.Moves, filled)
	}

	if !that.Turn.IsPlayer() {
		return fmt.Errorf("%w: turn %d", ErrCorruptGame, that.Turn)
	}

	switch that.Status {
	case StatusOngoing:
		if that.IsWon() || that.Moves == CellCount {
			return fmt.Errorf("%w: ongoing game is already decided", ErrCorruptGame)
		}
	case StatusFinished:
		if !that.IsWon() && that.Moves != CellCount {
			return fmt.Errorf("%w: finished game without a result", ErrCorruptGame)
		}
	default:
		return fmt.Errorf("%w: status %q", ErrCorruptGame, that.Status)
	}

	if !that.IsWon() {
		return nil
	}

	if len(that.Run) != RunLength {
		return fmt.Errorf("%w: run of %d cells", ErrCorruptGame, len(that.Run))
	}

	for _, c := range that.Run {
		if !that.Board.InBounds(c) || that.Board.At(c) != that.Winner {
			return fmt.Errorf("%w: run cell %s", ErrCorruptGame, c)
		}
	}

	if !IsLine(that.Run) {
		return fmt.Errorf("%w: run %v is not a line", ErrCorruptGame, that.Run)
	}

	return nil
}

// IsLine reports whether cells step by the same unit vector from one to
// the next, in any of the eight directions.
func IsLine(cells []Coord) bool {
	if len(cells) < 2 {
		return len(cells) == 1
	}

	dRow, dCol := cells[1].Row-cells[0].Row, cells[1].Col-cells[0].Col
	if dRow < -1 || dRow > 1 || dCol < -1 || dCol > 1 || (dRow == 0 && dCol == 0) {
		return false
	}

	for i := 2; i < len(cells); i++ {
		if cells[i].Row-cells[i-1].Row != dRow || cells[i].Col-cells[i-1].Col != dCol {
			return false
		}
	}

	return true
}
