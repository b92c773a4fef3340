package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/fourinarow/internal/apperror"
	"github.com/rocketscienceinc/fourinarow/internal/entity"
	"github.com/rocketscienceinc/fourinarow/internal/fourinarow"
	"github.com/rocketscienceinc/fourinarow/internal/pkg"
	"github.com/rocketscienceinc/fourinarow/internal/repository"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetCurrent(ctx context.Context) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager is the session object handed to the frontends. It is not safe
// for concurrent use; the frame loop owns it.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	game *entity.Game
}

// NewGameManager - gameRepo may be nil, in which case games are not stored.
func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
	}
}

// Start resumes the last stored game, or begins a new one.
func (that *GameManager) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	if game, ok := that.resume(ctx); ok {
		that.game = game
		log.Info("game resumed", "gameID", game.ID, "moves", game.Moves, "status", game.Status)

		return nil
	}

	if err := that.newGame(ctx); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	return nil
}

// Restart throws the current game away and begins a new one.
func (that *GameManager) Restart(ctx context.Context) error {
	log := that.logger.With("method", "Restart")

	if that.game != nil && that.gameRepo != nil {
		err := that.gameRepo.DeleteByID(ctx, that.game.ID)
		if err != nil && !errors.Is(err, repository.ErrGameNotFound) {
			log.Error("failed to delete game", "gameID", that.game.ID, "error", err)
		}
	}

	if err := that.newGame(ctx); err != nil {
		return fmt.Errorf("failed to restart game: %w", err)
	}

	return nil
}

// Place puts the current player's marker at (row, col). Illegal placements
// are ignored and reported as false.
func (that *GameManager) Place(ctx context.Context, row, col int) bool {
	log := that.logger.With("method", "Place")

	if that.game == nil {
		log.Debug("placement ignored", "error", apperror.ErrNoActiveGame)
		return false
	}

	player := that.game.Turn
	if err := fourinarow.MakeTurn(that.game, row, col); err != nil {
		log.Debug("placement ignored", "row", row, "col", col, "error", err)
		return false
	}

	log.Debug("marker placed", "gameID", that.game.ID, "player", player.String(), "row", row, "col", col, "moves", that.game.Moves)

	switch result := that.game.Result(); result.State {
	case entity.StateWon:
		log.Info("game won", "gameID", that.game.ID, "winner", result.Winner.String(), "run", fmt.Sprint(result.Run))
	case entity.StateDraw:
		log.Info("game drawn", "gameID", that.game.ID)
	case entity.StateInProgress:
	}

	that.snapshot(ctx)

	return true
}

func (that *GameManager) Result() entity.Result {
	if that.game == nil {
		return entity.Result{}
	}

	return that.game.Result()
}

// Game returns a copy of the current game, nil before Start.
func (that *GameManager) Game() *entity.Game {
	if that.game == nil {
		return nil
	}

	return that.game.Clone()
}

func (that *GameManager) newGame(ctx context.Context) error {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return fmt.Errorf("error generating game ID: %w", err)
	}

	that.game = entity.NewGame(gameID, entity.RandomPlayer())
	that.logger.Info("new game", "gameID", gameID, "first", that.game.Turn.String())

	that.snapshot(ctx)

	return nil
}

func (that *GameManager) resume(ctx context.Context) (*entity.Game, bool) {
	if that.gameRepo == nil {
		return nil, false
	}

	log := that.logger.With("method", "resume")

	game, err := that.gameRepo.GetCurrent(ctx)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, false
	}

	if err != nil {
		log.Error("failed to load stored game", "error", err)
		return nil, false
	}

	if err = game.Validate(); err != nil {
		log.Warn("stored game discarded", "gameID", game.ID, "error", err)
		return nil, false
	}

	return game, true
}

// snapshot stores the current game. Storage trouble never stops play.
func (that *GameManager) snapshot(ctx context.Context) {
	if that.gameRepo == nil {
		return
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, that.game); err != nil {
		that.logger.Error("failed to store game", "gameID", that.game.ID, "error", err)
	}
}
