package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/fourinarow/internal/config"
	"github.com/rocketscienceinc/fourinarow/internal/repository"
	"github.com/rocketscienceinc/fourinarow/internal/repository/storage"
	"github.com/rocketscienceinc/fourinarow/internal/usecase"
	"github.com/rocketscienceinc/fourinarow/transport/gui"
	"github.com/rocketscienceinc/fourinarow/transport/tui"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var gameRepo repository.GameRepository
	if conf.Redis.Enabled {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		gameRepo = repository.NewGameRepository(redisStorage)
		log.Info("Game snapshots enabled", "addr", conf.Redis.GetRedisAddr())
	}

	session := usecase.NewGameManager(logger, gameRepo)
	if err := session.Start(ctx); err != nil {
		return fmt.Errorf("could not start session: %w", err)
	}

	log.Info("Starting frontend", "frontend", conf.Frontend)

	switch conf.Frontend {
	case config.FrontendTUI:
		if err := tui.Run(ctx, logger, session, conf.Window.TPS); err != nil {
			return fmt.Errorf("terminal frontend error: %w", err)
		}
	default:
		if err := gui.Run(ctx, logger, session, conf.Window, conf.Assets); err != nil {
			return fmt.Errorf("window frontend error: %w", err)
		}
	}

	log.Info("Frontend closed, shutting down")

	return nil
}
