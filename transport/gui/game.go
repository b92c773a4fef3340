package gui

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/rocketscienceinc/fourinarow/internal/asset"
	"github.com/rocketscienceinc/fourinarow/internal/config"
	"github.com/rocketscienceinc/fourinarow/internal/entity"
	"github.com/rocketscienceinc/fourinarow/internal/view"
)

const winningLineWidth = 10

var (
	winningLineColor = color.RGBA{R: 255, A: 255}
	bannerTextColor  = color.RGBA{R: 255, A: 255}
	bannerBackground = color.White
)

type session interface {
	Place(ctx context.Context, row, col int) bool
	Restart(ctx context.Context) error
	Result() entity.Result
	Game() *entity.Game
}

// Game drives one window. Each tick it refreshes the caption and then polls
// input; ebiten calls Draw in between.
type Game struct {
	ctx     context.Context
	logger  *slog.Logger
	session session

	size    int
	grid    view.Grid
	board   *ebiten.Image
	markers map[entity.Cell]*ebiten.Image
	font    *text.GoTextFace
	caption string
}

func New(ctx context.Context, logger *slog.Logger, session session, window config.Window, assets config.Assets) (*Game, error) {
	grid := view.SquareGrid(window.Size)

	set, err := asset.LoadSet(assets.Board, assets.MarkerO, assets.MarkerX, window.Size, grid.CellWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	return &Game{
		ctx:     ctx,
		logger:  logger.With("component", "gui"),
		session: session,
		size:    window.Size,
		grid:    grid,
		board:   ebiten.NewImageFromImage(set.Board),
		markers: map[entity.Cell]*ebiten.Image{
			entity.PlayerO: ebiten.NewImageFromImage(set.MarkerO),
			entity.PlayerX: ebiten.NewImageFromImage(set.MarkerX),
		},
		font: &text.GoTextFace{Source: source, Size: float64(grid.CellWidth) / 4},
	}, nil
}

// Run opens the window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, session session, window config.Window, assets config.Assets) error {
	game, err := New(ctx, logger, session, window, assets)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(window.Size, window.Size)
	ebiten.SetWindowTitle(view.Caption(session.Result()))
	ebiten.SetTPS(window.TPS)

	if err = ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	return nil
}

func (that *Game) Update() error {
	if that.ctx.Err() != nil {
		return ebiten.Termination
	}

	that.updateCaption()
	that.handleInput()

	return nil
}

func (that *Game) updateCaption() {
	caption := view.Caption(that.session.Result())
	if caption == that.caption {
		return
	}

	that.caption = caption
	ebiten.SetWindowTitle(caption)
}

func (that *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := that.session.Restart(that.ctx); err != nil {
			that.logger.Error("failed to restart", "error", err)
		}

		return
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}

	cell, ok := that.grid.CellAt(ebiten.CursorPosition())
	if !ok {
		return
	}

	that.session.Place(that.ctx, cell.Row, cell.Col)
}

func (that *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(that.board, nil)

	if game := that.session.Game(); game != nil {
		that.drawMarkers(screen, game)
	}

	result := that.session.Result()
	that.drawWinningLine(screen, result)
	that.drawBanner(screen, result)
}

func (that *Game) drawMarkers(screen *ebiten.Image, game *entity.Game) {
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			marker, ok := that.markers[game.Board[row][col]]
			if !ok {
				continue
			}

			x, y := that.grid.Origin(entity.Coord{Row: row, Col: col})

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(marker, op)
		}
	}
}

func (that *Game) drawWinningLine(screen *ebiten.Image, result entity.Result) {
	line, ok := that.grid.WinningLine(result)
	if !ok {
		return
	}

	vector.StrokeLine(screen,
		float32(line.X0), float32(line.Y0), float32(line.X1), float32(line.Y1),
		winningLineWidth, winningLineColor, true)
}

func (that *Game) drawBanner(screen *ebiten.Image, result entity.Result) {
	label, ok := view.Banner(result)
	if !ok {
		return
	}

	width, height := text.Measure(label, that.font, 0)
	x := float64(that.size)/2 - width/2
	y := float64(that.size) / 8

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bannerBackground, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(bannerTextColor)
	text.Draw(screen, label, that.font, op)
}

func (that *Game) Layout(_, _ int) (int, int) {
	return that.size, that.size
}
