package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/fourinarow/internal/entity"
	"github.com/rocketscienceinc/fourinarow/internal/view"
)

const (
	cellWidth  = 3
	defaultTPS = 60
)

var (
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	markerStyle = map[entity.Cell]lipgloss.Style{
		entity.PlayerO: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		entity.PlayerX: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
	runStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")).Bold(true)
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Background(lipgloss.Color("15")).Bold(true).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type session interface {
	Place(ctx context.Context, row, col int) bool
	Restart(ctx context.Context) error
	Result() entity.Result
	Game() *entity.Game
}

type frameMsg time.Time

// Model renders the board as text, one cell per three columns, inside a
// one character border.
type Model struct {
	ctx     context.Context
	logger  *slog.Logger
	session session

	keys    KeyMap
	grid    view.Grid
	cursor  entity.Coord
	frame   time.Duration
	caption string
}

func NewModel(ctx context.Context, logger *slog.Logger, session session, tps int) Model {
	if tps <= 0 {
		tps = defaultTPS
	}

	return Model{
		ctx:     ctx,
		logger:  logger.With("component", "tui"),
		session: session,
		keys:    Keys,
		grid:    view.Grid{CellWidth: cellWidth, CellHeight: 1, OffsetX: 1, OffsetY: 1},
		cursor:  entity.Coord{Row: entity.BoardSize / 2, Col: entity.BoardSize / 2},
		frame:   time.Second / time.Duration(tps),
	}
}

// Run blocks until the player quits or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, session session, tps int) error {
	program := tea.NewProgram(
		NewModel(ctx, logger, session, tps),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}

		return fmt.Errorf("terminal frontend failed: %w", err)
	}

	return nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		caption := view.Caption(m.session.Result())
		if caption == m.caption {
			return m, m.tick()
		}

		m.caption = caption

		return m, tea.Batch(tea.SetWindowTitle(caption), m.tick())

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		if cell, ok := m.grid.CellAt(msg.X, msg.Y); ok {
			m.cursor = cell
			m.session.Place(m.ctx, cell.Row, cell.Col)
		}
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if err := m.session.Restart(m.ctx); err != nil {
			m.logger.Error("failed to restart", "error", err)
		}

	case key.Matches(msg, m.keys.Place):
		m.session.Place(m.ctx, m.cursor.Row, m.cursor.Col)

	case key.Matches(msg, m.keys.Up):
		m.cursor.Row = max(m.cursor.Row-1, 0)

	case key.Matches(msg, m.keys.Down):
		m.cursor.Row = min(m.cursor.Row+1, entity.BoardSize-1)

	case key.Matches(msg, m.keys.Left):
		m.cursor.Col = max(m.cursor.Col-1, 0)

	case key.Matches(msg, m.keys.Right):
		m.cursor.Col = min(m.cursor.Col+1, entity.BoardSize-1)
	}

	return m, nil
}

func (m Model) View() string {
	game := m.session.Game()
	if game == nil {
		return ""
	}

	result := m.session.Result()

	var s strings.Builder
	s.WriteString(boardStyle.Render(m.renderBoard(game)))
	s.WriteString("\n")
	s.WriteString(view.Caption(result))

	if banner, ok := view.Banner(result); ok {
		s.WriteString("\n")
		s.WriteString(bannerStyle.Render(banner))
	}

	s.WriteString("\n")
	s.WriteString(m.renderHelp())

	return s.String()
}

func (m Model) renderBoard(game *entity.Game) string {
	rows := make([]string, 0, entity.BoardSize)

	for row := range entity.BoardSize {
		var line strings.Builder

		for col := range entity.BoardSize {
			c := entity.Coord{Row: row, Col: col}
			line.WriteString(m.renderCell(game, c))
		}

		rows = append(rows, line.String())
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderCell(game *entity.Game, c entity.Coord) string {
	content := game.Board.At(c)

	label := " · "
	style := emptyStyle
	if content.IsPlayer() {
		label = " " + content.String() + " "
		style = markerStyle[content]
	}

	switch {
	case game.InRun(c):
		style = runStyle
	case c == m.cursor && !game.IsFinished():
		style = style.Reverse(true)
	}

	return style.Render(label)
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, binding := range m.keys.help() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}

	return helpStyle.Render(strings.Join(parts, " • "))
}
