package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/galactic-tictactoe/internal/entity"
)

const WindowTitle = "Galactic Tic-Tac-Toe"

type game interface {
	StartGame() bool
	CellClicked(index int) bool
	PlayAgain() bool
	NewMatch() bool
	GoToMainMenu() bool
	Quit()

	CurrentScreen() entity.Screen
	BoardSnapshot() entity.Board
	Scores() (int, int)
	RoundOutcome() entity.RoundOutcome
	MatchPoint() int
}

type Options struct {
	// ThinkDelay hides the computer's reply for a moment after the player's move.
	ThinkDelay time.Duration
	// ClickDebounce drops button presses that follow the previous one too closely.
	ClickDebounce time.Duration
	NoMouse       bool
	NoColor       bool

	Now func() time.Time
}

// revealMsg ends the think delay started by the move with the same seq.
type revealMsg struct {
	seq int
}

// Model adapts terminal input to game manager calls and renders its state.
// It owns only transient UI state: cursor, hover, think delay and debounce.
type Model struct {
	logger *slog.Logger
	game   game
	keys   KeyMap
	help   help.Model
	styles styles
	opts   Options

	cursor     int
	hover      action
	thinking   bool
	hiddenCell int
	thinkSeq   int
	lastPress  time.Time
	width      int
	height     int
}

func NewModel(logger *slog.Logger, game game, renderer *lipgloss.Renderer, opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Model{
		logger:     logger.With("component", "tui"),
		game:       game,
		keys:       Keys,
		help:       help.New(),
		styles:     newStyles(renderer),
		opts:       opts,
		cursor:     entity.CenterCell,
		hover:      actionNone,
		hiddenCell: entity.NoMove,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case revealMsg:
		if msg.seq == m.thinkSeq {
			m.stopThinking()
		}

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.trigger(actionQuit)
	}

	if m.thinking {
		return nil
	}

	screen := m.displayScreen()

	switch {
	case key.Matches(msg, m.keys.Start):
		return m.triggerVisible(actionStartGame)
	case key.Matches(msg, m.keys.Quit):
		return m.triggerVisible(actionQuit)
	case key.Matches(msg, m.keys.MainMenu):
		return m.triggerVisible(actionMainMenu)
	case key.Matches(msg, m.keys.PlayAgain):
		return m.triggerVisible(actionPlayAgain)
	case key.Matches(msg, m.keys.NewMatch):
		return m.triggerVisible(actionNewMatch)
	}

	switch screen {
	case entity.ScreenMainMenu:
		if key.Matches(msg, m.keys.Place) {
			return m.trigger(actionStartGame)
		}
	case entity.ScreenVictory, entity.ScreenDefeat:
		if key.Matches(msg, m.keys.Place) {
			return m.trigger(actionNewMatch)
		}
	case entity.ScreenGame:
		return m.handleBoardKey(msg)
	}

	return nil
}

func (m *Model) handleBoardKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor >= 3 {
			m.cursor -= 3
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < 6 {
			m.cursor += 3
		}
	case key.Matches(msg, m.keys.Left):
		if m.cursor%3 > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor%3 < 2 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Cell):
		m.cursor = int(msg.String()[0] - '1')
		return m.clickCell(m.cursor)
	case key.Matches(msg, m.keys.Place):
		return m.clickCell(m.cursor)
	}

	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.thinking {
		return nil
	}

	screen := m.displayScreen()
	buttons := buttonsFor(screen, m.game.RoundOutcome().Active)
	hit := hitButton(buttons, buttonRow(screen), msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.hover = hit
		return nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}

		if hit != actionNone {
			return m.trigger(hit)
		}

		if screen == entity.ScreenGame {
			if cell := hitCell(msg.X, msg.Y); cell != entity.NoMove {
				m.cursor = cell
				return m.clickCell(cell)
			}
		}
	}

	return nil
}

// triggerVisible runs the action only when its button is on screen.
func (m *Model) triggerVisible(act action) tea.Cmd {
	for _, b := range buttonsFor(m.displayScreen(), m.game.RoundOutcome().Active) {
		if b.action == act {
			return m.trigger(act)
		}
	}

	return nil
}

func (m *Model) trigger(act action) tea.Cmd {
	log := m.logger.With("method", "trigger", "action", act.String())

	if act == actionQuit {
		m.game.Quit()
		return tea.Quit
	}

	now := m.opts.Now()
	if !m.lastPress.IsZero() && now.Sub(m.lastPress) < m.opts.ClickDebounce {
		log.Debug("press debounced")
		return nil
	}
	m.lastPress = now

	var accepted bool
	switch act {
	case actionStartGame:
		accepted = m.game.StartGame()
	case actionMainMenu:
		accepted = m.game.GoToMainMenu()
	case actionPlayAgain:
		accepted = m.game.PlayAgain()
	case actionNewMatch:
		accepted = m.game.NewMatch()
	}

	if accepted {
		m.cursor = entity.CenterCell
		m.hover = actionNone
	}

	log.Debug("button pressed", "accepted", accepted)

	return nil
}

func (m *Model) clickCell(cell int) tea.Cmd {
	if m.thinking || !m.game.CellClicked(cell) {
		return nil
	}

	outcome := m.game.RoundOutcome()
	if outcome.LastComputerMove == entity.NoMove || m.opts.ThinkDelay <= 0 {
		return nil
	}

	m.thinking = true
	m.hiddenCell = outcome.LastComputerMove
	m.thinkSeq++
	seq := m.thinkSeq

	return tea.Tick(m.opts.ThinkDelay, func(time.Time) tea.Msg {
		return revealMsg{seq: seq}
	})
}

func (m *Model) stopThinking() {
	m.thinking = false
	m.hiddenCell = entity.NoMove
}

// displayScreen keeps the game screen up while the computer's move is hidden,
// even if that move already ended the match.
func (m *Model) displayScreen() entity.Screen {
	if m.thinking {
		return entity.ScreenGame
	}

	return m.game.CurrentScreen()
}

func (act action) String() string {
	switch act {
	case actionStartGame:
		return "start_game"
	case actionQuit:
		return "quit"
	case actionMainMenu:
		return "main_menu"
	case actionPlayAgain:
		return "play_again"
	case actionNewMatch:
		return "new_match"
	default:
		return "none"
	}
}
