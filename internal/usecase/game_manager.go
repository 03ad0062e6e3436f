package usecase

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/galactic-tictactoe/internal/entity"
)

type botService interface {
	MakeTurn(board *entity.Board) (int, error)
}

type roundJournal interface {
	Enqueue(result *entity.RoundResult) error
}

// GameManager owns the match, the current round and the active screen.
// It is not safe for concurrent use; the presentation layer drives it from one event loop.
type GameManager struct {
	logger  *slog.Logger
	bot     botService
	journal roundJournal
	now     func() time.Time

	screen   entity.Screen
	match    *entity.Match
	round    *entity.Round
	quitting bool
}

type Option func(*GameManager)

// WithRoundJournal queues every finished round for the journal.
func WithRoundJournal(journal roundJournal) Option {
	return func(that *GameManager) {
		that.journal = journal
	}
}

func WithClock(now func() time.Time) Option {
	return func(that *GameManager) {
		that.now = now
	}
}

func NewGameManager(logger *slog.Logger, bot botService, matchPoint int, opts ...Option) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    bot,
		now:    time.Now,

		screen: entity.ScreenMainMenu,
		match:  entity.NewMatch(matchPoint),
		round:  idleRound(),
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

func (that *GameManager) StartGame() bool {
	if that.screen != entity.ScreenMainMenu {
		return false
	}

	that.newRound()
	that.switchScreen(entity.ScreenGame)

	return true
}

// CellClicked plays the player's mark and, unless that ends the round, the computer's reply.
// Clicks outside the game screen, on a finished round or on an occupied cell are ignored.
func (that *GameManager) CellClicked(index int) bool {
	log := that.logger.With("method", "CellClicked", "cell", index)

	if that.screen != entity.ScreenGame || !that.round.Active || !that.round.Board.IsEmptyAt(index) {
		log.Debug("click ignored", "screen", that.screen, "active", that.round.Active)
		return false
	}

	if err := that.round.Board.Place(index, entity.PlayerMark); err != nil {
		log.Debug("click ignored", "error", err)
		return false
	}

	that.round.LastComputerMove = entity.NoMove

	if that.settleRound(entity.PlayerMark) {
		return true
	}

	cell, err := that.bot.MakeTurn(&that.round.Board)
	if err != nil {
		log.Error("computer failed to move, closing round", "error", err)
		that.round.Finish(entity.EmptyCell, nil)
		return true
	}

	that.round.LastComputerMove = cell
	log.Debug("computer moved", "computer_cell", cell)

	that.settleRound(entity.ComputerMark)

	return true
}

// PlayAgain starts a new round with the same scores once the current one is over.
func (that *GameManager) PlayAgain() bool {
	if that.screen != entity.ScreenGame || that.round.Active {
		return false
	}

	that.newRound()

	return true
}

// NewMatch zeroes both scores and starts a fresh round.
func (that *GameManager) NewMatch() bool {
	that.match.Reset()
	that.newRound()
	that.switchScreen(entity.ScreenGame)

	return true
}

// GoToMainMenu abandons the current round. Scores are kept until NewMatch.
func (that *GameManager) GoToMainMenu() bool {
	if that.screen == entity.ScreenMainMenu {
		return false
	}

	that.round = idleRound()
	that.switchScreen(entity.ScreenMainMenu)

	return true
}

func (that *GameManager) Quit() {
	that.logger.Info("quit requested", "player_score", that.match.PlayerScore, "computer_score", that.match.ComputerScore)
	that.quitting = true
}

func (that *GameManager) Quitting() bool {
	return that.quitting
}

func (that *GameManager) CurrentScreen() entity.Screen {
	return that.screen
}

func (that *GameManager) BoardSnapshot() entity.Board {
	return that.round.Board
}

func (that *GameManager) Scores() (int, int) {
	return that.match.PlayerScore, that.match.ComputerScore
}

func (that *GameManager) MatchPoint() int {
	return that.match.MatchPoint
}

func (that *GameManager) RoundOutcome() entity.RoundOutcome {
	return that.round.Outcome()
}

// settleRound closes the round if mark just won or filled the board.
func (that *GameManager) settleRound(mark entity.Cell) bool {
	board := &that.round.Board

	if line, ok := board.CheckWin(mark); ok {
		that.round.Finish(mark, &line)

		if that.match.Award(mark) {
			if mark == entity.PlayerMark {
				that.switchScreen(entity.ScreenVictory)
			} else {
				that.switchScreen(entity.ScreenDefeat)
			}
		}

		that.recordRound()

		return true
	}

	if board.CheckDraw() {
		that.round.Finish(entity.EmptyCell, nil)
		that.recordRound()

		return true
	}

	return false
}

func (that *GameManager) recordRound() {
	log := that.logger.With("method", "recordRound", "round_id", that.round.ID)

	log.Info("round finished",
		"winner", that.round.Winner.String(),
		"player_score", that.match.PlayerScore,
		"computer_score", that.match.ComputerScore,
	)

	if that.journal == nil {
		return
	}

	result := &entity.RoundResult{
		RoundID:       that.round.ID,
		Winner:        that.round.Winner,
		Board:         that.round.Board,
		PlayerScore:   that.match.PlayerScore,
		ComputerScore: that.match.ComputerScore,
		MatchPoint:    that.match.MatchPoint,
		FinishedAt:    that.now().UTC(),
	}

	if that.round.WinningLine != nil {
		line := *that.round.WinningLine
		result.WinningLine = &line
	}

	if err := that.journal.Enqueue(result); err != nil {
		log.Warn("failed to queue round", "error", err)
	}
}

func (that *GameManager) newRound() {
	that.round = entity.NewRound(uuid.NewString())
	that.logger.Debug("round started", "round_id", that.round.ID)
}

func (that *GameManager) switchScreen(screen entity.Screen) {
	that.logger.Debug("screen changed", "from", that.screen, "to", screen)
	that.screen = screen
}

func idleRound() *entity.Round {
	return &entity.Round{LastComputerMove: entity.NoMove}
}
