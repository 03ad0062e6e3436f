package entity

import "time"

type Screen string

const (
	ScreenMainMenu Screen = "main_menu"
	ScreenGame     Screen = "game"
	ScreenVictory  Screen = "victory"
	ScreenDefeat   Screen = "defeat"
)

// NoMove marks the absence of a computer move in a RoundOutcome.
const NoMove = -1

// Round is one play of the board to a win or draw.
type Round struct {
	ID               string
	Board            Board
	Active           bool
	Winner           Cell
	WinningLine      *WinLine
	LastComputerMove int
}

func NewRound(id string) *Round {
	return &Round{
		ID:               id,
		Active:           true,
		Winner:           EmptyCell,
		LastComputerMove: NoMove,
	}
}

// Finish closes the round. A nil line means a draw.
func (that *Round) Finish(winner Cell, line *WinLine) {
	that.Active = false
	that.Winner = winner
	that.WinningLine = line
}

// IsDraw reports a finished round that filled the board without a winner.
// The idle round shown on the main menu is not a draw.
func (that *Round) IsDraw() bool {
	return !that.Active && that.Winner == EmptyCell && that.Board.CheckDraw()
}

func (that *Round) Outcome() RoundOutcome {
	outcome := RoundOutcome{
		Active:           that.Active,
		Winner:           that.Winner,
		Draw:             that.IsDraw(),
		LastComputerMove: that.LastComputerMove,
	}

	if that.WinningLine != nil {
		line := *that.WinningLine
		outcome.WinningLine = &line
	}

	return outcome
}

// RoundOutcome is the read-only view of a round handed to the presentation layer.
type RoundOutcome struct {
	Active           bool
	Winner           Cell
	WinningLine      *WinLine
	Draw             bool
	LastComputerMove int
}

// RoundResult is the record of a finished round written to the journal.
type RoundResult struct {
	RoundID       string    `json:"round_id"`
	Winner        Cell      `json:"winner"`
	WinningLine   *WinLine  `json:"winning_line,omitempty"`
	Board         Board     `json:"board"`
	PlayerScore   int       `json:"player_score"`
	ComputerScore int       `json:"computer_score"`
	MatchPoint    int       `json:"match_point"`
	FinishedAt    time.Time `json:"finished_at"`
}
