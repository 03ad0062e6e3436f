package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/galactic-tictactoe/internal/entity"
)

// Screen rows. The view is drawn from the top-left corner so mouse
// coordinates map straight onto these rows and columns.
const (
	titleRow      = 0
	headlineRow   = 1
	subtitleRow   = 2
	boardTop      = 3
	statusRow     = 9
	gameButtonRow = 11
	menuButtonRow = 4

	cellWidth  = 5
	boardWidth = 3*cellWidth + 2
	buttonGap  = 2
)

type action int

const (
	actionNone action = iota
	actionStartGame
	actionQuit
	actionMainMenu
	actionPlayAgain
	actionNewMatch
)

type button struct {
	label  string
	action action
	x      int
}

func (that button) text() string {
	return "[ " + that.label + " ]"
}

func (that button) width() int {
	return lipgloss.Width(that.text())
}

func (that button) contains(x int) bool {
	return x >= that.x && x < that.x+that.width()
}

// buttonsFor lists the buttons shown on screen, laid out left to right.
func buttonsFor(screen entity.Screen, roundActive bool) []button {
	var buttons []button

	switch screen {
	case entity.ScreenMainMenu:
		buttons = []button{
			{label: "Start Game", action: actionStartGame},
			{label: "Quit", action: actionQuit},
		}
	case entity.ScreenGame:
		buttons = []button{{label: "Main Menu", action: actionMainMenu}}
		if !roundActive {
			buttons = append(buttons, button{label: "Play Again", action: actionPlayAgain})
		}
	case entity.ScreenVictory:
		buttons = []button{
			{label: "Next Match", action: actionNewMatch},
			{label: "Main Menu", action: actionMainMenu},
		}
	case entity.ScreenDefeat:
		buttons = []button{
			{label: "Try Again", action: actionNewMatch},
			{label: "Main Menu", action: actionMainMenu},
		}
	}

	x := 0
	for i := range buttons {
		buttons[i].x = x
		x += buttons[i].width() + buttonGap
	}

	return buttons
}

func buttonRow(screen entity.Screen) int {
	if screen == entity.ScreenMainMenu {
		return menuButtonRow
	}

	return gameButtonRow
}

func hitButton(buttons []button, row, x, y int) action {
	if y != row {
		return actionNone
	}

	for _, b := range buttons {
		if b.contains(x) {
			return b.action
		}
	}

	return actionNone
}

// hitCell maps a terminal position to a board index, or entity.NoMove when
// the position is a grid line or outside the board.
func hitCell(x, y int) int {
	dy := y - boardTop
	if dy < 0 || dy > 4 || dy%2 != 0 {
		return entity.NoMove
	}

	if x < 0 || x >= boardWidth || x%(cellWidth+1) == cellWidth {
		return entity.NoMove
	}

	return (dy/2)*3 + x/(cellWidth+1)
}
