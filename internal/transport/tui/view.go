package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/rocketscienceinc/galactic-tictactoe/internal/entity"
)

func (m *Model) View() string {
	screen := m.displayScreen()
	outcome := m.game.RoundOutcome()
	playerScore, computerScore := m.game.Scores()

	row := buttonRow(screen)
	lines := make([]string, row+3)
	lines[titleRow] = m.styles.title.Render(WindowTitle)

	switch screen {
	case entity.ScreenMainMenu:
		lines[subtitleRow] = m.styles.muted.Render(fmt.Sprintf("First to %d round wins takes the match.", m.game.MatchPoint()))

	case entity.ScreenGame:
		lines[headlineRow] = m.styles.text.Render(fmt.Sprintf("Player: %d   Computer: %d", playerScore, computerScore))
		m.renderBoard(lines, outcome)
		lines[statusRow] = m.status(outcome)

	case entity.ScreenVictory, entity.ScreenDefeat:
		if screen == entity.ScreenVictory {
			lines[headlineRow] = m.styles.victory.Render("VICTORY!")
		} else {
			lines[headlineRow] = m.styles.defeat.Render("DEFEAT!")
		}
		lines[subtitleRow] = m.styles.text.Render(fmt.Sprintf("Final Score - Player: %d   Computer: %d", playerScore, computerScore))
		m.renderBoard(lines, outcome)
		lines[statusRow] = m.status(outcome)
	}

	lines[row] = m.renderButtons(buttonsFor(screen, outcome.Active || m.thinking))
	lines[row+2] = m.help.ShortHelpView(m.helpKeys(screen))

	return strings.Join(lines, "\n")
}

func (m *Model) renderBoard(lines []string, outcome entity.RoundOutcome) {
	board := m.game.BoardSnapshot()
	if m.thinking && m.hiddenCell != entity.NoMove {
		board[m.hiddenCell] = entity.EmptyCell
	}

	var winning [entity.BoardSize]bool
	if outcome.WinningLine != nil && !m.thinking {
		for _, cell := range outcome.WinningLine {
			winning[cell] = true
		}
	}

	showCursor := m.displayScreen() == entity.ScreenGame && outcome.Active
	separator := m.styles.grid.Render(strings.Repeat("-", cellWidth) + "+" + strings.Repeat("-", cellWidth) + "+" + strings.Repeat("-", cellWidth))
	bar := m.styles.grid.Render("|")

	for r := 0; r < 3; r++ {
		cells := make([]string, 3)
		for c := 0; c < 3; c++ {
			index := r*3 + c
			cells[c] = m.renderCell(board[index], winning[index], showCursor && index == m.cursor)
		}

		lines[boardTop+2*r] = strings.Join(cells, bar)
		if r < 2 {
			lines[boardTop+2*r+1] = separator
		}
	}
}

func (m *Model) renderCell(cell entity.Cell, winning, cursor bool) string {
	text := strings.Repeat(" ", cellWidth)
	if cell != entity.EmptyCell {
		pad := strings.Repeat(" ", (cellWidth-1)/2)
		text = pad + cell.String() + pad
	}

	style := m.styles.text
	switch {
	case winning:
		style = m.styles.winning
	case cell == entity.PlayerMark:
		style = m.styles.player
	case cell == entity.ComputerMark:
		style = m.styles.computer
	}

	if cursor {
		style = style.Reverse(true)
	}

	return style.Render(text)
}

func (m *Model) status(outcome entity.RoundOutcome) string {
	switch {
	case m.thinking:
		return m.styles.muted.Render("Computer is thinking...")
	case m.game.CurrentScreen() == entity.ScreenVictory:
		return m.styles.victory.Render("You reached match point.")
	case m.game.CurrentScreen() == entity.ScreenDefeat:
		return m.styles.defeat.Render("The computer reached match point.")
	case outcome.Active:
		return m.styles.text.Render("Your move: click a cell or press 1-9.")
	case outcome.Winner == entity.PlayerMark:
		return m.styles.victory.Render("You win the round!")
	case outcome.Winner == entity.ComputerMark:
		return m.styles.defeat.Render("Computer wins the round.")
	default:
		return m.styles.text.Render("Draw!")
	}
}

func (m *Model) renderButtons(buttons []button) string {
	rendered := make([]string, 0, len(buttons))
	for _, b := range buttons {
		style := m.styles.button
		if b.action == m.hover {
			style = m.styles.buttonHover
		}
		rendered = append(rendered, style.Render(b.text()))
	}

	return strings.Join(rendered, strings.Repeat(" ", buttonGap))
}

func (m *Model) helpKeys(screen entity.Screen) []key.Binding {
	switch screen {
	case entity.ScreenMainMenu:
		return []key.Binding{m.keys.Start, m.keys.Quit}
	case entity.ScreenGame:
		bindings := []key.Binding{m.keys.Cell, m.keys.Place, m.keys.MainMenu}
		if !m.game.RoundOutcome().Active && !m.thinking {
			bindings = append(bindings, m.keys.PlayAgain)
		}
		return bindings
	default:
		return []key.Binding{m.keys.NewMatch, m.keys.MainMenu}
	}
}
