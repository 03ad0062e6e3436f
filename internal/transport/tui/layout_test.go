package tui

import (
	"testing"

	"github.com/rocketscienceinc/galactic-tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestHitCell(t *testing.T) {
	t.Run("Maps every cell", func(t *testing.T) {
		for index := 0; index < entity.BoardSize; index++ {
			row, col := index/3, index%3

			// the first and last column of each cell hit the same index
			left := col * (cellWidth + 1)
			right := left + cellWidth - 1
			y := boardTop + 2*row

			assert.Equal(t, index, hitCell(left, y), "cell %d left edge", index)
			assert.Equal(t, index, hitCell(right, y), "cell %d right edge", index)
		}
	})

	t.Run("Grid lines and outside the board are misses", func(t *testing.T) {
		misses := [][2]int{
			{cellWidth, boardTop},       // vertical bar
			{2*cellWidth + 1, boardTop}, // second vertical bar
			{0, boardTop + 1},           // separator row
			{0, boardTop - 1},           // above
			{0, boardTop + 5},           // below
			{boardWidth, boardTop},      // right of the board
			{-1, boardTop},              // left of the board
		}

		for _, pos := range misses {
			assert.Equal(t, entity.NoMove, hitCell(pos[0], pos[1]), "position %v", pos)
		}
	})
}

func TestButtonsFor(t *testing.T) {
	t.Run("Play Again only after the round", func(t *testing.T) {
		active := buttonsFor(entity.ScreenGame, true)
		finished := buttonsFor(entity.ScreenGame, false)

		assert.Len(t, active, 1)
		assert.Equal(t, actionMainMenu, active[0].action)

		assert.Len(t, finished, 2)
		assert.Equal(t, actionPlayAgain, finished[1].action)
	})

	t.Run("Buttons are laid out left to right", func(t *testing.T) {
		buttons := buttonsFor(entity.ScreenMainMenu, false)

		assert.Equal(t, 0, buttons[0].x)
		assert.Equal(t, len("[ Start Game ]")+buttonGap, buttons[1].x)
		assert.Equal(t, actionStartGame, hitButton(buttons, menuButtonRow, 0, menuButtonRow))
		assert.Equal(t, actionQuit, hitButton(buttons, menuButtonRow, buttons[1].x, menuButtonRow))
		assert.Equal(t, actionNone, hitButton(buttons, menuButtonRow, buttons[1].x-1, menuButtonRow))
		assert.Equal(t, actionNone, hitButton(buttons, menuButtonRow, 0, menuButtonRow+1))
	})

	t.Run("Victory and defeat buttons", func(t *testing.T) {
		victory := buttonsFor(entity.ScreenVictory, false)
		defeat := buttonsFor(entity.ScreenDefeat, false)

		assert.Equal(t, "Next Match", victory[0].label)
		assert.Equal(t, "Try Again", defeat[0].label)
		assert.Equal(t, actionNewMatch, defeat[0].action)
		assert.Equal(t, actionMainMenu, defeat[1].action)
	})
}
