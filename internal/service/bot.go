package service

import (
	"fmt"

	"github.com/rocketscienceinc/galactic-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/galactic-tictactoe/internal/entity"
)

// BotService picks and plays the computer's move.
type BotService interface {
	MakeTurn(board *entity.Board) (int, error)
	ChooseCell(board entity.Board) (int, error)
}

// Intner is the random source used for the corner tie-break.
type Intner interface {
	Intn(n int) int
}

type botService struct {
	rnd  Intner
	mark entity.Cell
}

func NewBotService(rnd Intner) BotService {
	return &botService{
		rnd:  rnd,
		mark: entity.ComputerMark,
	}
}

func (that *botService) MakeTurn(board *entity.Board) (int, error) {
	cell, err := that.ChooseCell(*board)
	if err != nil {
		return entity.NoMove, err
	}

	if err = board.Place(cell, that.mark); err != nil {
		return entity.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}

// ChooseCell applies the tiers in order: win, block, center, random corner, lowest free cell.
func (that *botService) ChooseCell(board entity.Board) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.NoMove, apperror.ErrNoAvailableMoves
	}

	if cell, ok := completingCell(board, availableCells, that.mark); ok {
		return cell, nil
	}

	if cell, ok := completingCell(board, availableCells, that.mark.Opponent()); ok {
		return cell, nil
	}

	if board.IsEmptyAt(entity.CenterCell) {
		return entity.CenterCell, nil
	}

	corners := make([]int, 0, len(entity.CornerCells))
	for _, corner := range entity.CornerCells {
		if board.IsEmptyAt(corner) {
			corners = append(corners, corner)
		}
	}

	if len(corners) > 0 {
		return corners[that.rnd.Intn(len(corners))], nil
	}

	return availableCells[0], nil
}

// completingCell returns the lowest empty cell that gives mark a line.
func completingCell(board entity.Board, availableCells []int, mark entity.Cell) (int, bool) {
	for _, cell := range availableCells {
		board[cell] = mark
		_, won := board.CheckWin(mark)
		board[cell] = entity.EmptyCell

		if won {
			return cell, true
		}
	}

	return entity.NoMove, false
}
