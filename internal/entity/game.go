package entity

import (
	"fmt"

	"github.com/rocketscienceinc/galactic-tictactoe/internal/apperror"
)

// Cell is the occupancy of a single board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerMark
	ComputerMark
)

const BoardSize = 9

// CenterCell is the middle square of the board.
const CenterCell = 4

// CornerCells are the four corner squares in ascending order.
var CornerCells = [4]int{0, 2, 6, 8}

// WinLine is a row, column or diagonal of three board indices.
type WinLine [3]int

// WinCombos lists every line in the order they are checked:
// rows top-to-bottom, columns left-to-right, then both diagonals.
var WinCombos = [8]WinLine{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (c Cell) String() string {
	switch c {
	case PlayerMark:
		return "X"
	case ComputerMark:
		return "O"
	default:
		return ""
	}
}

func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Opponent returns the other mark. EmptyCell has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerMark:
		return ComputerMark
	case ComputerMark:
		return PlayerMark
	default:
		return EmptyCell
	}
}

// Board is a 3x3 grid stored row-major: row = index/3, col = index%3.
type Board [BoardSize]Cell

func (that *Board) Place(index int, mark Cell) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if mark != PlayerMark && mark != ComputerMark {
		return apperror.ErrInvalidMark
	}

	if that[index] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	that[index] = mark

	return nil
}

// IsEmptyAt reports whether index is on the board and unoccupied.
func (that Board) IsEmptyAt(index int) bool {
	return index >= 0 && index < BoardSize && that[index] == EmptyCell
}

// CheckWin returns the first line in WinCombos fully held by mark.
func (that Board) CheckWin(mark Cell) (WinLine, bool) {
	if mark == EmptyCell {
		return WinLine{}, false
	}

	for _, line := range WinCombos {
		if that[line[0]] == mark && that[line[1]] == mark && that[line[2]] == mark {
			return line, true
		}
	}

	return WinLine{}, false
}

// CheckDraw reports whether every cell is occupied. Callers check for a win first.
func (that Board) CheckDraw() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}
