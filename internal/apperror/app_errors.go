package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove = errors.New("invalid move")

	ErrCellOccupied     = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrInvalidCell      = fmt.Errorf("%w: invalid cell index", ErrInvalidMove)
	ErrInvalidMark      = fmt.Errorf("%w: mark must be player or computer", ErrInvalidMove)
	ErrNoAvailableMoves = errors.New("no available moves")
)
