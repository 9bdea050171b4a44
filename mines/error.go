package mines

import (
	"errors"

	"github.com/vancomm/minesweeper/grid"
)

var (
	// ErrConfiguration is returned by [New] for parameters no fair board
	// can be built from.
	ErrConfiguration = errors.New("invalid board configuration")

	// ErrOutOfRange is returned for coordinates outside the board.
	ErrOutOfRange = grid.ErrOutOfRange

	// ErrGameLost is returned by [Board.Reveal] once a mine has gone off.
	ErrGameLost = errors.New("the game is lost")
)
