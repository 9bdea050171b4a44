package config

import (
	"math/rand/v2"

	"github.com/vancomm/minesweeper/mines"
)

const (
	DefaultBoardSize  = 9
	DefaultBoardBombs = 10
)

// NewBoardParams reads BOARD_SIZE and BOARD_BOMBS. The result is validated
// the same way [mines.New] validates it.
func NewBoardParams() (mines.Params, error) {
	size, err := lookupInt("BOARD_SIZE", DefaultBoardSize)
	if err != nil {
		return mines.Params{}, err
	}

	bombs, err := lookupInt("BOARD_BOMBS", DefaultBoardBombs)
	if err != nil {
		return mines.Params{}, err
	}

	params := mines.Params{
		Size:       size,
		BombsCount: bombs,
	}
	if err := params.Validate(); err != nil {
		return mines.Params{}, err
	}

	return params, nil
}

func NewBoard(r *rand.Rand) (*mines.Board, error) {
	params, err := NewBoardParams()
	if err != nil {
		return nil, err
	}
	return mines.New(params, r)
}
