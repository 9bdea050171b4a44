package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/grid"
)

// MaxSize is the largest supported board side.
const MaxSize = 1 << 12

type Params struct {
	Size       int `json:"size"`
	BombsCount int `json:"bombs_count"`
}

// Validate checks that the parameters describe a fair board: at most 80% of
// its cells may hold a mine.
func (p Params) Validate() error {
	if p.Size < 1 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrConfiguration, p.Size)
	}
	if p.Size > MaxSize {
		return fmt.Errorf("%w: size %d exceeds %d", ErrConfiguration, p.Size, MaxSize)
	}
	if p.BombsCount < 0 {
		return fmt.Errorf("%w: negative bombs count %d", ErrConfiguration, p.BombsCount)
	}
	if 5*p.BombsCount > 4*p.Size*p.Size {
		return fmt.Errorf(
			"%w: %d bombs cover more than 80%% of a %dx%d board",
			ErrConfiguration, p.BombsCount, p.Size, p.Size,
		)
	}
	return nil
}

// Board is a single game. Mines are laid out on the first reveal so that
// the first revealed cell is always safe.
//
// A Board is not safe for concurrent use.
type Board struct {
	size       int
	bombsCount int

	displayed        *grid.Grid[DisplayedCell]
	neighboringBombs *grid.Grid[int]
	bombs            *grid.Grid[bool]

	generated bool
	boom      bool

	rnd *rand.Rand
}

// New creates a board with every cell hidden. A nil r is replaced by a
// randomly seeded source.
func New(params Params, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = newRand()
	}
	b := &Board{
		size:             params.Size,
		bombsCount:       params.BombsCount,
		displayed:        grid.Filled(params.Size, Unknown),
		neighboringBombs: grid.Filled(params.Size, 0),
		bombs:            grid.Filled(params.Size, false),
		rnd:              r,
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) BombsCount() int {
	return b.bombsCount
}

func (b *Board) Params() Params {
	return Params{Size: b.size, BombsCount: b.bombsCount}
}

// Generated reports whether the mines have been laid out yet.
func (b *Board) Generated() bool {
	return b.generated
}

// Lost reports whether a mine has been revealed.
func (b *Board) Lost() bool {
	return b.boom
}

// IsWon reports whether every cell without a mine has been revealed.
func (b *Board) IsWon() bool {
	for c, mine := range b.bombs.All() {
		if !mine && !b.displayed.MustCell(c.Row(), c.Column()).Value().Revealed() {
			return false
		}
	}
	return true
}

// Entries returns a row-major snapshot of what the player sees.
func (b *Board) Entries() []Entry {
	entries := make([]Entry, 0, b.size*b.size)
	for c, v := range b.displayed.All() {
		entries = append(entries, Entry{Row: c.Row(), Column: c.Column(), Value: v})
	}
	return entries
}

// Displayed returns a copy of the player's view of the board.
func (b *Board) Displayed() *grid.Grid[DisplayedCell] {
	return b.displayed.Clone()
}

func (b *Board) logger() *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"size":  b.size,
		"bombs": b.bombsCount,
	})
}

// Board implements [fmt.Stringer]
func (b *Board) String() string {
	var sb strings.Builder
	row := make([]string, 0, b.size)
	for c, v := range b.displayed.All() {
		row = append(row, v.symbol())
		if c.Column() == b.size-1 {
			fmt.Fprintln(&sb, strings.Join(row, " "))
			row = row[:0]
		}
	}
	return sb.String()
}
