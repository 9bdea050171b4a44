package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/grid"
)

// Reveal opens the cell at (row, column). The first call lays out the mines
// and never hits one. Opening a cell with no mined neighbours also opens the
// whole surrounding empty region and its numbered border.
//
// Reveal fails with [ErrOutOfRange] for coordinates outside the board and
// with [ErrGameLost] once a mine has gone off. Nothing changes on failure.
func (b *Board) Reveal(row, column int) (Result, error) {
	counts, err := b.neighboringBombs.Cell(row, column)
	if err != nil {
		return Safe, err
	}

	if b.boom {
		return Safe, fmt.Errorf("reveal (%d, %d): %w", row, column, ErrGameLost)
	}

	if !b.generated {
		b.generate(row, column)
	}

	if b.bombs.MustCell(row, column).Value() {
		b.displayed.MustCell(row, column).SetValue(Bomb)
		b.boom = true
		b.logger().WithFields(logrus.Fields{
			"row": row, "column": column,
		}).Debug("boom")
		return Exploded, nil
	}

	b.floodFill(counts)

	if b.IsWon() {
		b.logger().Debug("board cleared")
		return Won, nil
	}
	return Safe, nil
}

// floodFill reveals start and, while it keeps meeting cells with no mined
// neighbours, everything next to them. Each cell is visited at most once.
func (b *Board) floodFill(start grid.Cell[int]) {
	visited := make([]bool, b.size*b.size)
	index := func(c grid.Cell[int]) int {
		return c.Row()*b.size + c.Column()
	}

	stack := []grid.Cell[int]{start}
	visited[index(start)] = true

	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		shown := b.displayed.MustCell(cell.Row(), cell.Column())
		if shown.Value().Revealed() {
			continue
		}

		if n := cell.Value(); n > 0 {
			shown.SetValue(DisplayedCell(n))
			continue
		}

		shown.SetValue(Empty)
		for _, next := range cell.Neighbors() {
			if i := index(next); !visited[i] {
				visited[i] = true
				stack = append(stack, next)
			}
		}
	}
}
