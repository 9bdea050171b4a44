package grid

import "fmt"

// Cell is a handle to one slot of a Grid. It borrows the grid and is only
// meaningful while that grid is in use.
//
// Handles come from [Grid.Cell], [Grid.MustCell], [Grid.Cells], [Grid.All]
// or [Cell.Neighbors]. The zero Cell is bound to no grid: Value, SetValue
// and Neighbors panic on it.
type Cell[T any] struct {
	row, column int
	grid        *Grid[T]
}

func (c Cell[T]) Row() int {
	return c.row
}

func (c Cell[T]) Column() int {
	return c.column
}

func (c Cell[T]) Value() T {
	return c.grid.data[c.index()]
}

func (c Cell[T]) SetValue(value T) {
	c.grid.data[c.index()] = value
}

func (c Cell[T]) index() int {
	return c.row*c.grid.size + c.column
}

// Neighbors returns the handles of the Moore neighbourhood of c clipped to
// the grid, in row-major order, excluding c itself.
func (c Cell[T]) Neighbors() []Cell[T] {
	size := c.grid.size
	res := make([]Cell[T], 0, 8)
	for r := max(c.row-1, 0); r <= min(c.row+1, size-1); r++ {
		for col := max(c.column-1, 0); col <= min(c.column+1, size-1); col++ {
			if r != c.row || col != c.column {
				res = append(res, Cell[T]{row: r, column: col, grid: c.grid})
			}
		}
	}
	return res
}

// Cell implements [fmt.Stringer]
func (c Cell[T]) String() string {
	return fmt.Sprintf("(%d:%d)", c.row, c.column)
}
