package grid

import (
	"errors"
	"fmt"
	"iter"
)

var ErrOutOfRange = errors.New("row or column out of range")

// Grid is a square container of size*size values stored in row-major order.
type Grid[T any] struct {
	data []T
	size int
}

// New returns a size x size grid of zero values. It panics if size is
// negative.
func New[T any](size int) *Grid[T] {
	if size < 0 {
		panic(fmt.Sprintf("grid: negative size %d", size))
	}
	return &Grid[T]{
		data: make([]T, size*size),
		size: size,
	}
}

// Filled returns a size x size grid with every slot set to value.
func Filled[T any](size int, value T) *Grid[T] {
	g := New[T](size)
	for i := range g.data {
		g.data[i] = value
	}
	return g
}

func (g *Grid[T]) Size() int {
	return g.size
}

func (g *Grid[T]) InBounds(row, column int) bool {
	return 0 <= row && row < g.size && 0 <= column && column < g.size
}

func (g *Grid[T]) check(row, column int) error {
	if !g.InBounds(row, column) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d grid",
			ErrOutOfRange, row, column, g.size, g.size,
		)
	}
	return nil
}

func (g *Grid[T]) Get(row, column int) (T, error) {
	if err := g.check(row, column); err != nil {
		var zero T
		return zero, err
	}
	return g.data[row*g.size+column], nil
}

func (g *Grid[T]) Set(row, column int, value T) error {
	if err := g.check(row, column); err != nil {
		return err
	}
	g.data[row*g.size+column] = value
	return nil
}

// Cell returns a handle to the slot at (row, column).
func (g *Grid[T]) Cell(row, column int) (Cell[T], error) {
	if err := g.check(row, column); err != nil {
		return Cell[T]{}, err
	}
	return Cell[T]{row: row, column: column, grid: g}, nil
}

// MustCell is like Cell but panics if (row, column) is out of range. It is
// meant for coordinates taken from another handle of a same-size grid.
func (g *Grid[T]) MustCell(row, column int) Cell[T] {
	c, err := g.Cell(row, column)
	if err != nil {
		panic(err)
	}
	return c
}

// Values yields every value in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Cells yields a handle for every slot in row-major order.
func (g *Grid[T]) Cells() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for i := range g.data {
			if !yield(g.cellAt(i)) {
				return
			}
		}
	}
}

// All yields every handle together with its value in row-major order.
func (g *Grid[T]) All() iter.Seq2[Cell[T], T] {
	return func(yield func(Cell[T], T) bool) {
		for i, v := range g.data {
			if !yield(g.cellAt(i), v) {
				return
			}
		}
	}
}

func (g *Grid[T]) cellAt(i int) Cell[T] {
	return Cell[T]{row: i / g.size, column: i % g.size, grid: g}
}

// Clone returns an independent copy of g. Values are copied element-wise.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{data: data, size: g.size}
}

func Clone[T any](g *Grid[T]) *Grid[T] {
	return g.Clone()
}
