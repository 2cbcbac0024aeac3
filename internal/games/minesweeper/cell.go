package minesweeper

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Cell is a (row, col) grid coordinate.
type Cell struct {
	Row int
	Col int
}

// String formats the cell as (row,col).
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// neighborOffsets is the Moore neighbourhood, excluding the cell itself.
var neighborOffsets = [8]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func compareCells(a, b Cell) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}

// sortedCells returns the members of s in row-major order.
// The result is never nil so snapshots compare equal regardless of history.
func sortedCells(s mapset.Set[Cell]) []Cell {
	cells := make([]Cell, 0, s.Size())
	s.Each(func(c Cell) {
		cells = append(cells, c)
	})
	slices.SortFunc(cells, compareCells)
	return cells
}
