package fractal

import "FractalRenderer/task"

// PointIterator walks every pixel of a viewport in row-major order. Once exhausted it rewinds itself, so
// the next call to Next starts a new pass.
type PointIterator struct {
	m      mapping
	column int
	row    int
}

func (v Viewport) Points() *PointIterator {
	return &PointIterator{m: v.mapping()}
}

func (it *PointIterator) Next() (task.Coordinate, bool) {
	if it.m.width <= 0 {
		return task.Coordinate{}, false
	}
	if it.column >= it.m.width {
		it.column = 0
		it.row++
	}
	if it.row >= it.m.height {
		it.Reset()
		return task.Coordinate{}, false
	}

	c := task.Coordinate{
		X:      it.m.x(it.column),
		Y:      it.m.y(it.row),
		Column: it.column,
		Row:    it.row,
	}
	it.column++
	return c, true
}

func (it *PointIterator) Reset() {
	it.column = 0
	it.row = 0
}

// RowIterator hands out one RowPixelIterator per image row, top to bottom.
type RowIterator struct {
	m   mapping
	row int
}

func (v Viewport) Rows() *RowIterator {
	return &RowIterator{m: v.mapping()}
}

func (it *RowIterator) Next() (int, *RowPixelIterator, bool) {
	if it.row >= it.m.height {
		it.Reset()
		return 0, nil, false
	}

	row := it.row
	pixels := &RowPixelIterator{m: it.m, row: row, y: it.m.y(row)}
	it.row++
	return row, pixels, true
}

func (it *RowIterator) Reset() {
	it.row = 0
}

// RowPixelIterator walks the pixels of a single row. The plane y value is fixed for the whole row.
type RowPixelIterator struct {
	m      mapping
	row    int
	column int
	y      float64
}

func (it *RowPixelIterator) Next() (x float64, y float64, column int, ok bool) {
	if it.column >= it.m.width {
		it.Reset()
		return 0, 0, 0, false
	}

	x, y, column = it.m.x(it.column), it.y, it.column
	it.column++
	return x, y, column, true
}

func (it *RowPixelIterator) Row() int {
	return it.row
}

func (it *RowPixelIterator) Reset() {
	it.column = 0
}
