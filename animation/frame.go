package animation

import (
	"container/heap"

	"FractalRenderer/fractal"
)

// Frame is one rendered time sample. Index is its position in the written sequence.
type Frame struct {
	Grid      *fractal.Grid
	Histogram fractal.Histogram
	Index     int
	T         float64
}

// Difference is the L1 distance between two grids in iteration space. Grids of different sizes are
// compared over their common area.
func Difference(a, b *fractal.Grid) uint64 {
	height := min(a.Height, b.Height)
	width := min(a.Width, b.Width)

	var total uint64
	for y := 0; y < height; y++ {
		rowA, rowB := a.Row(y), b.Row(y)
		for x := 0; x < width; x++ {
			if rowA[x] > rowB[x] {
				total += uint64(rowA[x] - rowB[x])
			} else {
				total += uint64(rowB[x] - rowA[x])
			}
		}
	}
	return total
}

// Midpoint bisects the span from a to b. A span ending at 0 is the one that wraps around the end of the
// cycle, so its midpoint lies between a and 1.
func Midpoint(a, b float64) float64 {
	if b == 0 {
		return (a + 1) / 2
	}
	return (a + b) / 2
}

// Interval is a span between two frames of the arena, scored by how much the frames differ. Width is
// the length of the span in time.
type Interval struct {
	A          int
	B          int
	Difference uint64
	Width      float64
}

// Width is the length of the span from a to b, where a span ending at 0 wraps around to 1.
func Width(a, b float64) float64 {
	if b == 0 {
		return 1 - a
	}
	return b - a
}

// intervalQueue is a max-heap on Difference.
type intervalQueue []Interval

func (q intervalQueue) Len() int { return len(q) }

func (q intervalQueue) Less(i, j int) bool {
	if q[i].Difference != q[j].Difference {
		return q[i].Difference > q[j].Difference
	}
	// Equal scores split the widest span first so flat stretches are sampled evenly
	if q[i].Width != q[j].Width {
		return q[i].Width > q[j].Width
	}
	return q[i].A < q[j].A
}

func (q intervalQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *intervalQueue) Push(x any) { *q = append(*q, x.(Interval)) }

func (q *intervalQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

func (q *intervalQueue) push(interval Interval) {
	heap.Push(q, interval)
}

func (q *intervalQueue) pop() Interval {
	return heap.Pop(q).(Interval)
}
