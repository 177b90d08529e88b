package fractal

// Grid holds the iteration count of every pixel of one image. Each row is its own slice so rows can be
// filled by different goroutines without any locking.
type Grid struct {
	Width         int
	Height        int
	MaxIterations uint

	rows [][]uint
}

func NewGrid(v Viewport) *Grid {
	g := &Grid{
		Width:         v.Width,
		Height:        v.Height,
		MaxIterations: v.MaxIterations,
		rows:          make([][]uint, v.Height),
	}
	for r := range g.rows {
		g.rows[r] = make([]uint, v.Width)
	}
	return g
}

// Row returns the slot of row r. Writes through it are visible in the grid.
func (g *Grid) Row(r int) []uint {
	return g.rows[r]
}

func (g *Grid) At(column, row int) uint {
	return g.rows[row][column]
}

func (g *Grid) Set(column, row int, iteration uint) {
	g.rows[row][column] = iteration
}

// Interior reports whether the iteration count marks a point that never escaped.
func (g *Grid) Interior(iteration uint) bool {
	return iteration >= g.MaxIterations
}

// Histogram counts escaped pixels per iteration value. Index MaxIterations is kept so the cumulative
// table spans 0..MaxIterations, but interior pixels are never counted.
type Histogram []uint64

func NewHistogram(maxIterations uint) Histogram {
	return make(Histogram, maxIterations+1)
}

func (h Histogram) Record(iteration uint) {
	if int(iteration) < len(h)-1 {
		h[iteration]++
	}
}

// MergeHistograms sums histograms entrywise. Nil histograms are skipped; the result is as long as the
// longest input, or nil when there is nothing to merge.
func MergeHistograms(histograms ...Histogram) Histogram {
	var size int
	for _, h := range histograms {
		size = max(size, len(h))
	}
	if size == 0 {
		return nil
	}
	merged := make(Histogram, size)
	for _, h := range histograms {
		for i, count := range h {
			merged[i] += count
		}
	}
	return merged
}

func (h Histogram) Cumulative() Cumulative {
	cumulative := make(Cumulative, len(h))
	var total uint64
	for i, count := range h {
		total += count
		cumulative[i] = total
	}
	return cumulative
}

// Cumulative is a running total: entry k is the number of counted pixels at iteration k or below.
type Cumulative []uint64

func (c Cumulative) Total() uint64 {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1]
}

// Positions maps every iteration value to its rank in the distribution, a gradient position in [0, 1].
// Without any counted pixel every position is 0.
func (c Cumulative) Positions() []float64 {
	positions := make([]float64, len(c))
	total := c.Total()
	if total == 0 {
		return positions
	}
	for i, v := range c {
		positions[i] = float64(v) / float64(total)
	}
	return positions
}

// LinearPositions spreads the iteration values evenly over the gradient without looking at the image.
func LinearPositions(maxIterations uint) []float64 {
	positions := make([]float64, maxIterations+1)
	for i := range positions {
		positions[i] = float64(i) / float64(maxIterations)
	}
	return positions
}
