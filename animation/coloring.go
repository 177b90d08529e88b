package animation

import (
	"context"
	"fmt"
	"sync"

	"FractalRenderer/fractal"

	"golang.org/x/sync/errgroup"
)

const (
	// ColorShared equalizes every frame against one distribution built from all frames, so the
	// brightness of the sequence does not flicker.
	ColorShared Coloring = iota
	// ColorIndependent equalizes each frame against its own histogram.
	ColorIndependent
	// ColorLinear maps iteration counts straight onto the gradient.
	ColorLinear
)

type Coloring int

func (c Coloring) String() string {
	names := []string{
		"shared", "independent", "linear",
	}
	if c < 0 || int(c) >= len(names) {
		return fmt.Sprintf("Coloring(%d)", int(c))
	}
	return names[c]
}

func ParseColoring(value string) (Coloring, error) {
	switch value {
	case "shared":
		return ColorShared, nil
	case "independent":
		return ColorIndependent, nil
	case "linear":
		return ColorLinear, nil
	}
	return ColorShared, fmt.Errorf("unknown coloring %q", value)
}

// Positions returns, for every frame, the gradient position of each iteration value. Frames colored with
// a shared or linear scheme all get the same slice.
func (s *Scheduler) Positions(ctx context.Context, frames []Frame, coloring Coloring) ([][]float64, error) {
	if coloring < ColorShared || coloring > ColorLinear {
		return nil, fmt.Errorf("unknown coloring %s", coloring)
	}
	positions := make([][]float64, len(frames))
	if len(frames) == 0 {
		return positions, nil
	}
	maxIterations := frames[0].Grid.MaxIterations

	switch coloring {
	case ColorIndependent:
		for i, frame := range frames {
			positions[i] = frame.Histogram.Cumulative().Positions()
		}
	case ColorLinear:
		linear := fractal.LinearPositions(maxIterations)
		for i := range positions {
			positions[i] = linear
		}
	case ColorShared:
		weights, err := s.contrastWeights(ctx, frames)
		if err != nil {
			return nil, err
		}
		cumulative := weights.Cumulative()
		shared := cumulative.Positions()
		if cumulative.Total() == 0 {
			// Flat frames have no contrast to weigh, fall back to plain frequencies
			parts := make([]fractal.Histogram, len(frames))
			for i, frame := range frames {
				parts[i] = frame.Histogram
			}
			shared = fractal.MergeHistograms(parts...).Cumulative().Positions()
		}
		for i := range positions {
			positions[i] = shared
		}
	}
	return positions, nil
}

// contrastWeights scores every iteration value by how much it differs from its surroundings, summed over
// all frames. A pixel adds the absolute iteration difference to each of its eight neighbours to the
// bucket of its own iteration value; interior pixels add nothing.
func (s *Scheduler) contrastWeights(ctx context.Context, frames []Frame) (fractal.Histogram, error) {
	maxIterations := frames[0].Grid.MaxIterations
	shared := fractal.NewHistogram(maxIterations)
	var mutex sync.Mutex

	for _, frame := range frames {
		if frame.Grid.MaxIterations != maxIterations {
			return nil, fmt.Errorf("frame %d was computed with %d iterations, expected %d", frame.Index, frame.Grid.MaxIterations, maxIterations)
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.rasterizer.Workers())
	for _, frame := range frames {
		frame := frame
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			local := neighbourContrast(frame.Grid)

			mutex.Lock()
			defer mutex.Unlock()
			for i, w := range local {
				shared[i] += w
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return shared, nil
}

func neighbourContrast(grid *fractal.Grid) fractal.Histogram {
	weights := fractal.NewHistogram(grid.MaxIterations)
	for y := 0; y < grid.Height; y++ {
		for x, iteration := range grid.Row(y) {
			if grid.Interior(iteration) {
				continue
			}
			var score uint64
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= grid.Height {
					continue
				}
				row := grid.Row(ny)
				for dx := -1; dx <= 1; dx++ {
					nx := x + dx
					if (dx == 0 && dy == 0) || nx < 0 || nx >= grid.Width {
						continue
					}
					if row[nx] > iteration {
						score += uint64(row[nx] - iteration)
					} else {
						score += uint64(iteration - row[nx])
					}
				}
			}
			weights[iteration] += score
		}
	}
	return weights
}
