// Package rasterizer turns a viewport and an escape time formula into an image using a pool of workers.
//
// A render runs in three strictly ordered phases. Rows are queued as tasks and computed by the workers,
// each worker counting iteration values in a histogram of its own and adding it to the image's total when
// it moves on. Once every worker has stopped the totals are turned into a cumulative distribution. Finally
// every pixel is colored by its rank in that distribution, which spreads the gradient evenly whatever the
// iteration counts look like.
package rasterizer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"runtime"
	"time"

	"FractalRenderer/fractal"
	"FractalRenderer/misc"
	"FractalRenderer/palette"
	"FractalRenderer/progress"
	"FractalRenderer/task"
	"FractalRenderer/worker"

	"github.com/BrugadaSyndrome/bslogger"
	"golang.org/x/sync/errgroup"
)

type Rasterizer struct {
	logger   bslogger.Logger
	observer progress.Observer
	workers  int

	// InteriorColor is drawn for points that never escaped.
	InteriorColor color.RGBA
}

// New returns a rasterizer running the given number of workers; zero or less uses one per CPU.
func New(workers int, observer progress.Observer) *Rasterizer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if observer == nil {
		observer = progress.Nop{}
	}
	return &Rasterizer{
		logger:        misc.NewLogger("Rasterizer"),
		observer:      observer,
		workers:       workers,
		InteriorColor: palette.Background,
	}
}

func (r *Rasterizer) Workers() int {
	return r.workers
}

// Render computes, equalizes and colors one image at time t.
func (r *Rasterizer) Render(ctx context.Context, viewport fractal.Viewport, scheme *palette.ColorScheme, evaluator fractal.Evaluator, t float64) (*image.RGBA, error) {
	grid, histogram, err := r.Compute(ctx, viewport, evaluator, t)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("Coloring image")
	return r.Colorize(grid, histogram.Cumulative().Positions(), scheme), nil
}

// Compute fills one iteration grid and returns it with the merged histogram of its escaped pixels.
func (r *Rasterizer) Compute(ctx context.Context, viewport fractal.Viewport, evaluator fractal.Evaluator, t float64) (*fractal.Grid, fractal.Histogram, error) {
	grids, histograms, err := r.ComputeBatch(ctx, viewport, evaluator, []float64{t})
	if err != nil {
		return nil, nil, err
	}
	return grids[0], histograms[0], nil
}

// ComputeBatch fills one grid per time value. The rows of every image share the same queue, so a batch
// keeps all workers busy even when the images are small.
func (r *Rasterizer) ComputeBatch(ctx context.Context, viewport fractal.Viewport, evaluator fractal.Evaluator, times []float64) ([]*fractal.Grid, []fractal.Histogram, error) {
	if err := viewport.Validate(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	normalized := make([]float64, len(times))
	for i, t := range times {
		n, err := fractal.NormalizeTime(t)
		if err != nil {
			return nil, nil, err
		}
		normalized[i] = n
	}

	grids := make([]*fractal.Grid, len(times))
	for i := range grids {
		grids[i] = fractal.NewGrid(viewport)
	}

	r.logger.Debugf("Calculating %d image(s) of %s with %d workers", len(times), viewport.String(), r.workers)
	startTime := time.Now()

	queue := make(chan *task.Task, r.workers)
	totals := worker.NewTotals(len(times), viewport.MaxIterations)
	group, groupCtx := errgroup.WithContext(ctx)
	for i := 0; i < r.workers; i++ {
		w := worker.NewWorker(i, evaluator, viewport.MaxIterations, totals, r.observer)
		group.Go(func() error {
			return w.ProcessTasks(groupCtx, queue)
		})
	}
	group.Go(func() error {
		return r.generateTasks(groupCtx, viewport, grids, normalized, queue)
	})

	// Every worker has stopped writing once Wait returns
	if err := group.Wait(); err != nil {
		return nil, nil, fmt.Errorf("computing %d image(s): %w", len(times), err)
	}
	r.logger.Debugf("Calculated %d image(s) in %s", len(times), time.Since(startTime))

	histograms := totals.Histograms()
	return grids, histograms, nil
}

// generateTasks queues one task per row of every image, then one stop marker per worker.
func (r *Rasterizer) generateTasks(ctx context.Context, viewport fractal.Viewport, grids []*fractal.Grid, times []float64, queue chan<- *task.Task) error {
	var id uint
	for index, t := range times {
		rows := viewport.Rows()
		for {
			row, pixels, ok := rows.Next()
			if !ok {
				break
			}
			taskTodo := task.NewTask(id, index, row, t, grids[index].Row(row))
			for {
				x, y, column, ok := pixels.Next()
				if !ok {
					break
				}
				taskTodo.AddTaskForPixel(task.Coordinate{X: x, Y: y, Column: column, Row: row})
			}

			select {
			case queue <- taskTodo:
			case <-ctx.Done():
				return ctx.Err()
			}
			id++
		}
	}

	for i := 0; i < r.workers; i++ {
		select {
		case queue <- nil:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.logger.Debugf("Done generating %d tasks", id)
	return nil
}

// Colorize paints a grid. positions gives the gradient position of every iteration value; interior
// points get InteriorColor.
func (r *Rasterizer) Colorize(grid *fractal.Grid, positions []float64, scheme *palette.ColorScheme) *image.RGBA {
	colors := make([]color.RGBA, len(positions))
	for i, p := range positions {
		colors[i] = scheme.Lookup(p)
	}

	img := image.NewRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x, iteration := range grid.Row(y) {
			if grid.Interior(iteration) {
				img.SetRGBA(x, y, r.InteriorColor)
				continue
			}
			img.SetRGBA(x, y, colors[iteration])
		}
	}
	return img
}
