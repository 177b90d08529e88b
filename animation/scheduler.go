// Package animation renders time sweeps of a formula, either at evenly spaced times or adaptively, where
// a fixed frame budget is spent on the parts of the sweep that change the most.
package animation

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"FractalRenderer/fractal"
	"FractalRenderer/misc"
	"FractalRenderer/progress"
	"FractalRenderer/rasterizer"

	"github.com/BrugadaSyndrome/bslogger"
)

var (
	ErrFrameBudget = errors.New("frame budget too small")
	ErrNoSpan      = errors.New("no span left to split")
)

// anchors are rendered before any subdivision; the adaptive budget must cover them.
var anchors = []float64{0, 0.25, 0.5, 0.75}

const (
	Uniform Mode = iota
	Adaptive
)

type Mode int

func (m Mode) String() string {
	names := []string{
		"uniform", "adaptive",
	}
	if m < 0 || int(m) >= len(names) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return names[m]
}

func ParseMode(value string) (Mode, error) {
	switch value {
	case "uniform":
		return Uniform, nil
	case "adaptive", "vfr":
		return Adaptive, nil
	}
	return Uniform, fmt.Errorf("unknown animation mode %q", value)
}

type Scheduler struct {
	logger     bslogger.Logger
	observer   progress.Observer
	rasterizer *rasterizer.Rasterizer
}

func NewScheduler(r *rasterizer.Rasterizer, observer progress.Observer) *Scheduler {
	if observer == nil {
		observer = progress.Nop{}
	}
	return &Scheduler{
		logger:     misc.NewLogger("Scheduler"),
		observer:   observer,
		rasterizer: r,
	}
}

func (s *Scheduler) Schedule(ctx context.Context, mode Mode, viewport fractal.Viewport, evaluator fractal.Evaluator, frameCount int) ([]Frame, error) {
	switch mode {
	case Uniform:
		return s.Uniform(ctx, viewport, evaluator, frameCount)
	case Adaptive:
		return s.Adaptive(ctx, viewport, evaluator, frameCount)
	}
	return nil, fmt.Errorf("unknown animation mode %s", mode)
}

// Uniform renders frameCount frames at t = i/frameCount. Indices follow generation order.
func (s *Scheduler) Uniform(ctx context.Context, viewport fractal.Viewport, evaluator fractal.Evaluator, frameCount int) ([]Frame, error) {
	if frameCount < 1 {
		return nil, fmt.Errorf("%w: %d frames requested", ErrFrameBudget, frameCount)
	}

	times := make([]float64, frameCount)
	for i := range times {
		times[i] = float64(i) / float64(frameCount)
	}
	s.logger.Infof("Rendering %d evenly spaced frames", frameCount)

	grids, histograms, err := s.rasterizer.ComputeBatch(ctx, viewport, evaluator, times)
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, frameCount)
	for i := range frames {
		frames[i] = Frame{Grid: grids[i], Histogram: histograms[i], Index: i, T: times[i]}
		s.observer.FrameCompleted(i, times[i])
	}
	return frames, nil
}

// Adaptive spends frameCount frames on the cycle [0, 1). It starts from four evenly spaced anchors and
// then keeps bisecting whichever span has the largest difference between its end frames. The returned
// frames are sorted by time and indexed by that order.
func (s *Scheduler) Adaptive(ctx context.Context, viewport fractal.Viewport, evaluator fractal.Evaluator, frameCount int) ([]Frame, error) {
	if frameCount < len(anchors) {
		return nil, fmt.Errorf("%w: %d frames requested, adaptive mode needs at least %d", ErrFrameBudget, frameCount, len(anchors))
	}
	s.logger.Infof("Rendering %d adaptively spaced frames", frameCount)

	grids, histograms, err := s.rasterizer.ComputeBatch(ctx, viewport, evaluator, anchors)
	if err != nil {
		return nil, err
	}
	frames := make([]Frame, 0, frameCount)
	for i, t := range anchors {
		frames = append(frames, Frame{Grid: grids[i], Histogram: histograms[i], T: t})
		s.observer.FrameCompleted(i, t)
	}

	queue := &intervalQueue{}
	score := func(a, b int) Interval {
		return Interval{
			A:          a,
			B:          b,
			Difference: Difference(frames[a].Grid, frames[b].Grid),
			Width:      Width(frames[a].T, frames[b].T),
		}
	}
	for i := range frames {
		queue.push(score(i, (i+1)%len(frames)))
	}

	for len(frames) < frameCount {
		if queue.Len() == 0 {
			return nil, fmt.Errorf("%w after %d of %d frames", ErrNoSpan, len(frames), frameCount)
		}
		interval := queue.pop()
		t, err := fractal.NormalizeTime(Midpoint(frames[interval.A].T, frames[interval.B].T))
		if err != nil {
			return nil, err
		}
		// The span is too narrow to hold another distinct time
		if t == frames[interval.A].T || t == frames[interval.B].T {
			s.logger.Debugf("Span [%g, %g] cannot be split further", frames[interval.A].T, frames[interval.B].T)
			continue
		}

		grid, histogram, err := s.rasterizer.Compute(ctx, viewport, evaluator, t)
		if err != nil {
			return nil, fmt.Errorf("frame %d at t=%g: %w", len(frames), t, err)
		}
		mid := len(frames)
		frames = append(frames, Frame{Grid: grid, Histogram: histogram, T: t})
		s.logger.Debugf("Split [%g, %g] (difference %d) at %g", frames[interval.A].T, frames[interval.B].T, interval.Difference, t)
		s.observer.FrameCompleted(mid, t)

		queue.push(score(interval.A, mid))
		queue.push(score(mid, interval.B))
	}

	sort.SliceStable(frames, func(i, j int) bool {
		return frames[i].T < frames[j].T
	})
	for i := range frames {
		frames[i].Index = i
	}
	return frames, nil
}
