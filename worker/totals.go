package worker

import (
	"sync"

	"FractalRenderer/fractal"
)

// Totals collects the histograms of every image of a batch as workers finish with them. Each worker
// holds at most one histogram of its own at a time, whatever the size of the batch.
type Totals struct {
	histograms    []fractal.Histogram
	maxIterations uint
	mutex         sync.Mutex
}

func NewTotals(images int, maxIterations uint) *Totals {
	return &Totals{
		histograms:    make([]fractal.Histogram, images),
		maxIterations: maxIterations,
	}
}

func (t *Totals) Images() int {
	return len(t.histograms)
}

// Add sums h into the histogram of image.
func (t *Totals) Add(image int, h fractal.Histogram) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.histograms[image] == nil {
		t.histograms[image] = fractal.NewHistogram(t.maxIterations)
	}
	for i, count := range h {
		t.histograms[image][i] += count
	}
}

// Histograms returns the histogram of every image. Images no worker reported get an empty one. Only call
// it once every worker has stopped.
func (t *Totals) Histograms() []fractal.Histogram {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	for i, h := range t.histograms {
		if h == nil {
			t.histograms[i] = fractal.NewHistogram(t.maxIterations)
		}
	}
	return t.histograms
}
