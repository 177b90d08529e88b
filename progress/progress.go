// Package progress lets long running renders report completed rows and frames without the render code
// knowing who listens.
package progress

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

// Observer is notified once per completed unit of work. Implementations must be safe for concurrent use;
// rows are reported from worker goroutines.
type Observer interface {
	RowCompleted(image int, row int)
	FrameCompleted(index int, t float64)
}

// Nop ignores every event.
type Nop struct{}

func (Nop) RowCompleted(int, int)       {}
func (Nop) FrameCompleted(int, float64) {}

// Reporter counts events and logs the totals on a heart beat.
type Reporter struct {
	frames      atomic.Uint64
	interval    time.Duration
	logger      bslogger.Logger
	rows        atomic.Uint64
	stop        chan struct{}
	totalFrames atomic.Uint64
	totalRows   atomic.Uint64
	wait        sync.WaitGroup
}

func NewReporter(logger bslogger.Logger, interval time.Duration) *Reporter {
	return &Reporter{
		interval: interval,
		logger:   logger,
	}
}

// Expect adds to the amount of work the heart beat reports against.
func (r *Reporter) Expect(rows uint64, frames uint64) {
	r.totalRows.Add(rows)
	r.totalFrames.Add(frames)
}

func (r *Reporter) RowCompleted(int, int) {
	r.rows.Add(1)
}

func (r *Reporter) FrameCompleted(index int, t float64) {
	r.frames.Add(1)
	r.logger.Debugf("Frame %d at t=%f done", index, t)
}

func (r *Reporter) Rows() uint64 {
	return r.rows.Load()
}

func (r *Reporter) Frames() uint64 {
	return r.frames.Load()
}

// Start runs the heart beat until Stop is called.
func (r *Reporter) Start() {
	r.stop = make(chan struct{})
	r.wait.Add(1)
	go r.tickers()
}

func (r *Reporter) Stop() {
	if r.stop == nil {
		return
	}
	close(r.stop)
	r.wait.Wait()
	r.stop = nil
	r.report()
}

func (r *Reporter) tickers() {
	defer r.wait.Done()
	heartBeat := time.NewTicker(r.interval)
	defer heartBeat.Stop()

	for {
		select {
		case <-heartBeat.C:
			r.logger.Debug("Heart beat ticker")
			r.report()
		case <-r.stop:
			return
		}
	}
}

func (r *Reporter) report() {
	r.logger.Infof("Rows [Completed: %d/%d] | Frames [Completed: %d/%d]",
		r.rows.Load(), r.totalRows.Load(), r.frames.Load(), r.totalFrames.Load())
}
