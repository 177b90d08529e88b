package progress

import (
	"sync"
	"testing"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

func TestReporterCountsConcurrently(t *testing.T) {
	r := NewReporter(bslogger.NewLogger("ReporterTest", bslogger.Minimal, nil), time.Hour)
	r.Expect(800, 2)
	r.Start()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := 0; row < 100; row++ {
				r.RowCompleted(0, row)
			}
		}()
	}
	wg.Wait()
	r.FrameCompleted(0, 0)
	r.FrameCompleted(1, 0.5)
	r.Stop()
	r.Stop()

	if r.Rows() != 800 {
		t.Errorf("rows %d, want 800", r.Rows())
	}
	if r.Frames() != 2 {
		t.Errorf("frames %d, want 2", r.Frames())
	}
}

func TestNopIsAnObserver(t *testing.T) {
	var o Observer = Nop{}
	o.RowCompleted(0, 0)
	o.FrameCompleted(0, 0)
}
