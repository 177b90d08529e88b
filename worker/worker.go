package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"FractalRenderer/fractal"
	"FractalRenderer/misc"
	"FractalRenderer/progress"
	"FractalRenderer/task"

	"github.com/BrugadaSyndrome/bslogger"
)

var ErrEvaluatorFault = errors.New("evaluator fault")

// Worker computes rows pulled from a shared queue. It counts the rows of the image it is working on in a
// private histogram, so the hot loop never touches memory another worker writes, and hands the counts to
// the shared totals when it moves on to another image or stops.
type Worker struct {
	current        int
	evaluator      fractal.Evaluator
	histogram      fractal.Histogram
	id             int
	logger         bslogger.Logger
	maxIterations  uint
	observer       progress.Observer
	tasksCompleted int
	totals         *Totals
}

func NewWorker(id int, evaluator fractal.Evaluator, maxIterations uint, totals *Totals, observer progress.Observer) *Worker {
	if observer == nil {
		observer = progress.Nop{}
	}
	return &Worker{
		current:       -1,
		evaluator:     evaluator,
		id:            id,
		logger:        misc.NewLogger(fmt.Sprintf("Worker %d", id)),
		maxIterations: maxIterations,
		observer:      observer,
		totals:        totals,
	}
}

// ProcessTasks pulls tasks until it receives a nil task, its stop marker, or ctx is cancelled. The queue
// must carry exactly one nil per worker.
func (w *Worker) ProcessTasks(ctx context.Context, tasks <-chan *task.Task) error {
	w.logger.Debug("Processing tasks")
	startTime := time.Now()

	for {
		var taskTodo *task.Task
		select {
		case <-ctx.Done():
			return ctx.Err()
		case taskTodo = <-tasks:
		}
		if taskTodo == nil {
			break
		}

		if err := w.process(taskTodo); err != nil {
			w.logger.Errorf("Unable to process task %s: %s", taskTodo.String(), err)
			return err
		}
		w.tasksCompleted++
		w.observer.RowCompleted(taskTodo.ImageNumber, taskTodo.Row)
	}
	w.flush()

	w.logger.Debugf("Processed %d tasks in %s", w.tasksCompleted, time.Since(startTime))
	return nil
}

// flush hands the counts of the current image to the totals and clears the private histogram for reuse.
func (w *Worker) flush() {
	if w.current < 0 {
		return
	}
	w.totals.Add(w.current, w.histogram)
	clear(w.histogram)
	w.current = -1
}

func (w *Worker) process(taskTodo *task.Task) (err error) {
	// A panicking evaluator must not take the process down with it, the render is aborted instead
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: worker %d, row %d: %v", ErrEvaluatorFault, w.id, taskTodo.Row, r)
		}
	}()

	if taskTodo.ImageNumber < 0 || taskTodo.ImageNumber >= w.totals.Images() {
		return fmt.Errorf("task %d belongs to unknown image %d", taskTodo.ID, taskTodo.ImageNumber)
	}
	if taskTodo.ImageNumber != w.current {
		w.flush()
		if w.histogram == nil {
			w.histogram = fractal.NewHistogram(w.maxIterations)
		}
		w.current = taskTodo.ImageNumber
	}

	for {
		coordinate, ok := taskTodo.GetNextTask()
		if !ok {
			break
		}

		iteration := w.evaluator.Escape(coordinate.X, coordinate.Y, w.maxIterations, taskTodo.Time)
		if iteration > w.maxIterations {
			return fmt.Errorf("%w: %d iterations at (%g, %g) exceeds the cap of %d",
				ErrEvaluatorFault, iteration, coordinate.X, coordinate.Y, w.maxIterations)
		}
		taskTodo.AddResult(iteration)
		w.histogram.Record(iteration)
	}
	return nil
}

func (w *Worker) TasksCompleted() int {
	return w.tasksCompleted
}
