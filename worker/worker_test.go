package worker

import (
	"context"
	"errors"
	"testing"

	"FractalRenderer/fractal"
	"FractalRenderer/task"
)

func rowTask(id uint, image int, width int, iterations []uint) *task.Task {
	tk := task.NewTask(id, image, 0, 0, iterations)
	for c := 0; c < width; c++ {
		tk.AddTaskForPixel(task.Coordinate{X: float64(c), Column: c})
	}
	return tk
}

func TestProcessTasksFillsRowsAndHistogram(t *testing.T) {
	evaluator := fractal.Static(func(x, y float64, maxIterations uint) uint {
		return uint(x)
	})
	totals := NewTotals(2, 3)
	w := NewWorker(0, evaluator, 3, totals, nil)

	rowA := make([]uint, 4)
	rowB := make([]uint, 4)
	tasks := make(chan *task.Task, 3)
	tasks <- rowTask(0, 0, 4, rowA)
	tasks <- rowTask(1, 1, 4, rowB)
	tasks <- nil

	if err := w.ProcessTasks(context.Background(), tasks); err != nil {
		t.Fatal(err)
	}
	for c := 0; c < 4; c++ {
		if rowA[c] != uint(c) || rowB[c] != uint(c) {
			t.Fatalf("column %d: got %d and %d", c, rowA[c], rowB[c])
		}
	}

	// 3 is the cap and is not counted
	want := fractal.Histogram{1, 1, 1, 0}
	for image, h := range totals.Histograms() {
		for i := range want {
			if h[i] != want[i] {
				t.Errorf("image %d: histogram[%d] = %d, want %d", image, i, h[i], want[i])
			}
		}
	}
	if w.TasksCompleted() != 2 {
		t.Errorf("completed %d tasks, want 2", w.TasksCompleted())
	}
}

func TestProcessTasksReportsFaults(t *testing.T) {
	tests := []struct {
		name      string
		evaluator fractal.Evaluator
	}{
		{
			name: "panic",
			evaluator: fractal.Static(func(x, y float64, maxIterations uint) uint {
				panic("boom")
			}),
		},
		{
			name: "out of range",
			evaluator: fractal.Static(func(x, y float64, maxIterations uint) uint {
				return maxIterations + 1
			}),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorker(1, tc.evaluator, 10, NewTotals(1, 10), nil)
			tasks := make(chan *task.Task, 2)
			tasks <- rowTask(0, 0, 2, make([]uint, 2))
			tasks <- nil
			err := w.ProcessTasks(context.Background(), tasks)
			if !errors.Is(err, ErrEvaluatorFault) {
				t.Errorf("got %v, want ErrEvaluatorFault", err)
			}
		})
	}
}

func TestProcessTasksStopsOnCancel(t *testing.T) {
	w := NewWorker(0, fractal.Mandelbrot(4), 10, NewTotals(1, 10), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.ProcessTasks(ctx, make(chan *task.Task)); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestWorkersShareTotals(t *testing.T) {
	evaluator := fractal.Static(func(x, y float64, maxIterations uint) uint {
		return uint(x)
	})
	totals := NewTotals(3, 4)
	first := NewWorker(0, evaluator, 4, totals, nil)
	second := NewWorker(1, evaluator, 4, totals, nil)

	// The first worker moves between images twice, the second only sees image 1
	firstTasks := make(chan *task.Task, 4)
	firstTasks <- rowTask(0, 0, 3, make([]uint, 3))
	firstTasks <- rowTask(1, 1, 3, make([]uint, 3))
	firstTasks <- rowTask(2, 0, 2, make([]uint, 2))
	firstTasks <- nil
	secondTasks := make(chan *task.Task, 2)
	secondTasks <- rowTask(3, 1, 4, make([]uint, 4))
	secondTasks <- nil

	if err := first.ProcessTasks(context.Background(), firstTasks); err != nil {
		t.Fatal(err)
	}
	if err := second.ProcessTasks(context.Background(), secondTasks); err != nil {
		t.Fatal(err)
	}

	want := []fractal.Histogram{
		{2, 2, 1, 0, 0},
		{2, 2, 2, 1, 0},
		{0, 0, 0, 0, 0},
	}
	got := totals.Histograms()
	for image := range want {
		for i := range want[image] {
			if got[image][i] != want[image][i] {
				t.Errorf("image %d: histogram[%d] = %d, want %d", image, i, got[image][i], want[image][i])
			}
		}
	}
}
