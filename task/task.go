package task

import (
	"fmt"
)

// Task is one row of one image. The iteration counts are written straight into Iterations, which is the
// row slot of the grid the task belongs to, so two tasks never share memory.
type Task struct {
	CurrentTask int
	ID          uint
	ImageNumber int
	Iterations  []uint
	Row         int
	Tasks       []Coordinate
	Time        float64
}

func NewTask(id uint, imageNumber int, row int, time float64, iterations []uint) *Task {
	return &Task{
		ID:          id,
		ImageNumber: imageNumber,
		Iterations:  iterations,
		Row:         row,
		Tasks:       make([]Coordinate, 0, len(iterations)),
		Time:        time,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Image Number: %d ", t.ImageNumber)
	output += fmt.Sprintf("Row: %d ", t.Row)
	output += fmt.Sprintf("Time: %g ", t.Time)
	output += fmt.Sprintf("Result Count: %d ", t.CurrentTask)
	output += fmt.Sprintf("Task Count: %d}", len(t.Tasks))
	return output
}

func (t *Task) AddTaskForPixel(coordinate Coordinate) {
	t.Tasks = append(t.Tasks, coordinate)
}

// GetNextTask
// Returns the coordinate to be processed next. Make sure to hand the result to AddResult before calling
// this method again
func (t *Task) GetNextTask() (Coordinate, bool) {
	if t.CurrentTask >= len(t.Tasks) {
		return Coordinate{}, false
	}
	return t.Tasks[t.CurrentTask], true
}

// AddResult
// Records the iteration count of the current coordinate and moves on to the next one
func (t *Task) AddResult(iteration uint) {
	t.Iterations[t.Tasks[t.CurrentTask].Column] = iteration
	t.CurrentTask++
}

// Done reports whether every coordinate of the task has a result.
func (t *Task) Done() bool {
	return t.CurrentTask >= len(t.Tasks)
}
