package task

import "fmt"

// Coordinate is a pixel of the image together with the point of the plane it samples.
type Coordinate struct {
	X      float64
	Y      float64
	Column int
	Row    int
}

func (c *Coordinate) String() string {
	output := "{Coordinate "
	output += fmt.Sprintf("X: %g ", c.X)
	output += fmt.Sprintf("Y: %g ", c.Y)
	output += fmt.Sprintf("Column: %d ", c.Column)
	output += fmt.Sprintf("Row: %d}", c.Row)
	return output
}
