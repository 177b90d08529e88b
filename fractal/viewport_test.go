package fractal

import (
	"errors"
	"math"
	"testing"
)

func TestNewViewportRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		v    Viewport
	}{
		{name: "zero width", v: Viewport{Scale: 1, MaxIterations: 1, Width: 0, Height: 1}},
		{name: "negative height", v: Viewport{Scale: 1, MaxIterations: 1, Width: 1, Height: -3}},
		{name: "zero scale", v: Viewport{Scale: 0, MaxIterations: 1, Width: 1, Height: 1}},
		{name: "nan scale", v: Viewport{Scale: math.NaN(), MaxIterations: 1, Width: 1, Height: 1}},
		{name: "zero iterations", v: Viewport{Scale: 1, MaxIterations: 0, Width: 1, Height: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewViewport(tc.v.CenterX, tc.v.CenterY, tc.v.Scale, tc.v.MaxIterations, tc.v.Width, tc.v.Height)
			if !errors.Is(err, ErrInvalidViewport) {
				t.Errorf("got %v, want ErrInvalidViewport", err)
			}
		})
	}
}

func TestPointsVisitsEveryPixelOnce(t *testing.T) {
	sizes := [][2]int{{1, 1}, {4, 4}, {7, 3}, {3, 9}}
	for _, size := range sizes {
		v, err := NewViewport(-0.5, 0.25, 3, 10, size[0], size[1])
		if err != nil {
			t.Fatal(err)
		}

		seen := make(map[[2]int]int)
		points := v.Points()
		previous := -1
		for {
			c, ok := points.Next()
			if !ok {
				break
			}
			index := c.Row*v.Width + c.Column
			if index != previous+1 {
				t.Fatalf("%dx%d: pixel %d follows %d, want row-major order", size[0], size[1], index, previous)
			}
			previous = index
			seen[[2]int{c.Column, c.Row}]++
		}

		if len(seen) != v.Pixels() {
			t.Errorf("%dx%d: visited %d distinct pixels, want %d", size[0], size[1], len(seen), v.Pixels())
		}
		for pixel, count := range seen {
			if count != 1 {
				t.Errorf("%dx%d: pixel %v visited %d times", size[0], size[1], pixel, count)
			}
		}
	}
}

func TestPointsMapping(t *testing.T) {
	v, err := NewViewport(1, -2, 4, 10, 8, 4)
	if err != nil {
		t.Fatal(err)
	}
	xScale, yScale := 4.0, 2.0
	xOffset, yOffset := 1-xScale/2, -2-yScale/2

	if got := v.PlaneX(0); got != xOffset {
		t.Errorf("PlaneX(0) = %g, want %g", got, xOffset)
	}
	if got := v.PlaneY(0); got != yOffset {
		t.Errorf("PlaneY(0) = %g, want %g", got, yOffset)
	}
	want := xOffset + xScale*7/8
	if got := v.PlaneX(7); math.Abs(got-want) > 1e-12 {
		t.Errorf("PlaneX(7) = %g, want %g", got, want)
	}

	c, _ := v.Points().Next()
	if c.X != xOffset || c.Y != yOffset || c.Column != 0 || c.Row != 0 {
		t.Errorf("first point = %v", c.String())
	}
}

func TestPointsRestart(t *testing.T) {
	v, _ := NewViewport(0, 0, 2, 5, 3, 2)
	points := v.Points()

	count := func() int {
		n := 0
		for {
			if _, ok := points.Next(); !ok {
				return n
			}
			n++
		}
	}
	if first, second := count(), count(); first != 6 || second != 6 {
		t.Errorf("passes yielded %d and %d points, want 6 each", first, second)
	}
}

func TestRowsMatchPoints(t *testing.T) {
	v, _ := NewViewport(-0.75, 0.1, 2.5, 20, 5, 4)

	flat := make(map[[2]int][2]float64)
	points := v.Points()
	for {
		c, ok := points.Next()
		if !ok {
			break
		}
		flat[[2]int{c.Column, c.Row}] = [2]float64{c.X, c.Y}
	}

	grouped := make(map[[2]int][2]float64)
	rows := v.Rows()
	for {
		row, pixels, ok := rows.Next()
		if !ok {
			break
		}
		if pixels.Row() != row {
			t.Fatalf("pixel iterator reports row %d, want %d", pixels.Row(), row)
		}
		for {
			x, y, column, ok := pixels.Next()
			if !ok {
				break
			}
			grouped[[2]int{column, row}] = [2]float64{x, y}
		}
	}

	if len(grouped) != len(flat) {
		t.Fatalf("row iteration produced %d points, flat produced %d", len(grouped), len(flat))
	}
	for pixel, point := range flat {
		if grouped[pixel] != point {
			t.Errorf("pixel %v: row iteration %v, flat %v", pixel, grouped[pixel], point)
		}
	}
}
