package fractal

import (
	"errors"
	"fmt"
)

var ErrInvalidViewport = errors.New("invalid viewport")

// Viewport is the rectangle of the plane an image shows. Scale is the width of that rectangle in plane
// units; the height follows from the pixel aspect ratio.
type Viewport struct {
	CenterX       float64
	CenterY       float64
	Scale         float64
	MaxIterations uint
	Width         int
	Height        int
}

func NewViewport(centerX, centerY, scale float64, maxIterations uint, width, height int) (Viewport, error) {
	v := Viewport{
		CenterX:       centerX,
		CenterY:       centerY,
		Scale:         scale,
		MaxIterations: maxIterations,
		Width:         width,
		Height:        height,
	}
	if err := v.Validate(); err != nil {
		return Viewport{}, err
	}
	return v, nil
}

func (v Viewport) Validate() error {
	switch {
	case v.Width <= 0:
		return fmt.Errorf("%w: width %d", ErrInvalidViewport, v.Width)
	case v.Height <= 0:
		return fmt.Errorf("%w: height %d", ErrInvalidViewport, v.Height)
	case !(v.Scale > 0):
		return fmt.Errorf("%w: scale %g", ErrInvalidViewport, v.Scale)
	case v.MaxIterations == 0:
		return fmt.Errorf("%w: max iterations must be positive", ErrInvalidViewport)
	}
	return nil
}

func (v Viewport) String() string {
	return fmt.Sprintf("{Viewport Center: (%g, %g) Scale: %g MaxIterations: %d Size: %dx%d}",
		v.CenterX, v.CenterY, v.Scale, v.MaxIterations, v.Width, v.Height)
}

// Pixels is the number of pixels in the image.
func (v Viewport) Pixels() int {
	return v.Width * v.Height
}

/*
 * Convert the (column, row) pixel of the image to the (x, y) point on the plane
 *
 * - The vertical extent is scaled by height/width so non square images keep the plane's proportions
 * - The offsets move the top left pixel so the image is centered on (CenterX, CenterY)
 */
func (v Viewport) mapping() mapping {
	xScale := v.Scale
	yScale := v.Scale * (float64(v.Height) / float64(v.Width))
	return mapping{
		xScale:  xScale,
		yScale:  yScale,
		xOffset: v.CenterX - xScale/2,
		yOffset: v.CenterY - yScale/2,
		width:   v.Width,
		height:  v.Height,
	}
}

// PlaneX is the real coordinate sampled by pixel column.
func (v Viewport) PlaneX(column int) float64 {
	return v.mapping().x(column)
}

// PlaneY is the imaginary coordinate sampled by pixel row.
func (v Viewport) PlaneY(row int) float64 {
	return v.mapping().y(row)
}

type mapping struct {
	xScale, yScale   float64
	xOffset, yOffset float64
	width, height    int
}

func (m mapping) x(column int) float64 {
	return m.xScale*(float64(column)/float64(m.width)) + m.xOffset
}

func (m mapping) y(row int) float64 {
	return m.yScale*(float64(row)/float64(m.height)) + m.yOffset
}
