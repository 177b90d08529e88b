package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"FractalRenderer/misc"
)

// Background is drawn for points that never escape.
var Background = color.RGBA{R: 0, G: 0, B: 0, A: 255}

type Stop struct {
	Color    color.RGBA
	Position float64
}

// ColorScheme is a gradient over [0, 1] defined by stops sorted by position.
type ColorScheme struct {
	stops []Stop
}

func NewColorScheme() *ColorScheme {
	return &ColorScheme{}
}

// Add inserts a stop after every stop whose position is not greater, so stops with equal positions keep
// their insertion order.
func (cs *ColorScheme) Add(c color.RGBA, position float64) {
	c.A = 255
	i := 0
	for i < len(cs.stops) && cs.stops[i].Position <= position {
		i++
	}
	cs.stops = append(cs.stops, Stop{})
	copy(cs.stops[i+1:], cs.stops[i:])
	cs.stops[i] = Stop{Color: c, Position: position}
}

// AddHex adds a 0xRRGGBB color.
func (cs *ColorScheme) AddHex(hex uint32, position float64) {
	cs.Add(FromHex(hex), position)
}

func (cs *ColorScheme) Stops() []Stop {
	return append([]Stop(nil), cs.stops...)
}

func (cs *ColorScheme) Len() int {
	return len(cs.stops)
}

// Lookup returns the gradient color at position. The color is blended between the first stop at or after
// position and the stop before it; channels are truncated. Positions past the last stop saturate to the
// last stop, positions before the first stop get the first stop.
func (cs *ColorScheme) Lookup(position float64) color.RGBA {
	if len(cs.stops) == 0 {
		return Background
	}

	i := 0
	for i < len(cs.stops) && cs.stops[i].Position < position {
		i++
	}
	if i == len(cs.stops) {
		return cs.stops[i-1].Color
	}

	stop := cs.stops[i]
	reference := cs.stops[0]
	if i > 0 {
		reference = cs.stops[i-1]
	}
	span := reference.Position - stop.Position
	if span == 0 {
		return stop.Color
	}
	return misc.LinearInterpolationRGB(stop.Color, reference.Color, (position-stop.Position)/span)
}

func FromHex(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ParseHex reads "#RRGGBB", "0xRRGGBB" or "RRGGBB".
func ParseHex(value string) (uint32, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(value), "#"), "0x")
	if len(trimmed) != 6 {
		return 0, fmt.Errorf("color %q is not six hex digits", value)
	}
	hex, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", value, err)
	}
	return uint32(hex), nil
}
