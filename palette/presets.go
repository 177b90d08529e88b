package palette

import (
	"fmt"
	"sort"
)

type presetStop struct {
	hex      uint32
	position float64
}

var presets = map[string][]presetStop{
	"ultra": {
		{0x000764, 0.0},
		{0x206bcb, 0.16},
		{0xedffff, 0.42},
		{0xffaa00, 0.6425},
		{0x000200, 0.8575},
		{0x000764, 1.0},
	},
	"grayscale": {
		{0x000000, 0.0},
		{0xffffff, 1.0},
	},
	"fire": {
		{0x000000, 0.0},
		{0xbb2200, 0.8},
		{0xff7700, 1.0},
	},
	"rose": {
		{0x000000, 0.0 / 9.0},
		{0x49006a, 1.0 / 9.0},
		{0x7a0177, 2.0 / 9.0},
		{0xae017e, 3.0 / 9.0},
		{0xdd3497, 4.0 / 9.0},
		{0xf768a1, 5.0 / 9.0},
		{0xfa9fb5, 6.0 / 9.0},
		{0xfcc5c0, 7.0 / 9.0},
		{0xfde0dd, 8.0 / 9.0},
		{0xfff7f3, 9.0 / 9.0},
	},
	"sunset": {
		{0x000000, 0.0},
		{0x6a1b9a, 0.35},
		{0xe85285, 0.55},
		{0xffecb3, 0.8},
		{0xffffff, 1.0},
	},
	"neon": {
		{0x00ffff, 0.0},
		{0xff00ff, 0.5},
		{0xffffff, 1.0},
	},
}

func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Preset(name string) (*ColorScheme, error) {
	stops, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q, expected one of %v", name, Presets())
	}
	cs := NewColorScheme()
	for _, s := range stops {
		cs.AddHex(s.hex, s.position)
	}
	return cs, nil
}
