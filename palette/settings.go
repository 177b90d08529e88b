package palette

import (
	"errors"
	"fmt"
)

type StopSettings struct {
	Color    string  `yaml:"Color"`
	Position float64 `yaml:"Position"`
}

// Settings picks either a named preset or an explicit list of stops. Explicit stops win.
type Settings struct {
	Preset string         `yaml:"Preset"`
	Stops  []StopSettings `yaml:"Stops"`
}

func (s *Settings) Verify() error {
	if len(s.Stops) == 0 && s.Preset == "" {
		s.Preset = "ultra"
	}
	for _, stop := range s.Stops {
		if stop.Position < 0 || stop.Position > 1 {
			return fmt.Errorf("stop %s at %g lies outside [0, 1]", stop.Color, stop.Position)
		}
	}
	if len(s.Stops) == 1 {
		return errors.New("a gradient needs at least two stops")
	}
	return nil
}

func (s *Settings) ColorScheme() (*ColorScheme, error) {
	if len(s.Stops) == 0 {
		return Preset(s.Preset)
	}
	cs := NewColorScheme()
	for _, stop := range s.Stops {
		hex, err := ParseHex(stop.Color)
		if err != nil {
			return nil, err
		}
		cs.AddHex(hex, stop.Position)
	}
	return cs, nil
}
