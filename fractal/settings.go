package fractal

import (
	"fmt"
)

// Settings describes what to draw. Zero values are replaced by defaults in Verify.
type Settings struct {
	CenterX       float64         `yaml:"CenterX"`
	CenterY       float64         `yaml:"CenterY"`
	Formula       FormulaSettings `yaml:"Formula"`
	Height        int             `yaml:"Height"`
	MaxIterations uint            `yaml:"MaxIterations"`
	Scale         float64         `yaml:"Scale"`
	Time          float64         `yaml:"Time"`
	Width         int             `yaml:"Width"`
}

func (s *Settings) String() string {
	output := "\nFractal settings\n"
	output += fmt.Sprintf("Center: (%g, %g)\n", s.CenterX, s.CenterY)
	output += fmt.Sprintf("Formula: %s\n", s.Formula.Name)
	output += fmt.Sprintf("Size: %dx%d\n", s.Width, s.Height)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Scale: %g\n", s.Scale)
	return output
}

func (s *Settings) Verify() error {
	if err := s.Formula.Verify(); err != nil {
		return err
	}
	if s.Height <= 0 {
		s.Height = 1080
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = 1000
	}
	if s.Scale <= 0 {
		s.Scale = 4
	}
	if s.Width <= 0 {
		s.Width = 1920
	}
	t, err := NormalizeTime(s.Time)
	if err != nil {
		return err
	}
	s.Time = t
	return nil
}

func (s *Settings) Viewport() (Viewport, error) {
	return NewViewport(s.CenterX, s.CenterY, s.Scale, s.MaxIterations, s.Width, s.Height)
}

func (s *Settings) Evaluator() (Evaluator, error) {
	return Lookup(s.Formula)
}
