package fractal

import (
	"fmt"
	"math"
	"sort"
)

// Mandelbrot iterates z = z^2 + c from z = 0.
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Optimized_escape_time_algorithms
func Mandelbrot(boundary float64) Evaluator {
	return Static(func(x, y float64, maxIterations uint) uint {
		x1, y1, x2, y2 := 0.0, 0.0, 0.0, 0.0
		var iteration uint
		for (x2+y2) <= boundary && iteration < maxIterations {
			ny := 2*x1*y1 + y
			nx := x2 - y2 + x

			// A fixed point never escapes
			if nx == x1 && ny == y1 {
				return maxIterations
			}

			x1, y1 = nx, ny
			x2 = x1 * x1
			y2 = y1 * y1
			iteration++
		}
		return iteration
	})
}

// Julia iterates z = z^2 + c from z = (x, y) with a fixed c.
func Julia(boundary, cx, cy float64) Evaluator {
	return Static(func(x, y float64, maxIterations uint) uint {
		return juliaEscape(x, y, cx, cy, boundary, maxIterations)
	})
}

// RotatingJulia moves c around a circle of the given radius as t sweeps the animation.
func RotatingJulia(boundary, radius float64) Evaluator {
	return EvaluatorFunc(func(x, y float64, maxIterations uint, t float64) uint {
		angle := 2 * math.Pi * t
		return juliaEscape(x, y, radius*math.Cos(angle), radius*math.Sin(angle), boundary, maxIterations)
	})
}

func juliaEscape(x, y, cx, cy, boundary float64, maxIterations uint) uint {
	var iteration uint
	for x*x+y*y < boundary && iteration < maxIterations {
		nx := x*x - y*y + cx
		ny := 2*x*y + cy
		if nx == x && ny == y {
			return maxIterations
		}
		x, y = nx, ny
		iteration++
	}
	return iteration
}

// Sine iterates z = c*sin(z) where c sits on the unit circle at angle pi*t. Escape is an unbounded
// imaginary part, |Im z| >= limit.
func Sine(limit float64) Evaluator {
	return EvaluatorFunc(func(x, y float64, maxIterations uint, t float64) uint {
		cx := math.Sin(math.Pi * t)
		cy := math.Cos(math.Pi * t)
		var iteration uint
		for math.Abs(y) < limit && iteration < maxIterations {
			sx := math.Sin(x) * math.Cosh(y)
			sy := math.Cos(x) * math.Sinh(y)
			nx := cx*sx - cy*sy
			ny := cx*sy + cy*sx
			if nx == x && ny == y {
				return maxIterations
			}
			x, y = nx, ny
			iteration++
		}
		return iteration
	})
}

// FormulaSettings names a built-in formula and its parameters.
type FormulaSettings struct {
	Name     string  `yaml:"Name"`
	Boundary float64 `yaml:"Boundary"`
	Cx       float64 `yaml:"Cx"`
	Cy       float64 `yaml:"Cy"`
	Radius   float64 `yaml:"Radius"`
}

var formulas = map[string]func(FormulaSettings) Evaluator{
	"mandelbrot": func(fs FormulaSettings) Evaluator { return Mandelbrot(fs.Boundary) },
	"julia":      func(fs FormulaSettings) Evaluator { return Julia(fs.Boundary, fs.Cx, fs.Cy) },
	"rotating-julia": func(fs FormulaSettings) Evaluator {
		return RotatingJulia(fs.Boundary, fs.Radius)
	},
	"sine": func(fs FormulaSettings) Evaluator { return Sine(fs.Boundary) },
}

// Formulas lists the names Lookup understands.
func Formulas() []string {
	names := make([]string, 0, len(formulas))
	for name := range formulas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Lookup(fs FormulaSettings) (Evaluator, error) {
	build, ok := formulas[fs.Name]
	if !ok {
		return nil, fmt.Errorf("unknown formula %q, expected one of %v", fs.Name, Formulas())
	}
	return build(fs), nil
}

func (fs *FormulaSettings) Verify() error {
	if fs.Name == "" {
		fs.Name = "mandelbrot"
	}
	if _, ok := formulas[fs.Name]; !ok {
		return fmt.Errorf("unknown formula %q, expected one of %v", fs.Name, Formulas())
	}
	if fs.Boundary <= 0 {
		if fs.Name == "sine" {
			fs.Boundary = 50
		} else {
			fs.Boundary = 4
		}
	}
	if fs.Radius <= 0 {
		fs.Radius = 0.7885
	}
	return nil
}
