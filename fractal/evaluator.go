package fractal

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidTime = errors.New("invalid time value")

// Evaluator computes the escape time of one point of the plane. It must be safe for concurrent use, free
// of side effects, and return a value in [0, maxIterations] where maxIterations means the point did not
// escape. t is the animation time in [0, 1); still images pass 0.
type Evaluator interface {
	Escape(x, y float64, maxIterations uint, t float64) uint
}

type EvaluatorFunc func(x, y float64, maxIterations uint, t float64) uint

func (f EvaluatorFunc) Escape(x, y float64, maxIterations uint, t float64) uint {
	return f(x, y, maxIterations, t)
}

// Static adapts a formula that does not depend on time.
func Static(f func(x, y float64, maxIterations uint) uint) Evaluator {
	return EvaluatorFunc(func(x, y float64, maxIterations uint, _ float64) uint {
		return f(x, y, maxIterations)
	})
}

// NormalizeTime folds t onto the cyclic domain [0, 1). NaN and infinities have no place on the cycle and
// are rejected.
func NormalizeTime(t float64) (float64, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTime, t)
	}
	t -= math.Floor(t)
	if t >= 1 {
		// t was a tiny negative number and rounded up
		t = 0
	}
	return t, nil
}
