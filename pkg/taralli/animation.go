package taralli

import (
	"time"

	"github.com/nikit6000/taralli/pkg/taralli/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// TimingFunction is a cubic bezier easing curve with control points
// (X1, Y1) and (X2, Y2), evaluated the way compositor timing functions are:
// input is elapsed fraction, output is progress fraction.
type TimingFunction struct {
	X1, Y1, X2, Y2 float64
}

// selectionTimingFunction is the standard Material easing curve. It is fixed
// for the whole library so callers can run coordinated animations with the
// exact same parameters.
var selectionTimingFunction = TimingFunction{X1: 0.4, Y1: 0, X2: 0.2, Y2: 1}

// Eval returns the eased progress for elapsed fraction t in [0, 1].
func (tf TimingFunction) Eval(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return tf.bezierY(tf.solveX(t))
}

// solveX finds the curve parameter whose bezier X equals the input fraction.
// Bisection is plenty here; the curve is monotonic in X and the result feeds
// pixel-granularity interpolation.
func (tf TimingFunction) solveX(x float64) float64 {
	lo, hi := 0.0, 1.0
	for i := 0; i < 32; i++ {
		mid := (lo + hi) / 2
		if tf.bezierX(mid) < x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func (tf TimingFunction) bezierX(u float64) float64 {
	return bezier(u, tf.X1, tf.X2)
}

func (tf TimingFunction) bezierY(u float64) float64 {
	return bezier(u, tf.Y1, tf.Y2)
}

// bezier evaluates a one-dimensional cubic bezier with endpoints 0 and 1.
func bezier(u, p1, p2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*p1 + 3*inv*u*u*p2 + u*u*u
}

// selectionAnimation tracks one in-flight selection transition. The widget
// stores the declarative parameters and samples them at render time; there is
// no internal animation clock.
type selectionAnimation struct {
	start time.Time
	from  sdl.Rect
	to    sdl.Rect
}

// done reports whether the animation has run its full duration at now.
func (a *selectionAnimation) done(now time.Time) bool {
	return now.Sub(a.start) >= constants.SelectionChangeAnimationDuration
}

// frameAt returns the interpolated indicator frame at now. Starting a new
// animation from this value keeps interruptions visually coherent: the new
// transition picks up from the current on-screen geometry.
func (a *selectionAnimation) frameAt(now time.Time, tf TimingFunction) sdl.Rect {
	elapsed := now.Sub(a.start)
	if elapsed <= 0 {
		return a.from
	}
	if elapsed >= constants.SelectionChangeAnimationDuration {
		return a.to
	}

	p := tf.Eval(float64(elapsed) / float64(constants.SelectionChangeAnimationDuration))
	return sdl.Rect{
		X: lerp32(a.from.X, a.to.X, p),
		Y: lerp32(a.from.Y, a.to.Y, p),
		W: lerp32(a.from.W, a.to.W, p),
		H: lerp32(a.from.H, a.to.H, p),
	}
}

// offsetAnimation tracks one in-flight scroll transition, using the same
// duration and curve as selection changes.
type offsetAnimation struct {
	start time.Time
	from  int32
	to    int32
}

func (a *offsetAnimation) done(now time.Time) bool {
	return now.Sub(a.start) >= constants.SelectionChangeAnimationDuration
}

func (a *offsetAnimation) valueAt(now time.Time, tf TimingFunction) int32 {
	elapsed := now.Sub(a.start)
	if elapsed <= 0 {
		return a.from
	}
	if elapsed >= constants.SelectionChangeAnimationDuration {
		return a.to
	}
	p := tf.Eval(float64(elapsed) / float64(constants.SelectionChangeAnimationDuration))
	return lerp32(a.from, a.to, p)
}

func lerp32(from, to int32, p float64) int32 {
	return from + int32(p*float64(to-from))
}
