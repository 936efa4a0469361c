// Package motion computes the waypoints of timed pointer movements.
package motion

import (
	"math"
	"time"

	"github.com/frudas24/rzctl/internal/driver"
)

// MaxSteps bounds the interpolation steps of a single move.
const MaxSteps = 10000

// Waypoint is a position to visit and the wait before the next one.
type Waypoint struct {
	Point driver.Point
	Delay time.Duration
}

// Request describes a straight-line movement.
type Request struct {
	Start    driver.Point
	End      driver.Point
	Duration time.Duration
	Steps    int
	Tween    Tween
}

// Plan returns the waypoints for req. A zero duration yields a single waypoint at End.
func Plan(req Request) []Waypoint {
	if req.Duration <= 0 {
		return []Waypoint{{Point: req.End}}
	}
	steps := min(max(req.Steps, 1), MaxSteps)
	tween := req.Tween
	if tween == nil {
		tween = Linear
	}

	out := make([]Waypoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		wp := Waypoint{Point: req.End}
		if i < steps {
			wp.Point = PointOnLine(req.Start, req.End, clamp01(tween(float64(i)/float64(steps))))
			wp.Delay = stepDelay(req.Duration, steps, i)
		}
		out = append(out, wp)
	}
	return out
}

// StepCount lowers steps so that no step sleeps less than minSleep.
// A zero minSleep still keeps every step at least a millisecond long.
func StepCount(duration time.Duration, steps int, minSleep time.Duration) int {
	steps = min(max(steps, 1), MaxSteps)
	if duration <= 0 {
		return steps
	}
	if minSleep <= 0 {
		minSleep = time.Millisecond
	}
	if duration/time.Duration(steps) < minSleep {
		steps = int(duration / minSleep)
	}
	if steps < 1 {
		steps = 1
	}
	return steps
}

// PointOnLine returns the point a proportion n along the segment a-b, rounded to pixels.
func PointOnLine(a, b driver.Point, n float64) driver.Point {
	return driver.Point{
		X: int(math.Round(float64(a.X) + n*float64(b.X-a.X))),
		Y: int(math.Round(float64(a.Y) + n*float64(b.Y-a.Y))),
	}
}

// TotalDelay sums the delays of a plan.
func TotalDelay(path []Waypoint) time.Duration {
	var total time.Duration
	for _, wp := range path {
		total += wp.Delay
	}
	return total
}

// stepDelay splits d into steps slices whose sum is exactly d.
func stepDelay(d time.Duration, steps, i int) time.Duration {
	n := int64(steps)
	q, r := int64(d)/n, int64(d)%n
	return time.Duration(q + r*int64(i+1)/n - r*int64(i)/n)
}

// clamp01 bounds a float to the [0..1] range.
func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
