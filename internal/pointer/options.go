package pointer

import (
	"time"

	"github.com/frudas24/rzctl/internal/driver"
	"github.com/frudas24/rzctl/internal/motion"
)

// Axis is a relative offset on one axis that may be left unchanged.
type Axis struct {
	delta int
	set   bool
}

// Unchanged leaves an axis where it is.
func Unchanged() Axis {
	return Axis{}
}

// Delta offsets an axis by v pixels.
func Delta(v int) Axis {
	return Axis{delta: v, set: true}
}

// Value returns the offset and whether one was given.
func (a Axis) Value() (int, bool) {
	return a.delta, a.set
}

// offset returns the offset, treating Unchanged as zero.
func (a Axis) offset() int {
	if !a.set {
		return 0
	}
	return a.delta
}

// Target is an optional absolute point for click and button actions.
type Target struct {
	point driver.Point
	set   bool
}

// Here targets the current cursor position.
func Here() Target {
	return Target{}
}

// At targets an absolute screen coordinate.
func At(x, y int) Target {
	return Target{point: driver.Point{X: x, Y: y}, set: true}
}

// Point returns the target and whether one was given.
func (t Target) Point() (driver.Point, bool) {
	return t.point, t.set
}

// settings collects the per-call options of an action.
type settings struct {
	tween    motion.Tween
	button   driver.Button
	clicks   int
	interval time.Duration
	duration time.Duration
	pause    bool
	toggle   bool
}

// Option adjusts a single action.
type Option func(*settings)

// WithTween selects the easing used for timed moves.
func WithTween(t motion.Tween) Option {
	return func(s *settings) {
		if t != nil {
			s.tween = t
		}
	}
}

// WithButton selects the button used by clicks and drags.
func WithButton(b driver.Button) Option {
	return func(s *settings) { s.button = b }
}

// WithClicks sets how many clicks Click performs.
func WithClicks(n int) Option {
	return func(s *settings) { s.clicks = n }
}

// WithInterval sets the wait after each click.
func WithInterval(d time.Duration) Option {
	return func(s *settings) { s.interval = d }
}

// WithDuration sets how long a click spends moving to its target.
func WithDuration(d time.Duration) Option {
	return func(s *settings) { s.duration = d }
}

// WithoutPause skips the pause that follows the action.
func WithoutPause() Option {
	return func(s *settings) { s.pause = false }
}

// WithoutButtonToggle makes drags move without pressing or releasing the button.
func WithoutButtonToggle() Option {
	return func(s *settings) { s.toggle = false }
}

// buildSettings applies opts over the defaults.
func buildSettings(opts []Option) settings {
	s := settings{
		tween:  motion.Linear,
		button: driver.Primary,
		clicks: 1,
		pause:  true,
		toggle: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
